//go:build unix

package cli

import "golang.org/x/sys/unix"

// terminalSize returns the size in cells of the terminal on fd.
func terminalSize(fd int) (width, height int, ok bool) {
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, false
	}
	return int(ws.Col), int(ws.Row), true
}
