package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/grindlemire/go-flex/internal/render"
)

func newLayoutCmd(root *rootOpts) *cobra.Command {
	var flags worldFlags

	cmd := &cobra.Command{
		Use:   "layout [scene.yaml...]",
		Short: "Lay out scenes and print their geometry",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := flags.resolve(cmd, root.cfg)
			if err != nil {
				return err
			}
			return runLayout(cmd.Context(), cmd.OutOrStdout(), args, s)
		},
	}
	flags.register(cmd)
	return cmd
}

// runLayout builds and lays out every scene concurrently, one tree and
// scheduler per file, then writes the results in argument order.
func runLayout(ctx context.Context, out io.Writer, paths []string, s settings) error {
	logger := loggerFromContext(ctx)
	results := make([]bytes.Buffer, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	for i, path := range paths {
		g.Go(func() error {
			w, err := newWorld(ctx, path, s)
			if err != nil {
				return err
			}
			n := w.sched.Flush()
			snap := w.snapshot()
			extent := render.Extent(snap)
			logger.Debug("laid out scene", "scene", path, "roots", n,
				"extent", fmt.Sprintf("%gx%g", extent.Width, extent.Height))
			return render.Write(&results[i], s.format, snap)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, path := range paths {
		if len(paths) > 1 {
			if err := writeHeader(out, s.format, path, i); err != nil {
				return err
			}
		}
		if _, err := results[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

// writeHeader separates scenes when several are printed together.
func writeHeader(w io.Writer, f render.Format, path string, i int) error {
	var err error
	switch f {
	case render.FormatYAML:
		_, err = fmt.Fprintf(w, "--- # %s\n", path)
	case render.FormatJSON:
		// Encoded documents delimit themselves.
	default:
		if i > 0 {
			_, err = fmt.Fprintln(w)
		}
		if err == nil {
			_, err = fmt.Fprintf(w, "%s\n", path)
		}
	}
	return err
}
