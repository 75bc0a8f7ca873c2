// Package cli implements the flex command-line interface.
//
// The commands lay out YAML scene files and print the computed geometry:
//   - layout: build one or more scenes and print their geometry
//   - check: decode and validate scenes without laying them out
//   - animate: run a scene's transitions on the frame loop
//   - version: print build information
//
// Settings come from an optional TOML file (--config); flags override it.
// --verbose switches logging to debug level. The logger travels in the
// command context.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/config"
)

var (
	version = "dev"
	commit  string
	date    string
)

// SetVersion records build information, normally injected with ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// rootOpts is shared by every subcommand.
type rootOpts struct {
	configPath string
	verbose    bool
	cfg        config.Config
}

// Execute runs the flex CLI until it finishes or ctx is cancelled.
func Execute(ctx context.Context) error {
	return newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx)
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	opts := &rootOpts{cfg: config.Default()}

	root := &cobra.Command{
		Use:           "flex",
		Short:         "Lay out flexbox scenes and print their geometry",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(opts.configPath)
			if err != nil {
				return err
			}
			opts.cfg = cfg

			level, _ := cfg.Level()
			if opts.verbose {
				level = log.DebugLevel
			}
			cmd.SetContext(withLogger(cmd.Context(), newLogger(stderr, level)))
			return nil
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetVersionTemplate(fmt.Sprintf("flex %s\ncommit: %s\nbuilt: %s\n", version, commit, date))

	root.PersistentFlags().StringVarP(&opts.configPath, "config", "c", "", "TOML configuration file")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newLayoutCmd(opts))
	root.AddCommand(newCheckCmd())
	root.AddCommand(newAnimateCmd(opts))
	root.AddCommand(newVersionCmd())

	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "flex %s\n", version)
			if commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", commit)
			}
			if date != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built: %s\n", date)
			}
		},
	}
}
