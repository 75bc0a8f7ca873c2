package cli

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/multierr"

	"github.com/grindlemire/go-flex/internal/scene"
)

func newCheckCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "check [scene.yaml...]",
		Short: "Decode and validate scenes without laying them out",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd.OutOrStdout(), args)
		},
	}
}

// runCheck prints every problem in every file and fails if any file has one.
func runCheck(out io.Writer, paths []string) error {
	var invalid int
	for _, path := range paths {
		err := checkScene(path)
		if err == nil {
			fmt.Fprintf(out, "%s: ok\n", path)
			continue
		}
		invalid++
		for _, e := range multierr.Errors(err) {
			fmt.Fprintf(out, "%s: %v\n", path, e)
		}
	}
	if invalid > 0 {
		return fmt.Errorf("%d of %d scenes invalid", invalid, len(paths))
	}
	return nil
}

func checkScene(path string) error {
	doc, err := scene.Load(path)
	if err != nil {
		return err
	}
	return scene.Validate(doc)
}
