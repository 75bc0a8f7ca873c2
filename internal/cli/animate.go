package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/grindlemire/go-flex/internal/render"
	"github.com/grindlemire/go-flex/transition"
)

type animateOpts struct {
	worldFlags
	state   string
	timeout time.Duration
}

func newAnimateCmd(root *rootOpts) *cobra.Command {
	opts := animateOpts{state: "on"}

	cmd := &cobra.Command{
		Use:   "animate [scene.yaml]",
		Short: "Run a scene's transitions and print the final geometry",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var enabled bool
			switch opts.state {
			case "on":
				enabled = true
			case "off":
			default:
				return fmt.Errorf("unknown state %q (want on or off)", opts.state)
			}
			s, err := opts.resolve(cmd, root.cfg)
			if err != nil {
				return err
			}
			timeout := root.cfg.Animate.Timeout.Duration
			if cmd.Flags().Changed("timeout") {
				timeout = opts.timeout
			}
			return runAnimate(cmd.Context(), cmd.OutOrStdout(), args[0], s, enabled, timeout)
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&opts.state, "state", opts.state, "state to animate toward: on, off")
	cmd.Flags().DurationVar(&opts.timeout, "timeout", 0, "give up when the animation runs longer")
	return cmd
}

// runAnimate lays the scene out in its initial state, then runs the
// scheduler frame loop with the transition driver attached until every
// tween finishes.
func runAnimate(ctx context.Context, out io.Writer, path string, s settings, enabled bool, timeout time.Duration) error {
	logger := loggerFromContext(ctx)

	w, err := newWorld(ctx, path, s)
	if err != nil {
		return err
	}
	driver, err := transition.New(w.scene.Tree, w.scene.Transitions, transition.WithLogger(logger))
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	driver.SwitchState(!enabled, false)
	w.sched.Flush()
	driver.SwitchState(enabled, true)

	var frames int
	if driver.Active() {
		if timeout > 0 {
			var cancelTimeout context.CancelFunc
			ctx, cancelTimeout = context.WithTimeout(ctx, timeout)
			defer cancelTimeout()
		}
		ctx, cancel := context.WithCancel(ctx)
		defer cancel()

		driver.Attach(w.sched)
		w.sched.OnTick(func(time.Duration) {
			frames++
			if !driver.Active() {
				cancel()
			}
		})

		start := time.Now()
		if err := w.sched.Run(ctx); err != nil {
			return err
		}
		if errors.Is(ctx.Err(), context.DeadlineExceeded) && driver.Active() {
			return fmt.Errorf("%s: animation still running after %s", path, timeout)
		}
		logger.Info("animation finished", "scene", path, "frames", frames, "elapsed", time.Since(start).Round(time.Millisecond))
	} else {
		w.sched.Flush()
	}

	return render.Write(out, s.format, w.snapshot())
}
