package commands

import (
	"fmt"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/render"
	"github.com/amp-labs/amp-rbtree/replay"
	"github.com/spf13/cobra"
)

func newReplayCommand(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "replay <script.yaml>",
		Short: "Run a scripted YAML scenario against a tree",
		Long: `Run every step of a YAML scenario against a fresh tree keyed by natural-order
strings, printing each step as it runs and the final tree. The command fails on the
first step whose expectation does not hold.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			scenario, err := replay.Load(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, cli.Banner("scenario "+scenario.Name, cli.DefaultWidth, cli.AlignCenter))

			runner := replay.NewRunner(replay.WithObserver(func(r replay.Result) {
				fmt.Fprintln(out, r.String())
			}))

			_, runErr := runner.Run(ctx, scenario)

			fmt.Fprint(out, cli.Divider(cli.DefaultWidth))
			fmt.Fprint(out, render.Tree(runner.Tree(), render.WithColor(cfg.Render.Color)))

			return runErr
		},
	}
}
