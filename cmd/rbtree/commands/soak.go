package commands

import (
	"errors"
	"fmt"
	"time"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/config"
	"github.com/amp-labs/amp-rbtree/soak"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

// ErrSoakFailed is returned when a soak run finds violations.
var ErrSoakFailed = errors.New("soak run found violations")

func newSoakCommand(opts *globalOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "soak",
		Short: "Run randomized parallel trials and check the tree rules",
		Long: `Run independent randomized trials in parallel. Each trial inserts random distinct
keys, checking the red-black rules after every insert, verifies lookups, ordering and
neighbor queries, then removes every key in random order.

The command exits non-zero if any trial finds a violation.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			report, err := soak.Run(ctx, soak.Options{
				Trials:   cfg.Soak.Trials,
				Keys:     cfg.Soak.Keys,
				KeySpace: cfg.Soak.KeySpace,
				Seed:     cfg.Soak.Seed,
				Workers:  cfg.Soak.Workers,
			})
			if err != nil {
				return err
			}

			printReport(cmd, report)

			if report.Failed() {
				return fmt.Errorf("%w: %d (%w)", ErrSoakFailed, report.Violations, report.Err())
			}

			return nil
		},
	}

	flags := cmd.Flags()
	flags.Int("trials", config.DefaultSoakTrials, "number of trials")
	flags.Int("keys", config.DefaultSoakKeys, "distinct keys inserted per trial")
	flags.Int("key-space", config.DefaultSoakKeySpace, "keys are drawn from [0, key-space)")
	flags.Uint64("seed", config.DefaultSoakSeed, "random seed, 0 for time based")
	flags.Int("workers", config.DefaultSoakWorkers, "trials run at once")

	return cmd
}

func printReport(cmd *cobra.Command, report *soak.Report) {
	out := cmd.OutOrStdout()

	header := fmt.Sprintf("soak run %s\nseed %d", report.RunID, report.Seed)
	fmt.Fprint(out, cli.Banner(header, cli.DefaultWidth, cli.AlignCenter))

	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"Trial", "Inserted", "Removed", "Height", "Black height", "Violations", "Duration"})

	for _, tr := range report.Trials {
		tbl.AppendRow(table.Row{
			tr.Index, tr.Inserted, tr.Removed, tr.Height, tr.BlackHeight,
			tr.Violations, tr.Duration.Round(time.Microsecond),
		})
	}

	tbl.AppendFooter(table.Row{
		len(report.Trials), "", "", "", "", report.Violations, report.Duration.Round(time.Microsecond),
	})
	tbl.Render()

	fmt.Fprintf(out, "operations %d, distinct keys drawn %d of %d draws\n",
		report.Operations, report.DistinctKeys, report.Draws)
}
