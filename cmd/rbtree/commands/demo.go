package commands

import (
	"fmt"
	"io"

	"github.com/amp-labs/amp-rbtree/cli"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/amp-labs/amp-rbtree/maps"
	"github.com/amp-labs/amp-rbtree/optional"
	"github.com/amp-labs/amp-rbtree/rbtree"
	"github.com/amp-labs/amp-rbtree/render"
	"github.com/amp-labs/amp-rbtree/sortable"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

var defaultDemoKeys = []string{"10", "20", "5", "15", "25", "3", "8"} //nolint:gochecknoglobals

type demoTree = rbtree.Tree[sortable.NaturalString, string]

func newDemoCommand(opts *globalOptions) *cobra.Command {
	var remove []string

	cmd := &cobra.Command{
		Use:   "demo [keys...]",
		Short: "Insert keys and show the tree with neighbor queries",
		Long: `Insert the given keys (natural string order, value = key) into a fresh tree,
print the tree and a table with each key's predecessor and successor.

Without keys the sample set 10 20 5 15 25 3 8 is used.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, cfg, err := setup(cmd, opts)
			if err != nil {
				return err
			}

			if len(args) == 0 {
				args = defaultDemoKeys
			}

			tree := rbtree.New[sortable.NaturalString, string]()
			for _, k := range args {
				if old, replaced := tree.Insert(sortable.NaturalString(k), k).Get(); replaced {
					logger.Get(ctx).Debug("duplicate key", "key", k, "old", old)
				}
			}

			out := cmd.OutOrStdout()
			renderOpts := render.WithColor(cfg.Render.Color)

			fmt.Fprint(out, cli.Banner(fmt.Sprintf("%d keys", tree.Len()), cli.DefaultWidth, cli.AlignCenter))
			fmt.Fprint(out, render.Tree(tree, renderOpts))

			printSummary(out, tree)

			if len(remove) == 0 {
				return nil
			}

			for _, k := range remove {
				removed := tree.Remove(sortable.NaturalString(k))
				logger.Get(ctx).Info("removed key", "key", k, "value", removed.String())
			}

			fmt.Fprint(out, cli.Divider(cli.DefaultWidth))
			fmt.Fprintf(out, "after removing %d keys\n", len(remove))
			fmt.Fprint(out, render.Tree(tree, renderOpts))

			printSummary(out, tree)

			return nil
		},
	}

	cmd.Flags().StringSliceVar(&remove, "remove", nil, "keys to remove after the first rendering")

	return cmd
}

func keyText(entry optional.Value[maps.KeyValuePair[sortable.NaturalString, string]]) string {
	e, ok := entry.Get()
	if !ok {
		return "-"
	}

	return string(e.Key)
}

// printSummary writes the neighbor table and the rule check for tree.
func printSummary(out io.Writer, tree *demoTree) {
	tbl := newTable(out)
	tbl.AppendHeader(table.Row{"Key", "Value", "Smaller", "Larger"})

	for k, v := range tree.All() {
		tbl.AppendRow(table.Row{string(k), v, keyText(tree.Smaller(k)), keyText(tree.Larger(k))})
	}

	tbl.AppendFooter(table.Row{
		"smallest " + keyText(tree.Smallest()), "",
		"largest " + keyText(tree.Largest()), fmt.Sprintf("height %d", tree.Height()),
	})
	tbl.Render()

	height, err := tree.CheckRules()
	if err != nil {
		fmt.Fprintf(out, "rules: %v\n", err)

		return
	}

	fmt.Fprintf(out, "rules: ok, black height %d\n", height)
}
