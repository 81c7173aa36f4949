// Package commands implements the subcommands of the rbtree CLI.
package commands

import (
	"context"
	"io"
	"log/slog"

	"github.com/amp-labs/amp-rbtree/config"
	"github.com/amp-labs/amp-rbtree/logger"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"
)

const subsystem = "rbtree"

// globalOptions holds the persistent flags shared by every subcommand.
type globalOptions struct {
	configPath string
	logLevel   string
	verbose    bool
	noColor    bool
	logJSON    bool
}

// NewRootCommand builds the rbtree command tree. Command output goes to out and logs to
// the command's error stream.
func NewRootCommand(out io.Writer) *cobra.Command {
	opts := &globalOptions{}

	rootCmd := &cobra.Command{
		Use:   "rbtree",
		Short: "Red-black tree ordered map toolkit",
		Long: `rbtree exercises an in-process red-black tree ordered map.

Commands:
  demo      Insert keys and show the tree with neighbor queries
  replay    Run a scripted YAML scenario against a tree
  soak      Run randomized parallel trials and check the tree rules`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetOut(out)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.configPath, "config", "", "configuration file (default ./rbtree.yaml if present)")
	flags.StringVar(&opts.logLevel, "log-level", config.DefaultLogLevel, "log level: debug, info, warn or error")
	flags.BoolVarP(&opts.verbose, "verbose", "v", false, "debug logging, overrides --log-level")
	flags.BoolVar(&opts.noColor, "no-color", false, "disable colored tree rendering")
	flags.BoolVar(&opts.logJSON, "log-json", false, "log as JSON")

	rootCmd.AddCommand(newDemoCommand(opts))
	rootCmd.AddCommand(newReplayCommand(opts))
	rootCmd.AddCommand(newSoakCommand(opts))

	return rootCmd
}

// setup loads the configuration for cmd and returns a context carrying a logger that
// writes to the command's error stream.
func setup(cmd *cobra.Command, opts *globalOptions) (context.Context, *config.Config, error) {
	cfg, err := config.Load(opts.configPath, cmd.Flags())
	if err != nil {
		return nil, nil, err
	}

	logOpts := cfg.LoggerOptions(subsystem)
	logOpts.Output = cmd.ErrOrStderr()

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	ctx = logger.WithLogger(ctx, slog.New(logOpts.NewHandler()))
	ctx = logger.WithSubsystem(ctx, subsystem+"."+cmd.Name())

	return ctx, cfg, nil
}

func newTable(out io.Writer) table.Writer {
	tbl := table.NewWriter()
	tbl.SetOutputMirror(out)
	tbl.SetStyle(table.StyleLight)
	tbl.Style().Format.Footer = text.FormatDefault

	return tbl
}
