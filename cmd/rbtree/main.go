// Package main provides the entry point for the rbtree CLI tool.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/amp-labs/amp-rbtree/cmd/rbtree/commands"
	"github.com/amp-labs/amp-rbtree/logger"
)

func main() {
	logger.ConfigureLoggingWithOptions(logger.Options{
		Subsystem: "rbtree",
		Output:    os.Stderr,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	err := commands.NewRootCommand(os.Stdout).ExecuteContext(ctx)

	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
