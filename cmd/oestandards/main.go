// Package main provides the CLI for the oestandards ABL analyzer.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/alextrs/oestandards/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.Execute(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
