package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"github.com/osse101/crimson/internal/config"
)

func main() {
	// Ctrl-C cancels the in-flight query or directory request; nothing is printed
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := newApp().RunContext(ctx, os.Args)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:                 "crimson",
		Usage:                "pay helpers in cookies for the support tickets they closed",
		Version:              config.DefaultVersion,
		EnableBashCompletion: true,
		Commands: []*cli.Command{
			newPayoutCommand(),
			newMigrateCommand(),
		},
	}
}
