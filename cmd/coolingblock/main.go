package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/jmball/cooling-block/pkg/app"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		if exitErr, ok := err.(*app.ExitError); ok {
			if exitErr.Message != "" {
				fmt.Fprintln(os.Stderr, exitErr.Message)
			}
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, level, shouldExit, err := app.ParseArgs(args, os.Stderr)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	log := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(log)

	return app.New(cfg, log).Run(context.Background())
}
