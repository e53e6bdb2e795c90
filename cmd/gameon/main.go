package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gameon-app/gameon-go/internal/cli"
	"github.com/gameon-app/gameon-go/internal/config"
	"github.com/gameon-app/gameon-go/internal/platform/logging"
	"github.com/gameon-app/gameon-go/internal/usecase"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.NewJSON(cfg.LogLevel)
	logging.SetDefault(logger)
	defer func() { _ = logger.Sync() }()

	app, err := cli.New(cfg, logger, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gameon: %v\n", err)
		os.Exit(1)
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintf(os.Stderr, "gameon: %v\n", err)
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, usecase.ErrInvalidInput), errors.Is(err, usecase.ErrNotJoinable), errors.Is(err, usecase.ErrRatingNotAllowed):
		return 2
	case errors.Is(err, usecase.ErrUnauthorized):
		return 3
	case errors.Is(err, usecase.ErrNotFound):
		return 4
	case errors.Is(err, usecase.ErrDependencyUnavailable):
		return 5
	default:
		return 1
	}
}
