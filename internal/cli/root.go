// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements the canonctl command tree.

Every command loads the same environment configuration as the API server,
so an operator can point canonctl at a deployment by reusing its env file.
*/
package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/taibuivan/canon/internal/platform/config"
	"github.com/taibuivan/canon/internal/platform/constants"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
)

var (
	okLabel   = color.New(color.FgGreen).SprintFunc()
	warnLabel = color.New(color.FgYellow).SprintFunc()
	failLabel = color.New(color.FgRed).SprintFunc()
)

// Root builds the canonctl command tree.
func Root() *cobra.Command {
	root := &cobra.Command{
		Use:           "canonctl",
		Short:         "Operate a Canon deployment",
		Version:       constants.AppVersion,
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	root.PersistentFlags().Bool("verbose", false, "log at debug level")

	root.AddCommand(migrateCmd())
	root.AddCommand(doctorCmd())
	root.AddCommand(importCmd())
	root.AddCommand(curateCmd())

	return root
}

// # Shared plumbing

// loggerFor returns a text logger on the command's error stream.
func loggerFor(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
		level = slog.LevelDebug
	}
	return newLogger(cmd.ErrOrStderr(), level)
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	handler := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", "canonctl"))
}

// openDatabase loads configuration and connects to PostgreSQL.
// The caller owns the returned pool.
func openDatabase(context context.Context, cmd *cobra.Command) (*config.Config, *pgxpool.Pool, *slog.Logger, error) {
	logger := loggerFor(cmd)

	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	pool, err := pgstore.NewPool(context, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("connect to postgres: %w", err)
	}

	return cfg, pool, logger, nil
}
