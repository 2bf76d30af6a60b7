// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/canon/internal/platform/config"
	"github.com/taibuivan/canon/internal/platform/migration"
	pgstore "github.com/taibuivan/canon/internal/platform/postgres"
	redisstore "github.com/taibuivan/canon/internal/platform/redis"
)

// check is one named health test run by doctor.
type check struct {
	name string
	run  func(context.Context) (string, error)
}

func doctorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Check connectivity to every backing service",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := loggerFor(cmd)

			checks := []check{
				{name: "postgres", run: func(ctx context.Context) (string, error) {
					pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
					if err != nil {
						return "", err
					}
					defer pool.Close()
					return "reachable", nil
				}},
				{name: "redis", run: func(ctx context.Context) (string, error) {
					client, err := redisstore.NewClient(ctx, cfg.RedisURL, logger)
					if err != nil {
						return "", err
					}
					defer client.Close()
					return "reachable", nil
				}},
				{name: "migrations", run: func(context.Context) (string, error) {
					status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, logger)
					if err != nil {
						return "", err
					}
					if status.Dirty {
						return "", fmt.Errorf("dirty at version %d", status.Version)
					}
					return fmt.Sprintf("version %d", status.Version), nil
				}},
				{name: "archive", run: func(context.Context) (string, error) {
					if !cfg.ArchiveEnabled() {
						return "disabled", nil
					}
					return "bucket " + cfg.S3Bucket, nil
				}},
			}

			return runChecks(cmd.Context(), cmd.OutOrStdout(), checks, 5*time.Second)
		},
	}
}

// runChecks prints one line per check and fails when any check failed.
func runChecks(ctx context.Context, out io.Writer, checks []check, timeout time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	failed := 0
	for _, c := range checks {
		checkCtx, cancel := context.WithTimeout(ctx, timeout)
		detail, err := c.run(checkCtx)
		cancel()

		if err != nil {
			failed++
			fmt.Fprintf(out, "%-12s %s %v\n", c.name, failLabel("FAIL"), err)
			continue
		}
		fmt.Fprintf(out, "%-12s %s %s\n", c.name, okLabel("OK  "), detail)
	}

	if failed > 0 {
		return fmt.Errorf("%d check(s) failed", failed)
	}
	return nil
}
