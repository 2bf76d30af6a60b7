// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/canon/internal/platform/config"
	"github.com/taibuivan/canon/internal/platform/migration"
)

func migrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending schema migrations and seed data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			logger := loggerFor(cmd)

			if err := migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger); err != nil {
				return err
			}

			status, err := migration.CurrentStatus(cfg.DatabaseURL, cfg.MigrationPath, logger)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), describeStatus(status))
			return nil
		},
	}
	return cmd
}

// describeStatus renders a migration status as one coloured line.
func describeStatus(status migration.Status) string {
	switch {
	case status.Fresh:
		return fmt.Sprintf("schema %s (no migrations applied)", warnLabel("EMPTY"))
	case status.Dirty:
		return fmt.Sprintf("schema %s at version %d", failLabel("DIRTY"), status.Version)
	default:
		return fmt.Sprintf("schema %s at version %d", okLabel("OK"), status.Version)
	}
}
