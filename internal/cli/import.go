// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/taibuivan/canon/internal/core/bible"
	"github.com/taibuivan/canon/internal/importer"
)

func importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import",
		Short: "Bulk-load Bible texts",
	}
	cmd.AddCommand(importTranslationCmd())
	cmd.AddCommand(importSQLiteCmd())
	return cmd
}

func importTranslationCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translation",
		Short: "Store a translation document from a JSON file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			id, _ := cmd.Flags().GetString("id")
			name, _ := cmd.Flags().GetString("name")
			abbreviation, _ := cmd.Flags().GetString("abbr")

			translation, err := importer.ReadTranslation(file, id, name, abbreviation)
			if err != nil {
				return err
			}

			ctx := cmd.Context()
			_, pool, logger, err := openDatabase(ctx, cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			service := bible.NewService(bible.NewPostgresRepository(pool), logger)
			summary, err := service.SaveTranslation(ctx, translation)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s translation %s (%s)\n", okLabel("saved"), summary.ID, summary.Name)
			return nil
		},
	}

	cmd.Flags().String("file", "", "path to the translation JSON document")
	cmd.Flags().String("id", "", "translation id (overrides the file)")
	cmd.Flags().String("name", "", "display name (overrides the file)")
	cmd.Flags().String("abbr", "", "abbreviation (overrides the file)")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}

func importSQLiteCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sqlite",
		Short: "Load verse rows from a SQLite Bible database",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			file, _ := cmd.Flags().GetString("file")
			translation, _ := cmd.Flags().GetString("translation")
			table, _ := cmd.Flags().GetString("table")

			if translation == "" {
				return errors.New("--translation is required")
			}

			source, err := importer.OpenSQLite(file)
			if err != nil {
				return err
			}
			defer source.Close()

			ctx := cmd.Context()
			verses, err := importer.ReadVerses(ctx, source, table)
			if err != nil {
				return err
			}
			if len(verses) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "%s no verses found in %s\n", warnLabel("skipped"), file)
				return nil
			}

			_, pool, logger, err := openDatabase(ctx, cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			service := bible.NewService(bible.NewPostgresRepository(pool), logger)
			count, err := service.ImportVerses(ctx, translation, verses)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %d verses into %s\n", okLabel("imported"), count, translation)
			return nil
		},
	}

	cmd.Flags().String("file", "", "path to the SQLite database")
	cmd.Flags().String("translation", "", "translation id the verses belong to")
	cmd.Flags().String("table", importer.DefaultTable, "table holding b, c, v, t columns")
	_ = cmd.MarkFlagRequired("file")

	return cmd
}
