// Copyright (c) 2026 Canon. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/taibuivan/canon/internal/core/curation"
	"github.com/taibuivan/canon/pkg/query"
)

func curateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "curate",
		Short: "Manage curated reading material",
	}
	cmd.AddCommand(curateFetchCmd())
	return cmd
}

func curateFetchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fetch <url>",
		Short: "Fetch an article, extract its text and add it to a section",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			section, _ := cmd.Flags().GetString("section")
			source, _ := cmd.Flags().GetString("source")
			tags, _ := cmd.Flags().GetString("tags")
			level, _ := cmd.Flags().GetString("level")
			timeout, _ := cmd.Flags().GetDuration("timeout")

			ctx := cmd.Context()
			_, pool, logger, err := openDatabase(ctx, cmd)
			if err != nil {
				return err
			}
			defer pool.Close()

			service := curation.NewService(curation.NewPostgresRepository(pool), curation.NewHTTPFetcher(timeout), logger)
			content, err := service.IngestURL(ctx, curation.Ingest{
				URL:           args[0],
				Section:       section,
				SourceID:      source,
				Tags:          query.StringSlice(tags),
				MaterialLevel: level,
			})
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s %s %q\n", okLabel("added"), content.ID, content.Title)
			return nil
		},
	}

	cmd.Flags().String("section", "", "section the article belongs to")
	cmd.Flags().String("source", "", "curated source id")
	cmd.Flags().String("tags", "", "comma-separated tags")
	cmd.Flags().String("level", curation.LevelIntermediate, "material level")
	cmd.Flags().Duration("timeout", 30*time.Second, "fetch timeout")
	_ = cmd.MarkFlagRequired("section")

	return cmd
}
