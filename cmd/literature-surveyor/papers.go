// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/literature-surveyor/internal/literature"
)

var papersCmd = &cobra.Command{
	Use:   "papers <query>",
	Short: "Retrieve representative papers for a query",
	Long: `Papers searches OpenAlex, Semantic Scholar, and arXiv in priority order
and prints the first non-empty normalized result set: three to five papers
with title, year, source, citation count, and summary. Citation counts from
OpenAlex are cross-checked against Semantic Scholar.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		cfg := loadConfig()
		limit, _ := cmd.Flags().GetInt("limit")
		if limit == 0 {
			limit = cfg.Literature.DefaultLimit
		}

		query := strings.Join(args, " ")
		svc := buildLiteratureService(cfg, log)
		papers := svc.Fetch(cmd.Context(), query, limit)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(papers)
		}

		for _, p := range papers {
			fmt.Printf("%s (%d)", p.Title, p.Year)
			if p.Source != "" {
				fmt.Printf(" - %s", p.Source)
			}
			if p.CitedByCount != nil {
				fmt.Printf(" [%d citations]", *p.CitedByCount)
			}
			fmt.Println()
			fmt.Println("  " + literature.TruncateSummary(p.Summary, 0))
		}
		return nil
	},
}

func init() {
	papersCmd.Flags().Int("limit", 0, "number of papers to return (clamped to 3-5)")
	papersCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(papersCmd)
}
