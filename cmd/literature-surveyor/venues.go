// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var venuesCmd = &cobra.Command{
	Use:   "venues <domain>",
	Short: "Discover top publication venues for a research domain",
	Long: `Venues queries OpenAlex and Semantic Scholar for the most-cited
publication venues in a domain, merges and deduplicates the results, and
prints up to five conferences and five journals. When every provider fails
a static fallback table keyed by the domain is used instead.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		domain := strings.ToLower(strings.TrimSpace(strings.Join(args, " ")))
		svc := buildVenueService(loadConfig(), log)
		set := svc.Discover(cmd.Context(), domain)

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(set)
		}

		fmt.Println("Conferences:")
		for _, name := range set.Conferences {
			fmt.Println("  -", name)
		}
		fmt.Println("Journals:")
		for _, name := range set.Journals {
			fmt.Println("  -", name)
		}
		return nil
	},
}

func init() {
	venuesCmd.Flags().Bool("json", false, "output as JSON")

	rootCmd.AddCommand(venuesCmd)
}
