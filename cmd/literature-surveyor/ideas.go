// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/literature-surveyor/internal/ideas"
)

var ideasCmd = &cobra.Command{
	Use:   "ideas <domain>",
	Short: "Generate novel research topics for a domain",
	Long: `Ideas runs venue discovery and literature retrieval for the domain,
then asks the configured model for novel research topics grounded in the
discovered venues and papers. Exactly five topics are printed; fallback
topics fill in when the model underdelivers.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		cfg := loadConfig()
		domain := strings.ToLower(strings.TrimSpace(strings.Join(args, " ")))

		venueSvc := buildVenueService(cfg, log)
		litSvc := buildLiteratureService(cfg, log)
		router := buildRouter(cfg, log)

		local, _ := cmd.Flags().GetBool("local")
		ideaSvc := ideas.NewService(router.Pick(local, ""), log)

		ctx := cmd.Context()
		set := venueSvc.Discover(ctx, domain)
		papers := litSvc.Fetch(ctx, domain, cfg.Literature.DefaultLimit)
		topics := ideaSvc.Generate(ctx, domain, set.All(), papers)

		for i, topic := range topics {
			fmt.Printf("%d. %s\n", i+1, topic)
		}
		return nil
	},
}

func init() {
	ideasCmd.Flags().Bool("local", false, "use the local Ollama model")

	rootCmd.AddCommand(ideasCmd)
}
