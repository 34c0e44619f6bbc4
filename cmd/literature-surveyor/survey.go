// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pdiddy/literature-surveyor/internal/survey"
)

var surveyCmd = &cobra.Command{
	Use:   "survey <question>",
	Short: "Run the full survey pipeline for a research question",
	Long: `Survey runs the complete pipeline: input normalization, venue
discovery, literature retrieval, relevance filtering, idea generation, and
a one-sentence landscape overview, then prints the assembled answer.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		local, _ := cmd.Flags().GetBool("local")
		provider, _ := cmd.Flags().GetString("provider")

		svc := buildSurveyService(loadConfig(), log)
		resp, err := svc.Run(cmd.Context(), survey.Request{
			Question: strings.Join(args, " "),
			LocalLLM: local,
			Provider: provider,
		})
		if err != nil {
			return err
		}

		if asJSON, _ := cmd.Flags().GetBool("json"); asJSON {
			enc := json.NewEncoder(os.Stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(resp)
		}

		fmt.Println(resp.Answer)
		return nil
	},
}

func init() {
	surveyCmd.Flags().Bool("local", false, "use the local Ollama model")
	surveyCmd.Flags().String("provider", "", "provider name recorded in the response")
	surveyCmd.Flags().Bool("json", false, "output the full response envelope as JSON")

	rootCmd.AddCommand(surveyCmd)
}
