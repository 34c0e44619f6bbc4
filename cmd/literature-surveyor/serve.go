// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API server",
	Long: `Serve exposes the survey pipeline over HTTP: a health check at / and
POST /LS/content/v1/generate accepting {"question", "localLLM", "provider"}.
Dev frontends on any localhost port are allowed by CORS.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		log := newLogger()
		defer log.Sync()

		cfg := loadConfig()
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		svc := buildSurveyService(cfg, log)
		srv := server.New(svc, log)

		log.Info("starting HTTP server", zap.String("addr", cfg.Server.Addr))
		if err := srv.Router().Run(cfg.Server.Addr); err != nil {
			fmt.Fprintln(os.Stderr, "server error:", err)
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "listen address (default :8001)")

	rootCmd.AddCommand(serveCmd)
}
