// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/ideas"
	"github.com/pdiddy/literature-surveyor/internal/literature"
	"github.com/pdiddy/literature-surveyor/internal/llm"
	"github.com/pdiddy/literature-surveyor/internal/secrets"
	"github.com/pdiddy/literature-surveyor/internal/survey"
	"github.com/pdiddy/literature-surveyor/internal/venues"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

const defaultUserAgent = "literature-surveyor/0.1"

// newLogger builds the process logger. Verbose switches to the development
// encoder with debug level.
func newLogger() *zap.Logger {
	verbose, _ := rootCmd.PersistentFlags().GetBool("verbose")
	var (
		log *zap.Logger
		err error
	)
	if verbose {
		log, err = zap.NewDevelopment()
	} else {
		log, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "logger init failed, continuing without logging:", err)
		return zap.NewNop()
	}
	return log
}

// loadConfig assembles the pipeline configuration from viper with secrets
// as fallback for credential fields.
func loadConfig() types.SurveyConfig {
	viper.SetDefault("http.timeout", "10s")
	viper.SetDefault("http.user_agent", defaultUserAgent)
	viper.SetDefault("literature.default_limit", 5)
	viper.SetDefault("server.addr", ":8001")

	httpCfg := types.HTTPConfig{
		Timeout:   viper.GetDuration("http.timeout"),
		UserAgent: viper.GetString("http.user_agent"),
	}
	email := secretDefault(secrets.KeyOpenAlexEmail, viper.GetString("openalex.email"))
	s2Key := secretDefault(secrets.KeySemanticScholar, viper.GetString("semantic_scholar.api_key"))

	return types.SurveyConfig{
		Venues: types.VenueConfig{
			HTTPConfig:            httpCfg,
			OpenAlexEmail:         email,
			SemanticScholarAPIKey: s2Key,
		},
		Literature: types.LiteratureConfig{
			HTTPConfig:            httpCfg,
			OpenAlexEmail:         email,
			SemanticScholarAPIKey: s2Key,
			DefaultLimit:          viper.GetInt("literature.default_limit"),
		},
		Ideas: types.IdeaConfig{
			Model:      viper.GetString("llm.model"),
			APIKey:     secretDefault(secrets.KeyAnthropic, viper.GetString("llm.api_key")),
			OllamaURL:  viper.GetString("llm.ollama_url"),
			LocalModel: viper.GetString("llm.local_model"),
		},
		Server: types.ServerConfig{
			Addr: viper.GetString("server.addr"),
		},
	}
}

func newHTTPClient(cfg types.HTTPConfig) *http.Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &http.Client{Timeout: timeout}
}

func buildVenueService(cfg types.SurveyConfig, log *zap.Logger) *venues.Service {
	client := newHTTPClient(cfg.Venues.HTTPConfig)
	return venues.NewService([]venues.Provider{
		&venues.OpenAlexProvider{
			Client:    client,
			Email:     cfg.Venues.OpenAlexEmail,
			UserAgent: cfg.Venues.UserAgent,
		},
		&venues.SemanticScholarProvider{
			Client:    client,
			APIKey:    cfg.Venues.SemanticScholarAPIKey,
			UserAgent: cfg.Venues.UserAgent,
		},
	}, log)
}

func buildLiteratureService(cfg types.SurveyConfig, log *zap.Logger) *literature.Service {
	client := newHTTPClient(cfg.Literature.HTTPConfig)
	semantic := &literature.SemanticScholarProvider{
		Client:    client,
		APIKey:    cfg.Literature.SemanticScholarAPIKey,
		UserAgent: cfg.Literature.UserAgent,
	}
	providers := []literature.Provider{
		&literature.OpenAlexProvider{
			Client:    client,
			Email:     cfg.Literature.OpenAlexEmail,
			UserAgent: cfg.Literature.UserAgent,
		},
		semantic,
		&literature.ArxivProvider{
			Client:    client,
			UserAgent: cfg.Literature.UserAgent,
		},
	}
	return literature.NewService(providers, semantic, log)
}

// buildRouter wires the hosted and local completion backends. A missing
// Anthropic key leaves the remote slot on the local backend so generation
// still works offline.
func buildRouter(cfg types.SurveyConfig, log *zap.Logger) llm.Router {
	local := llm.NewOllamaBackend(nil, cfg.Ideas.OllamaURL, cfg.Ideas.LocalModel)

	remote, err := llm.NewClaudeBackend(cfg.Ideas.APIKey, cfg.Ideas.Model)
	if err != nil {
		log.Warn("claude backend unavailable, routing all generation locally", zap.Error(err))
		return llm.Router{Remote: local, Local: local}
	}
	return llm.Router{Remote: remote, Local: local}
}

func buildSurveyService(cfg types.SurveyConfig, log *zap.Logger) *survey.Service {
	router := buildRouter(cfg, log)
	ideaSvc := ideas.NewService(router.Pick(false, ""), log)
	return survey.NewService(
		buildVenueService(cfg, log),
		buildLiteratureService(cfg, log),
		ideaSvc,
		router,
		log,
	)
}
