// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// HTTPConfig holds shared HTTP settings used by stages that call external APIs.
type HTTPConfig struct {
	// Timeout is the per-request timeout for provider calls.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "literature-surveyor/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// VenueConfig holds settings for the venue discovery stage.
type VenueConfig struct {
	HTTPConfig `yaml:",inline"`

	// OpenAlexEmail is sent as the mailto parameter for OpenAlex polite
	// pool access. Discovery works without it, just slower.
	OpenAlexEmail string `json:"openalex_email,omitempty" yaml:"openalex_email,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`
}

// LiteratureConfig holds settings for the literature retrieval stage.
type LiteratureConfig struct {
	HTTPConfig `yaml:",inline"`

	// OpenAlexEmail is sent as the mailto parameter on OpenAlex requests.
	OpenAlexEmail string `json:"openalex_email,omitempty" yaml:"openalex_email,omitempty"`

	// SemanticScholarAPIKey is an optional API key for higher rate limits.
	SemanticScholarAPIKey string `json:"semantic_scholar_api_key,omitempty" yaml:"semantic_scholar_api_key,omitempty"`

	// DefaultLimit is the paper count requested when the caller does not
	// specify one. Clamped to [3,5] by the service.
	DefaultLimit int `json:"default_limit" yaml:"default_limit"`
}

// IdeaConfig holds settings for idea and overview generation.
type IdeaConfig struct {
	// Model is the remote model identifier (e.g. "claude-sonnet-4-5-20250929").
	Model string `json:"model" yaml:"model"`

	// APIKey authenticates against the remote model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// OllamaURL is the base URL of a local model server used when a
	// request asks for local generation (default "http://localhost:11434").
	OllamaURL string `json:"ollama_url" yaml:"ollama_url"`

	// LocalModel is the model name passed to the local server.
	LocalModel string `json:"local_model" yaml:"local_model"`
}

// ServerConfig holds settings for the HTTP server.
type ServerConfig struct {
	// Addr is the listen address (default ":8001").
	Addr string `json:"addr" yaml:"addr"`
}

// SurveyConfig groups all stage configurations for the survey pipeline.
type SurveyConfig struct {
	Venues     VenueConfig      `json:"venues" yaml:"venues"`
	Literature LiteratureConfig `json:"literature" yaml:"literature"`
	Ideas      IdeaConfig       `json:"ideas" yaml:"ideas"`
	Server     ServerConfig     `json:"server" yaml:"server"`
}
