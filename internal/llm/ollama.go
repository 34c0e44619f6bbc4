// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
)

const (
	// DefaultOllamaURL is the conventional local Ollama endpoint.
	DefaultOllamaURL = "http://localhost:11434"

	// DefaultOllamaModel is used when no local model is configured.
	DefaultOllamaModel = "llama3"
)

// OllamaBackend completes prompts through a locally running Ollama server.
type OllamaBackend struct {
	Client  *http.Client
	BaseURL string
	Model   string
}

// NewOllamaBackend builds an Ollama backend. URL and model default when empty.
func NewOllamaBackend(client *http.Client, baseURL, model string) *OllamaBackend {
	if client == nil {
		client = http.DefaultClient
	}
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultOllamaURL
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultOllamaModel
	}
	return &OllamaBackend{Client: client, BaseURL: strings.TrimRight(baseURL, "/"), Model: model}
}

// Name returns the backend identifier.
func (b *OllamaBackend) Name() string { return "ollama" }

// Complete posts a non-streaming generate request and returns the response
// text.
func (b *OllamaBackend) Complete(ctx context.Context, prompt string) (string, error) {
	payload, err := json.Marshal(ollamaGenerateRequest{
		Model:  b.Model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("encoding generate request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+"/api/generate", bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := b.Client.Do(req)
	if err != nil {
		return "", fmt.Errorf("ollama request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("ollama returned HTTP %d", resp.StatusCode)
	}

	var body ollamaGenerateResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("parsing ollama response: %w", err)
	}

	out := strings.TrimSpace(body.Response)
	if out == "" {
		return "", errors.New("ollama returned an empty completion")
	}
	return out, nil
}

type ollamaGenerateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

type ollamaGenerateResponse struct {
	Response string `json:"response"`
}
