// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	anthropic "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

const (
	// DefaultClaudeModel is used when no model is configured.
	DefaultClaudeModel = "claude-3-5-sonnet-20241022"

	claudeMaxTokens = 1024

	claudeSystemPrompt = "You are a research assistant helping scholars survey " +
		"academic literature and develop novel research directions. Be concrete " +
		"and concise."
)

// Messager is the slice of the Anthropic client the backend needs. Tests
// substitute a fake; production wires &client.Messages.
type Messager interface {
	New(ctx context.Context, params anthropic.MessageNewParams, opts ...option.RequestOption) (*anthropic.Message, error)
}

// ClaudeBackend completes prompts through the hosted Anthropic API.
type ClaudeBackend struct {
	messages Messager
	model    string
}

// NewClaudeBackend builds a Claude backend from an API key. The model name
// defaults when empty.
func NewClaudeBackend(apiKey, model string) (*ClaudeBackend, error) {
	apiKey = strings.TrimSpace(apiKey)
	if apiKey == "" {
		return nil, errors.New("anthropic API key not configured")
	}
	if strings.TrimSpace(model) == "" {
		model = DefaultClaudeModel
	}
	c := anthropic.NewClient(option.WithAPIKey(apiKey))
	return &ClaudeBackend{messages: &c.Messages, model: model}, nil
}

// NewClaudeBackendWithMessager is the test seam: it accepts any Messager.
func NewClaudeBackendWithMessager(m Messager, model string) *ClaudeBackend {
	if strings.TrimSpace(model) == "" {
		model = DefaultClaudeModel
	}
	return &ClaudeBackend{messages: m, model: model}
}

// Name returns the backend identifier.
func (b *ClaudeBackend) Name() string { return "claude" }

// Complete sends one message exchange and concatenates the text blocks of
// the reply.
func (b *ClaudeBackend) Complete(ctx context.Context, prompt string) (string, error) {
	resp, err := b.messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(b.model),
		MaxTokens: claudeMaxTokens,
		System:    []anthropic.TextBlockParam{{Text: claudeSystemPrompt}},
		Messages:  []anthropic.MessageParam{anthropic.NewUserMessage(anthropic.NewTextBlock(prompt))},
	})
	if err != nil {
		return "", fmt.Errorf("anthropic message: %w", err)
	}

	var sb strings.Builder
	for _, block := range resp.Content {
		if block.Type == "text" {
			sb.WriteString(block.Text)
		}
	}
	out := strings.TrimSpace(sb.String())
	if out == "" {
		return "", errors.New("anthropic returned an empty completion")
	}
	return out, nil
}
