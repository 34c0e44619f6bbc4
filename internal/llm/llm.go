// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package llm abstracts text-completion backends behind a single interface
// with two implementations: the hosted Claude API and a local Ollama server.
package llm

import (
	"context"
	"encoding/json"
	"strings"
)

// Backend produces a text completion for a prompt. Implementations adapt
// one model API each and surface transport and API failures as errors.
type Backend interface {
	Name() string
	Complete(ctx context.Context, prompt string) (string, error)
}

// Router selects between the hosted and local backends based on the
// per-request routing flag. The provider name is advisory; only the local
// flag changes the route.
type Router struct {
	Remote Backend
	Local  Backend
}

// Pick returns the backend for a request. The local flag wins; otherwise
// the hosted backend serves regardless of the named provider.
func (r Router) Pick(local bool, _ string) Backend {
	if local && r.Local != nil {
		return r.Local
	}
	return r.Remote
}

// ExtractAnswer pulls the usable answer text out of a raw model response.
// Models sometimes wrap their answer in a JSON object or markdown code
// fences; plain text passes through trimmed. A JSON object is searched for
// the conventional answer-bearing keys in a fixed preference order.
func ExtractAnswer(raw string) string {
	raw = strings.TrimSpace(stripCodeFences(raw))
	if raw == "" {
		return ""
	}

	if strings.HasPrefix(raw, "{") {
		var obj map[string]any
		if err := json.Unmarshal([]byte(raw), &obj); err == nil {
			for _, key := range []string{"answer", "summary", "text", "data", "response"} {
				if v, ok := obj[key]; ok {
					if s, ok := v.(string); ok && strings.TrimSpace(s) != "" {
						return strings.TrimSpace(s)
					}
				}
			}
		}
	}
	return raw
}

// stripCodeFences removes a surrounding markdown code fence, including an
// optional language tag on the opening fence.
func stripCodeFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	parts := strings.SplitN(s, "\n", 2)
	if len(parts) == 2 {
		s = parts[1]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimPrefix(s, "json")
	return strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "```"))
}
