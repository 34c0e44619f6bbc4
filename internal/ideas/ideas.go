// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package ideas turns a research domain, its venues, and example papers
// into a short list of novel research topics via one LLM completion, with
// parsed-output repair and static fallbacks when the model underdelivers.
package ideas

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/llm"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

const (
	// minTopics and topicCount bound the output contract: at least three
	// parsed or fallback topics, padded to exactly five.
	minTopics  = 3
	topicCount = 5

	// topicPlaceholder pads the list when parsing and fallbacks together
	// still come up short of five.
	topicPlaceholder = "Open research direction pending further literature review"
)

// topicLine matches a numbered list item: leading numeral, a separator of
// ')', '.', '-', or whitespace, then the topic text.
var topicLine = regexp.MustCompile(`^\s*\d+[).\s-]+(.+)`)

// Service generates research topics with a single backend call per request.
type Service struct {
	backend llm.Backend
	log     *zap.Logger
}

// NewService returns an idea service bound to one completion backend.
func NewService(backend llm.Backend, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{backend: backend, log: log}
}

// Generate builds the prompt, invokes the backend exactly once, and parses
// the reply into topics. Fewer than three parsed topics get augmented with
// domain fallbacks; the result is truncated then padded so the returned
// slice always has exactly five entries. A backend failure degrades to the
// fallback set rather than erroring.
func (s *Service) Generate(ctx context.Context, domain string, venues []string, papers []types.Paper) []string {
	prompt := BuildPrompt(domain, venues, papers)

	var topics []string
	raw, err := s.backend.Complete(ctx, prompt)
	if err != nil {
		s.log.Warn("idea generation backend failed",
			zap.String("backend", s.backend.Name()), zap.Error(err))
	} else {
		topics = ParseTopics(raw)
	}

	if len(topics) < minTopics {
		topics = append(topics, FallbackTopics(domain)...)
	}
	if len(topics) > topicCount {
		topics = topics[:topicCount]
	}
	for len(topics) < topicCount {
		topics = append(topics, topicPlaceholder)
	}
	return topics
}

// ParseTopics scans the raw model output line by line and collects the text
// of every numbered list item. Non-matching lines are ignored.
func ParseTopics(text string) []string {
	var topics []string
	for _, line := range strings.Split(text, "\n") {
		m := topicLine.FindStringSubmatch(line)
		if m == nil {
			continue
		}
		topic := strings.TrimSpace(m[1])
		if topic != "" {
			topics = append(topics, topic)
		}
	}
	return topics
}

// FallbackTopics returns five generic but domain-anchored research topics
// used when the model produces too few parseable lines.
func FallbackTopics(domain string) []string {
	domain = strings.TrimSpace(domain)
	if domain == "" {
		domain = "the target field"
	}
	return []string{
		fmt.Sprintf("A systematic survey of recent advances in %s", domain),
		fmt.Sprintf("Benchmark design and evaluation methodology for %s", domain),
		fmt.Sprintf("Data efficiency and low-resource techniques in %s", domain),
		fmt.Sprintf("Robustness and failure-mode analysis of state-of-the-art %s systems", domain),
		fmt.Sprintf("Reproducibility and open tooling for %s research", domain),
	}
}
