// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package survey orchestrates one literature-survey request end to end:
// normalize the question, discover venues, fetch and filter papers,
// generate topics and a one-sentence overview, and assemble the response
// envelope. Every stage degrades to fallback input for the next; only an
// empty final answer is an error.
package survey

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/llm"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

const defaultPaperLimit = 5

// Request is one survey invocation. The question doubles as the research
// domain; LocalLLM routes generation to the local model.
type Request struct {
	Question string `json:"question"`
	LocalLLM bool   `json:"localLLM"`
	Provider string `json:"provider"`
}

// Intent is the normalized research intent derived from the question.
type Intent struct {
	Domain string `json:"domain"`
	Scope  string `json:"scope"`
}

// Response is the full envelope returned to the caller. Fallback-sourced
// and live content are not distinguished.
type Response struct {
	OriginalQuestion string         `json:"originalQuestion"`
	ProviderUsed     string         `json:"providerUsed"`
	UsedLocalLLM     bool           `json:"usedLocalLLM"`
	Intent           Intent         `json:"researchIntent"`
	Venues           types.VenueSet `json:"venues"`
	Papers           []types.Paper  `json:"papers"`
	Topics           []string       `json:"ideas"`
	Overview         string         `json:"overview"`
	Answer           string         `json:"answer"`
}

// VenueDiscoverer is the venue-discovery stage contract.
type VenueDiscoverer interface {
	Discover(ctx context.Context, domain string) types.VenueSet
}

// LiteratureFetcher is the literature-retrieval stage contract.
type LiteratureFetcher interface {
	Fetch(ctx context.Context, query string, limit int) []types.Paper
}

// TopicGenerator is the idea-generation stage contract.
type TopicGenerator interface {
	Generate(ctx context.Context, domain string, venues []string, papers []types.Paper) []string
}

// Service runs the survey pipeline with fixed stage implementations and a
// per-request LLM route for the overview call.
type Service struct {
	venues VenueDiscoverer
	papers LiteratureFetcher
	topics TopicGenerator
	router llm.Router
	log    *zap.Logger
}

// NewService wires the pipeline stages together.
func NewService(venues VenueDiscoverer, papers LiteratureFetcher, topics TopicGenerator, router llm.Router, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{venues: venues, papers: papers, topics: topics, router: router, log: log}
}

// Run executes the pipeline for one request. The returned error is limited
// to invalid input and an empty final answer; every upstream failure
// degrades inside the stages instead.
func (s *Service) Run(ctx context.Context, req Request) (*Response, error) {
	domain := strings.ToLower(strings.TrimSpace(req.Question))
	if domain == "" {
		return nil, errors.New("question must not be empty")
	}

	intent := Intent{Domain: domain, Scope: classifyScope(domain)}
	s.log.Info("survey started",
		zap.String("domain", domain),
		zap.String("scope", intent.Scope),
		zap.Bool("local_llm", req.LocalLLM))

	venueSet := s.venues.Discover(ctx, domain)
	venueSet = FilterVenues(domain, venueSet)

	papers := s.papers.Fetch(ctx, domain, defaultPaperLimit)
	papers = FilterPapers(domain, papers)

	topics := s.topics.Generate(ctx, domain, venueSet.All(), papers)

	backend := s.router.Pick(req.LocalLLM, req.Provider)
	overview := s.overview(ctx, backend, domain, len(papers))

	resp := &Response{
		OriginalQuestion: req.Question,
		ProviderUsed:     providerUsed(req, backend),
		UsedLocalLLM:     req.LocalLLM,
		Intent:           intent,
		Venues:           venueSet,
		Papers:           papers,
		Topics:           topics,
		Overview:         overview,
	}
	resp.Answer = formatAnswer(resp)
	if strings.TrimSpace(resp.Answer) == "" {
		return nil, errors.New("assembled answer is empty")
	}

	s.log.Info("survey completed",
		zap.String("domain", domain),
		zap.Int("papers", len(papers)),
		zap.Int("ideas", len(topics)))
	return resp, nil
}

// classifyScope applies the word-count heuristic: two words or fewer reads
// as a broad field, anything longer as a narrow question.
func classifyScope(domain string) string {
	if len(strings.Fields(domain)) <= 2 {
		return "broad"
	}
	return "narrow"
}

// overview asks the routed backend for a one-sentence summary of the
// surveyed landscape. Failure degrades to an empty string.
func (s *Service) overview(ctx context.Context, backend llm.Backend, domain string, paperCount int) string {
	if backend == nil {
		return ""
	}
	prompt := fmt.Sprintf(
		"In one sentence, summarize the current research landscape of %s, drawing on %d representative papers.",
		domain, paperCount)
	raw, err := backend.Complete(ctx, prompt)
	if err != nil {
		s.log.Warn("overview generation failed",
			zap.String("backend", backend.Name()), zap.Error(err))
		return ""
	}
	return llm.ExtractAnswer(raw)
}

func providerUsed(req Request, backend llm.Backend) string {
	if req.LocalLLM {
		return "local"
	}
	if p := strings.TrimSpace(req.Provider); p != "" {
		return p
	}
	if backend != nil {
		return backend.Name()
	}
	return "unknown"
}

// formatAnswer renders the multi-line text answer mirroring the structured
// payload.
func formatAnswer(resp *Response) string {
	var sb strings.Builder

	if resp.Overview != "" {
		sb.WriteString(resp.Overview)
		sb.WriteString("\n\n")
	}

	sb.WriteString("Target venues for ")
	sb.WriteString(resp.Intent.Domain)
	sb.WriteString(":\n")
	sb.WriteString("  Conferences: ")
	sb.WriteString(joinOrNone(resp.Venues.Conferences))
	sb.WriteString("\n  Journals: ")
	sb.WriteString(joinOrNone(resp.Venues.Journals))
	sb.WriteString("\n\nRepresentative papers:\n")
	for _, p := range resp.Papers {
		fmt.Fprintf(&sb, "  - %s (%d)", p.Title, p.Year)
		if p.CitedByCount != nil {
			fmt.Fprintf(&sb, " [%d citations]", *p.CitedByCount)
		}
		sb.WriteString("\n")
	}
	sb.WriteString("\nSuggested research topics:\n")
	for i, topic := range resp.Topics {
		fmt.Fprintf(&sb, "  %d. %s\n", i+1, topic)
	}
	return sb.String()
}

func joinOrNone(names []string) string {
	if len(names) == 0 {
		return "(none found)"
	}
	return strings.Join(names, ", ")
}
