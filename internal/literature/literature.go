// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package literature retrieves example papers for a query from ranked
// academic search providers, normalizes them into the canonical Paper
// schema, enriches citation counts across providers, and falls back to a
// static mock set when nothing usable comes back.
package literature

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

const (
	// minResults and maxResults bound the fetch contract: whenever any
	// data is available, callers get between three and five papers.
	minResults = 3
	maxResults = 5

	// defaultYear is assigned when a provider reports no usable year.
	defaultYear = 2024

	// summaryDisplayLimit caps summaries fed into prompts and display.
	summaryDisplayLimit = 400
)

// Provider searches a single academic API and adapts its records into the
// canonical Paper schema at the boundary. A nil error with an empty slice
// means the provider answered but found nothing.
type Provider interface {
	Name() string
	Search(ctx context.Context, query string, limit int) ([]types.Paper, error)
}

// CitationEnricher looks up a citation count for a paper by title. Used to
// cross-check the primary provider's counts against a second source.
type CitationEnricher interface {
	CitationCount(ctx context.Context, title string) (int, error)
}

// Service tries providers in priority order and returns the first usable
// normalized result set. It holds only provider references and a logger.
type Service struct {
	providers []Provider
	enricher  CitationEnricher
	log       *zap.Logger
}

// NewService returns a literature service. Providers are tried strictly in
// the order given; enricher may be nil to disable citation enrichment.
func NewService(providers []Provider, enricher CitationEnricher, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{providers: providers, enricher: enricher, log: log}
}

// Fetch returns between three and limit papers for the query. The limit is
// clamped to [3,5]. An empty or whitespace-only query short-circuits to the
// mock set. Providers are consulted in priority order and the first whose
// normalized output is non-empty wins; when the primary provider succeeds
// its citation counts are enriched from the secondary source. Fetch never
// returns an error: provider and enrichment failures are logged and the
// pipeline degrades, terminally to mock papers.
func (s *Service) Fetch(ctx context.Context, query string, limit int) []types.Paper {
	limit = clampLimit(limit)
	query = strings.TrimSpace(query)
	if query == "" {
		return MockPapers(limit)
	}

	for i, p := range s.providers {
		papers, err := p.Search(ctx, query, limit)
		if err != nil {
			s.log.Warn("literature provider failed",
				zap.String("provider", p.Name()), zap.Error(err))
			continue
		}

		// Only the primary provider's results get cross-provider
		// citation enrichment; secondary results carry their own counts.
		if i == 0 && s.enricher != nil {
			s.enrich(ctx, papers)
		}

		papers = s.normalize(papers, limit)
		if len(papers) > 0 {
			s.log.Info("fetched literature",
				zap.String("provider", p.Name()),
				zap.String("query", query),
				zap.Int("papers", len(papers)))
			return papers
		}
	}

	s.log.Warn("all literature providers failed or returned nothing, using mock papers",
		zap.String("query", query))
	return MockPapers(limit)
}

// enrich updates each paper's citation count to the maximum of the primary
// count and the secondary source's count for the same title. A failed
// lookup keeps the original count and never aborts the pipeline.
func (s *Service) enrich(ctx context.Context, papers []types.Paper) {
	for i := range papers {
		if papers[i].Title == "" {
			continue
		}
		count, err := s.enricher.CitationCount(ctx, papers[i].Title)
		if err != nil {
			s.log.Debug("citation enrichment failed",
				zap.String("title", papers[i].Title), zap.Error(err))
			continue
		}
		if count < 0 {
			continue
		}
		if existing := papers[i].Citations(); existing > count {
			count = existing
		}
		papers[i].CitedByCount = &count
	}
}

// normalize applies the shared cleanup step to raw provider output: records
// without a title are dropped, missing years default, missing abstracts get
// a generated one-sentence summary, and negative citation counts are zeroed.
// Between one and two survivors are padded with mock papers up to three.
func (s *Service) normalize(papers []types.Paper, limit int) []types.Paper {
	if len(papers) > limit {
		papers = papers[:limit]
	}

	out := make([]types.Paper, 0, limit)
	for _, p := range papers {
		p.Title = strings.TrimSpace(p.Title)
		if p.Title == "" {
			continue
		}

		p.Summary = strings.TrimSpace(p.Summary)
		if p.Summary == "" {
			p.Summary = "This work appears to focus on: " + p.Title +
				". (Abstract unavailable; summary generated from title only.)"
		}

		if p.Year <= 0 {
			p.Year = defaultYear
		}

		if p.CitedByCount != nil && *p.CitedByCount < 0 {
			zero := 0
			p.CitedByCount = &zero
		}

		out = append(out, p)
	}

	if len(out) > 0 && len(out) < minResults {
		out = append(out, MockPapers(minResults-len(out))...)
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// clampLimit forces the requested result count into [3,5].
func clampLimit(limit int) int {
	if limit < minResults {
		return minResults
	}
	if limit > maxResults {
		return maxResults
	}
	return limit
}

// TruncateSummary shortens a summary for prompt or display use to at most
// max characters, cutting at a word boundary and appending an ellipsis
// marker. Summaries at or under the limit pass through unchanged.
func TruncateSummary(s string, max int) string {
	if max <= 0 {
		max = summaryDisplayLimit
	}
	if len(s) <= max {
		return s
	}
	cut := s[:max]
	if idx := strings.LastIndexByte(cut, ' '); idx > 0 {
		cut = cut[:idx]
	}
	return strings.TrimRight(cut, " ,;:") + "..."
}
