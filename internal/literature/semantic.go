// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/pdiddy/literature-surveyor/internal/httputil"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// semanticSearchBase is the Semantic Scholar paper search endpoint.
// Declared as a var so tests can substitute an httptest server.
var semanticSearchBase = "https://api.semanticscholar.org/graph/v1/paper/search"

const semanticSearchFields = "title,abstract,year,venue,citationCount"

// SemanticScholarProvider is the secondary literature source. It also
// serves as the citation enricher for primary-provider results.
type SemanticScholarProvider struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Name returns the provider identifier.
func (p *SemanticScholarProvider) Name() string { return "semantic_scholar" }

// Search queries Semantic Scholar and adapts each record into the
// canonical Paper schema. Sustained rate limiting is an error so the
// service falls through to the next provider.
func (p *SemanticScholarProvider) Search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if limit < 1 {
		limit = 1
	}

	body, err := p.get(ctx, url.Values{
		"query":  {query},
		"limit":  {fmt.Sprintf("%d", limit)},
		"fields": {semanticSearchFields},
	})
	if err != nil {
		return nil, err
	}

	var papers []types.Paper
	for _, rec := range body.Data {
		title := strings.TrimSpace(rec.Title)
		if title == "" {
			continue
		}

		cited := rec.CitationCount
		if cited < 0 {
			cited = 0
		}

		papers = append(papers, types.Paper{
			Title:        title,
			Summary:      strings.TrimSpace(rec.Abstract),
			Year:         rec.Year,
			Source:       rec.Venue,
			CitedByCount: &cited,
		})
	}
	return papers, nil
}

// CitationCount looks up the citation count for a paper by title. The top
// search hit is accepted as the match; Semantic Scholar's ranking makes an
// exact-title query reliable enough for best-effort enrichment.
func (p *SemanticScholarProvider) CitationCount(ctx context.Context, title string) (int, error) {
	body, err := p.get(ctx, url.Values{
		"query":  {title},
		"limit":  {"1"},
		"fields": {"title,citationCount"},
	})
	if err != nil {
		return 0, err
	}
	if len(body.Data) == 0 {
		return 0, fmt.Errorf("no Semantic Scholar match for %q", title)
	}
	count := body.Data[0].CitationCount
	if count < 0 {
		count = 0
	}
	return count, nil
}

// get performs a search request with retry-on-429 and decodes the payload.
func (p *SemanticScholarProvider) get(ctx context.Context, params url.Values) (*semanticSearchResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}
	if p.APIKey != "" {
		req.Header.Set("x-api-key", p.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return nil, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, fmt.Errorf("Semantic Scholar rate limit hit")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var body semanticSearchResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}
	return &body, nil
}

// Semantic Scholar API JSON structures (literature-relevant fields only).
type semanticSearchResponse struct {
	Data []semanticPaper `json:"data"`
}

type semanticPaper struct {
	Title         string `json:"title"`
	Abstract      string `json:"abstract"`
	Year          int    `json:"year"`
	Venue         string `json:"venue"`
	CitationCount int    `json:"citationCount"`
}
