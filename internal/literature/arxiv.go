// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"context"
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// arxivSearchBase is the arXiv query endpoint. Declared as a var so tests
// can substitute an httptest server.
var arxivSearchBase = "https://export.arxiv.org/api/query"

// ArxivProvider is the tertiary, preprint-archive fallback source.
type ArxivProvider struct {
	Client    *http.Client
	UserAgent string
}

// Name returns the provider identifier.
func (p *ArxivProvider) Name() string { return "arxiv" }

// Search queries the arXiv Atom feed and adapts each entry into the
// canonical Paper schema. arXiv reports no citation counts.
func (p *ArxivProvider) Search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if limit < 1 {
		limit = 1
	}

	params := url.Values{
		"search_query": {"all:" + query},
		"start":        {"0"},
		"max_results":  {fmt.Sprintf("%d", limit)},
		"sortBy":       {"relevance"},
		"sortOrder":    {"descending"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, arxivSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("arXiv API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("arXiv API returned HTTP %d", resp.StatusCode)
	}

	var feed arxivFeed
	if err := xml.NewDecoder(resp.Body).Decode(&feed); err != nil {
		return nil, fmt.Errorf("parsing arXiv response: %w", err)
	}

	var papers []types.Paper
	for _, entry := range feed.Entries {
		title := strings.TrimSpace(entry.Title)
		if title == "" {
			continue
		}

		year := 0
		if t, parseErr := time.Parse(time.RFC3339, entry.Published); parseErr == nil {
			year = t.Year()
		}

		papers = append(papers, types.Paper{
			Title:   title,
			Summary: strings.TrimSpace(entry.Summary),
			Year:    year,
			Source:  "arXiv",
		})
	}
	return papers, nil
}

// arXiv Atom feed XML structures.
type arxivFeed struct {
	Entries []arxivEntry `xml:"entry"`
}

type arxivEntry struct {
	Title     string `xml:"title"`
	Summary   string `xml:"summary"`
	Published string `xml:"published"`
}
