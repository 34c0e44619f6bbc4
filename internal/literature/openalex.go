// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// openAlexSearchBase is the OpenAlex Works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openAlexSearchBase = "https://api.openalex.org/works"

// abstractCap bounds abstracts reconstructed from the inverted index.
const abstractCap = 1000

// OpenAlexProvider is the primary literature source. OpenAlex carries
// citation counts natively, which is why it heads the priority order.
type OpenAlexProvider struct {
	Client *http.Client
	// Email is sent as the mailto parameter for polite pool access.
	Email     string
	UserAgent string
}

// Name returns the provider identifier.
func (p *OpenAlexProvider) Name() string { return "openalex" }

// Search queries OpenAlex works sorted by citation count and adapts each
// record into the canonical Paper schema.
func (p *OpenAlexProvider) Search(ctx context.Context, query string, limit int) ([]types.Paper, error) {
	if limit < 1 {
		limit = 1
	}
	if limit > maxResults {
		limit = maxResults
	}

	params := url.Values{
		"search":   {query},
		"per_page": {fmt.Sprintf("%d", limit)},
		"sort":     {"cited_by_count:desc"},
	}
	if p.Email != "" {
		params.Set("mailto", p.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openAlexSearchBase+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var body openAlexWorksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var papers []types.Paper
	for _, work := range body.Results {
		title := strings.TrimSpace(work.DisplayName)
		if title == "" {
			continue
		}

		source := work.PrimaryLocation.Source.DisplayName
		if source == "" {
			source = "OpenAlex"
		}

		cited := work.CitedByCount
		if cited < 0 {
			cited = 0
		}

		papers = append(papers, types.Paper{
			Title:        title,
			Summary:      reconstructAbstract(work.AbstractInvertedIndex),
			Year:         work.PublicationYear,
			Source:       source,
			CitedByCount: &cited,
		})
	}
	return papers, nil
}

// reconstructAbstract converts OpenAlex's abstract_inverted_index back to
// readable text. The index maps each token to the positions it appears at;
// ordering tokens by first occurrence recovers an approximation of the
// original abstract, capped to keep prompts bounded.
func reconstructAbstract(index map[string][]int) string {
	if len(index) == 0 {
		return ""
	}

	type tokenPos struct {
		token string
		first int
	}
	tokens := make([]tokenPos, 0, len(index))
	for token, positions := range index {
		first := 0
		if len(positions) > 0 {
			first = positions[0]
		}
		tokens = append(tokens, tokenPos{token: token, first: first})
	}

	sort.Slice(tokens, func(i, j int) bool {
		return tokens[i].first < tokens[j].first
	})

	words := make([]string, len(tokens))
	for i, tp := range tokens {
		words[i] = tp.token
	}

	abstract := strings.Join(words, " ")
	if len(abstract) > abstractCap {
		abstract = abstract[:abstractCap]
	}
	return abstract
}

// OpenAlex API JSON structures (literature-relevant fields only).
type openAlexWorksResponse struct {
	Results []openAlexWork `json:"results"`
}

type openAlexWork struct {
	DisplayName           string           `json:"display_name"`
	PublicationYear       int              `json:"publication_year"`
	CitedByCount          int              `json:"cited_by_count"`
	AbstractInvertedIndex map[string][]int `json:"abstract_inverted_index"`
	PrimaryLocation       openAlexLocation `json:"primary_location"`
}

type openAlexLocation struct {
	Source openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
}
