// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package venues

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/literature-surveyor/internal/httputil"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// semanticVenueBase is the Semantic Scholar paper search endpoint. Declared
// as a var so tests can substitute an httptest server.
var semanticVenueBase = "https://api.semanticscholar.org/graph/v1/paper/search"

// semanticVenuePageSize is how many recent papers to scan per query.
const semanticVenuePageSize = 10

// SemanticScholarProvider discovers venues by searching Semantic Scholar
// papers for the domain and extracting the venue each was published in.
// Semantic Scholar has no direct venue search either.
type SemanticScholarProvider struct {
	Client    *http.Client
	APIKey    string
	UserAgent string
}

// Name returns the provider identifier.
func (p *SemanticScholarProvider) Name() string { return "semantic_scholar" }

// Discover queries Semantic Scholar and classifies the venue of each paper.
// A rate-limited response (HTTP 429 surviving the retry budget) is reported
// as an error so the service treats it as a soft provider failure.
func (p *SemanticScholarProvider) Discover(ctx context.Context, domain string) (types.VenueSet, error) {
	params := url.Values{
		"query":  {domain},
		"limit":  {fmt.Sprintf("%d", semanticVenuePageSize)},
		"fields": {"venue,publicationVenue"},
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, semanticVenueBase+"?"+params.Encode(), nil)
	if err != nil {
		return types.VenueSet{}, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}
	if p.APIKey != "" {
		req.Header.Set("x-api-key", p.APIKey)
	}

	resp, err := httputil.DoWithRetry(ctx, p.Client, req, 0)
	if err != nil {
		return types.VenueSet{}, fmt.Errorf("Semantic Scholar API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return types.VenueSet{}, fmt.Errorf("Semantic Scholar rate limit hit")
	}
	if resp.StatusCode != http.StatusOK {
		return types.VenueSet{}, fmt.Errorf("Semantic Scholar API returned HTTP %d", resp.StatusCode)
	}

	var body semanticVenueResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.VenueSet{}, fmt.Errorf("parsing Semantic Scholar response: %w", err)
	}

	var vs types.VenueSet
	seen := make(map[string]struct{})
	for _, paper := range body.Data {
		// Prefer the detailed publication venue object over the bare string.
		name := paper.Venue
		if paper.PublicationVenue.Name != "" {
			name = paper.PublicationVenue.Name
		}
		if name == "" {
			continue
		}
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if classifyVenue(paper.PublicationVenue.Type, name) {
			vs.Conferences = append(vs.Conferences, name)
		} else {
			vs.Journals = append(vs.Journals, name)
		}
	}
	return vs, nil
}

// Semantic Scholar API JSON structures (venue-relevant fields only).
type semanticVenueResponse struct {
	Data []semanticVenuePaper `json:"data"`
}

type semanticVenuePaper struct {
	Venue            string              `json:"venue"`
	PublicationVenue semanticVenueRecord `json:"publicationVenue"`
}

type semanticVenueRecord struct {
	Name string `json:"name"`
	Type string `json:"type"`
}
