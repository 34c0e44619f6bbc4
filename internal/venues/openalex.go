// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package venues

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// openAlexVenueBase is the OpenAlex Works search endpoint. Declared as a
// var so tests can substitute an httptest server.
var openAlexVenueBase = "https://api.openalex.org/works"

// openAlexPageSize is how many works to scan per query. Sixty highly cited
// papers give a good mix of distinct venues for one topic.
const openAlexPageSize = 60

// OpenAlexProvider discovers venues by searching OpenAlex works for the
// domain and extracting the source each paper appeared in. OpenAlex has no
// direct venue search, so venue coverage follows from paper coverage.
type OpenAlexProvider struct {
	Client *http.Client
	// Email is sent as the mailto parameter for polite pool access.
	Email     string
	UserAgent string
}

// Name returns the provider identifier.
func (p *OpenAlexProvider) Name() string { return "openalex" }

// Discover queries OpenAlex works sorted by citation count and classifies
// each distinct source into conferences or journals.
func (p *OpenAlexProvider) Discover(ctx context.Context, domain string) (types.VenueSet, error) {
	params := url.Values{
		"search":   {domain},
		"per_page": {fmt.Sprintf("%d", openAlexPageSize)},
		"sort":     {"cited_by_count:desc"},
	}
	if p.Email != "" {
		params.Set("mailto", p.Email)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, openAlexVenueBase+"?"+params.Encode(), nil)
	if err != nil {
		return types.VenueSet{}, fmt.Errorf("creating request: %w", err)
	}
	if p.UserAgent != "" {
		req.Header.Set("User-Agent", p.UserAgent)
	}

	resp, err := p.Client.Do(req)
	if err != nil {
		return types.VenueSet{}, fmt.Errorf("OpenAlex API request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.VenueSet{}, fmt.Errorf("OpenAlex API returned HTTP %d", resp.StatusCode)
	}

	var body openAlexWorksResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return types.VenueSet{}, fmt.Errorf("parsing OpenAlex response: %w", err)
	}

	var vs types.VenueSet
	seen := make(map[string]struct{})
	for _, work := range body.Results {
		source := work.PrimaryLocation.Source
		if source.DisplayName == "" {
			continue
		}
		if _, ok := seen[source.DisplayName]; ok {
			continue
		}
		seen[source.DisplayName] = struct{}{}

		if classifyVenue(source.Type, source.DisplayName) {
			vs.Conferences = append(vs.Conferences, source.DisplayName)
		} else {
			vs.Journals = append(vs.Journals, source.DisplayName)
		}
	}

	// Keep the top five per kind; works are citation-sorted, so the first
	// venues seen come from the most cited papers.
	if len(vs.Conferences) > maxPerKind {
		vs.Conferences = vs.Conferences[:maxPerKind]
	}
	if len(vs.Journals) > maxPerKind {
		vs.Journals = vs.Journals[:maxPerKind]
	}
	return vs, nil
}

// OpenAlex API JSON structures (venue-relevant fields only).
type openAlexWorksResponse struct {
	Results []openAlexVenueWork `json:"results"`
}

type openAlexVenueWork struct {
	PrimaryLocation openAlexLocation `json:"primary_location"`
}

type openAlexLocation struct {
	Source openAlexSource `json:"source"`
}

type openAlexSource struct {
	DisplayName string `json:"display_name"`
	Type        string `json:"type"`
}
