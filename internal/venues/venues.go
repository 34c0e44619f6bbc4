// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package venues discovers candidate publication venues for a research
// domain by querying academic APIs and merging their answers into a single
// deduplicated VenueSet, with static mock data as the terminal fallback.
package venues

import (
	"context"
	"sort"
	"strings"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// maxPerKind caps each venue list after the cross-provider merge.
const maxPerKind = 5

// Provider discovers venues from a single academic API. A nil error with an
// empty set means the provider answered but found nothing; an error means
// the provider could not be consulted at all. The discovery service treats
// both the same way: that provider contributes nothing to the merge.
type Provider interface {
	Name() string
	Discover(ctx context.Context, domain string) (types.VenueSet, error)
}

// Service fans a domain query out to all configured providers and merges
// the answers. It holds only provider references and a logger; it is safe
// for concurrent use.
type Service struct {
	providers []Provider
	log       *zap.Logger
}

// NewService returns a discovery service over the given providers.
func NewService(providers []Provider, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{providers: providers, log: log}
}

// Discover queries every provider for the domain, unions the returned
// conference and journal names, sorts each list lexicographically, and
// truncates to the top five. A failing or empty provider contributes
// nothing and never aborts the others. When no provider contributes any
// venue the static mock tables are returned instead, so Discover always
// yields a usable VenueSet and never returns an error.
func (s *Service) Discover(ctx context.Context, domain string) types.VenueSet {
	conferences := make(map[string]struct{})
	journals := make(map[string]struct{})

	anyData := false
	for _, p := range s.providers {
		vs, err := p.Discover(ctx, domain)
		if err != nil {
			s.log.Warn("venue provider failed",
				zap.String("provider", p.Name()), zap.Error(err))
			continue
		}
		if vs.IsEmpty() {
			s.log.Debug("venue provider returned no venues",
				zap.String("provider", p.Name()))
			continue
		}
		anyData = true
		for _, name := range vs.Conferences {
			conferences[name] = struct{}{}
		}
		for _, name := range vs.Journals {
			journals[name] = struct{}{}
		}
	}

	if !anyData {
		s.log.Warn("all venue providers failed or returned nothing, using mock venues",
			zap.String("domain", domain))
		return MockVenues(domain)
	}

	// Providers may disagree on classification for the same name; a name
	// already counted as a conference stays out of the journal list.
	for name := range conferences {
		delete(journals, name)
	}

	result := types.VenueSet{
		Conferences: topSorted(conferences, maxPerKind),
		Journals:    topSorted(journals, maxPerKind),
	}

	s.log.Info("discovered venues",
		zap.String("domain", domain),
		zap.Int("conferences", len(result.Conferences)),
		zap.Int("journals", len(result.Journals)))
	return result
}

// topSorted returns the set's members sorted lexicographically, capped at n.
func topSorted(set map[string]struct{}, n int) []string {
	names := make([]string, 0, len(set))
	for name := range set {
		names = append(names, name)
	}
	sort.Strings(names)
	if len(names) > n {
		names = names[:n]
	}
	return names
}

// conferenceHints are substrings that mark a venue name as a conference.
// The acronyms cover major ML venues that carry no generic keyword.
var conferenceHints = []string{
	"conf", "proc", "symposium", "workshop",
	"icml", "neurips", "cvpr", "aaai",
}

// classifyVenue decides conference vs journal from the provider-reported
// venue type, falling back to a keyword test on the display name. The name
// heuristic is approximate and known to misclassify venues whose names
// carry no hint; such venues default to the journal list.
func classifyVenue(venueType, name string) (conference bool) {
	t := strings.ToLower(venueType)
	if strings.Contains(t, "conference") || strings.Contains(t, "proceeding") {
		return true
	}
	if strings.Contains(t, "journal") {
		return false
	}

	lower := strings.ToLower(name)
	for _, hint := range conferenceHints {
		if strings.Contains(lower, hint) {
			return true
		}
	}
	return false
}
