// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"strings"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// minTokenLen drops glue words ("for", "of", "the") from the overlap check
// without maintaining a stopword list.
const minTokenLen = 4

// domainTokens splits a normalized domain into the tokens used for the
// relevance overlap check.
func domainTokens(domain string) []string {
	var tokens []string
	for _, tok := range strings.Fields(strings.ToLower(domain)) {
		tok = strings.Trim(tok, ".,;:!?\"'()")
		if len(tok) >= minTokenLen {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

// FilterPapers keeps papers whose title or summary shares at least one
// domain token. Filtering never empties the list: if nothing overlaps the
// original slice is returned so downstream stages still have input.
func FilterPapers(domain string, papers []types.Paper) []types.Paper {
	tokens := domainTokens(domain)
	if len(tokens) == 0 || len(papers) == 0 {
		return papers
	}

	var kept []types.Paper
	for _, p := range papers {
		text := strings.ToLower(p.Title + " " + p.Summary)
		for _, tok := range tokens {
			if strings.Contains(text, tok) {
				kept = append(kept, p)
				break
			}
		}
	}
	if len(kept) == 0 {
		return papers
	}
	return kept
}

// FilterVenues applies the same overlap check to venue names, per kind.
// Venue names rarely contain domain words (acronyms dominate), so the
// keep-original rule fires often here and that is fine.
func FilterVenues(domain string, set types.VenueSet) types.VenueSet {
	tokens := domainTokens(domain)
	if len(tokens) == 0 {
		return set
	}
	return types.VenueSet{
		Conferences: filterNames(tokens, set.Conferences),
		Journals:    filterNames(tokens, set.Journals),
	}
}

func filterNames(tokens, names []string) []string {
	var kept []string
	for _, name := range names {
		lower := strings.ToLower(name)
		for _, tok := range tokens {
			if strings.Contains(lower, tok) {
				kept = append(kept, name)
				break
			}
		}
	}
	if len(kept) == 0 {
		return names
	}
	return kept
}
