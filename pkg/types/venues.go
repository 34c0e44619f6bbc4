// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the canonical data structures shared across the
// literature-surveyor pipeline: venue sets, papers, and stage configuration.
// Provider clients adapt their wire schemas into these types at the boundary
// so downstream code never branches on provider-specific field names.
package types

// VenueSet holds candidate publication venues for a research domain, split
// into conferences and journals. Each list holds at most five unique names.
// When a set is built from a cross-provider union the lists are sorted
// lexicographically so merge output is deterministic.
type VenueSet struct {
	Conferences []string `json:"conferences" yaml:"conferences"`
	Journals    []string `json:"journals" yaml:"journals"`
}

// IsEmpty reports whether the set contains no venues at all.
func (v VenueSet) IsEmpty() bool {
	return len(v.Conferences) == 0 && len(v.Journals) == 0
}

// All returns conferences followed by journals as a single list, for callers
// that treat venues uniformly (prompt building, display).
func (v VenueSet) All() []string {
	all := make([]string, 0, len(v.Conferences)+len(v.Journals))
	all = append(all, v.Conferences...)
	all = append(all, v.Journals...)
	return all
}
