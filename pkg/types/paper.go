// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Paper is the canonical record for a retrieved piece of literature. Every
// provider response is normalized into this shape; records without a title
// are dropped during normalization, so Title is never empty downstream.
type Paper struct {
	// Title is the paper title as reported by the provider.
	Title string `json:"title" yaml:"title"`

	// Summary is the abstract, or a generated one-sentence placeholder
	// referencing the title when the provider supplied no abstract.
	Summary string `json:"summary" yaml:"summary"`

	// Year is the publication year. Unparseable or missing years are
	// coerced to a fixed default during normalization.
	Year int `json:"year" yaml:"year"`

	// Source names the venue or provider the record came from
	// (e.g. "OpenAlex", "arXiv", or a journal name).
	Source string `json:"source,omitempty" yaml:"source,omitempty"`

	// CitedByCount is the citation count when any provider reported one.
	// Nil means no count was available; a present value is never negative.
	CitedByCount *int `json:"cited_by_count,omitempty" yaml:"cited_by_count,omitempty"`
}

// Citations returns the citation count, or zero when none was reported.
func (p Paper) Citations() int {
	if p.CitedByCount == nil {
		return 0
	}
	return *p.CitedByCount
}
