// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package venues

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

//go:embed mock_venues.yaml
var mockVenuesYAML []byte

// mockVenues maps a coarse domain category to its static venue table.
var mockVenues = loadMockVenues()

func loadMockVenues() map[string]types.VenueSet {
	tables := make(map[string]types.VenueSet)
	if err := yaml.Unmarshal(mockVenuesYAML, &tables); err != nil {
		panic(fmt.Sprintf("venues: embedded mock table is invalid: %v", err))
	}
	return tables
}

// MockVenues returns the static venue table for a domain, chosen by simple
// keyword matching. Unrecognized domains get the general machine learning
// table.
func MockVenues(domain string) types.VenueSet {
	d := strings.ToLower(domain)

	switch {
	case strings.Contains(d, "health"), strings.Contains(d, "medic"), strings.Contains(d, "clinic"):
		return mockVenues["healthcare"]
	case strings.Contains(d, "financ"), strings.Contains(d, "econ"):
		return mockVenues["finance"]
	case strings.Contains(d, "educa"),
		strings.Contains(d, "learn") && !strings.Contains(d, "machine"):
		return mockVenues["education"]
	}
	return mockVenues["default"]
}
