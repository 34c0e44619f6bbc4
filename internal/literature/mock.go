// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	_ "embed"
	"fmt"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

//go:embed mock_papers.yaml
var mockPapersYAML []byte

// mockPapers is the static fallback paper table.
var mockPapers = loadMockPapers()

func loadMockPapers() []types.Paper {
	var papers []types.Paper
	if err := yaml.Unmarshal(mockPapersYAML, &papers); err != nil {
		panic(fmt.Sprintf("literature: embedded mock table is invalid: %v", err))
	}
	return papers
}

// MockPapers returns exactly n papers from the static table, cycling when
// n exceeds the table size. Callers never ask for more than five.
func MockPapers(n int) []types.Paper {
	if n <= 0 {
		return nil
	}
	out := make([]types.Paper, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, mockPapers[i%len(mockPapers)])
	}
	return out
}
