// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package literature

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// --- mocks ---

type mockLitProvider struct {
	name   string
	papers []types.Paper
	err    error
	calls  int
}

func (m *mockLitProvider) Name() string { return m.name }

func (m *mockLitProvider) Search(_ context.Context, _ string, _ int) ([]types.Paper, error) {
	m.calls++
	return m.papers, m.err
}

type mockEnricher struct {
	counts map[string]int
	err    error
}

func (m *mockEnricher) CitationCount(_ context.Context, title string) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	count, ok := m.counts[title]
	if !ok {
		return 0, errors.New("no match")
	}
	return count, nil
}

func intp(n int) *int { return &n }

func paperFixtures(n int) []types.Paper {
	titles := []string{"Alpha", "Beta", "Gamma", "Delta", "Epsilon"}
	var out []types.Paper
	for i := 0; i < n; i++ {
		out = append(out, types.Paper{
			Title:   titles[i%len(titles)],
			Summary: "An abstract about " + titles[i%len(titles)] + ".",
			Year:    2020 + i,
		})
	}
	return out
}

// --- Fetch ---

func TestFetchEmptyQueryReturnsMocks(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", papers: paperFixtures(5)}
	svc := NewService([]Provider{primary}, nil, zap.NewNop())

	for _, query := range []string{"", "   ", "\t\n"} {
		got := svc.Fetch(context.Background(), query, 5)
		if len(got) != 5 {
			t.Fatalf("len = %d, want 5", len(got))
		}
		for _, p := range got {
			if p.Title == "" || p.Summary == "" || p.Year == 0 {
				t.Errorf("mock paper incomplete: %+v", p)
			}
		}
	}
	if primary.calls != 0 {
		t.Errorf("provider called %d times for empty query, want 0", primary.calls)
	}
}

func TestFetchPrimaryWins(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", papers: paperFixtures(4)}
	secondary := &mockLitProvider{name: "semantic_scholar", papers: paperFixtures(3)}
	svc := NewService([]Provider{primary, secondary}, nil, zap.NewNop())

	got := svc.Fetch(context.Background(), "deep learning", 4)
	if len(got) != 4 {
		t.Fatalf("len = %d, want 4", len(got))
	}
	if secondary.calls != 0 {
		t.Errorf("secondary called %d times, want 0", secondary.calls)
	}
}

func TestFetchFallsThroughPriorityOrder(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", err: errors.New("down")}
	secondary := &mockLitProvider{name: "semantic_scholar"}
	tertiary := &mockLitProvider{name: "arxiv", papers: paperFixtures(3)}
	svc := NewService([]Provider{primary, secondary, tertiary}, nil, zap.NewNop())

	got := svc.Fetch(context.Background(), "graph neural networks", 5)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 from tertiary", len(got))
	}
	if primary.calls != 1 || secondary.calls != 1 || tertiary.calls != 1 {
		t.Errorf("calls = %d/%d/%d, want 1/1/1", primary.calls, secondary.calls, tertiary.calls)
	}
}

func TestFetchAllProvidersFailReturnsMocks(t *testing.T) {
	svc := NewService([]Provider{
		&mockLitProvider{name: "openalex", err: errors.New("timeout")},
		&mockLitProvider{name: "semantic_scholar", err: errors.New("HTTP 429")},
		&mockLitProvider{name: "arxiv", err: errors.New("HTTP 503")},
	}, nil, zap.NewNop())

	got := svc.Fetch(context.Background(), "anything", 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3 mocks", len(got))
	}
	for _, p := range got {
		if p.Title == "" {
			t.Error("mock paper with empty title")
		}
	}
}

func TestFetchLengthAlwaysInRange(t *testing.T) {
	tests := []struct {
		name     string
		papers   []types.Paper
		limit    int
		wantLen  int
	}{
		{"limit clamped down", paperFixtures(5), 99, 5},
		{"limit clamped up", paperFixtures(5), 0, 3},
		{"two results padded to three", paperFixtures(2), 5, 3},
		{"one result padded to three", paperFixtures(1), 4, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewService([]Provider{
				&mockLitProvider{name: "openalex", papers: tt.papers},
			}, nil, zap.NewNop())
			got := svc.Fetch(context.Background(), "q", tt.limit)
			if len(got) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(got), tt.wantLen)
			}
			for _, p := range got {
				if p.Title == "" {
					t.Error("paper with empty title in output")
				}
			}
		})
	}
}

// --- enrichment ---

func TestFetchEnrichmentTakesMax(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", papers: []types.Paper{
		{Title: "Alpha", Summary: "a", Year: 2022, CitedByCount: intp(10)},
		{Title: "Beta", Summary: "b", Year: 2023, CitedByCount: intp(50)},
		{Title: "Gamma", Summary: "c", Year: 2024},
	}}
	enricher := &mockEnricher{counts: map[string]int{
		"Alpha": 40, // secondary higher
		"Beta":  5,  // primary higher
		"Gamma": 7,  // primary missing
	}}
	svc := NewService([]Provider{primary}, enricher, zap.NewNop())

	got := svc.Fetch(context.Background(), "q", 3)
	if got[0].Citations() != 40 {
		t.Errorf("Alpha citations = %d, want 40", got[0].Citations())
	}
	if got[1].Citations() != 50 {
		t.Errorf("Beta citations = %d, want 50", got[1].Citations())
	}
	if got[2].Citations() != 7 {
		t.Errorf("Gamma citations = %d, want 7", got[2].Citations())
	}
}

func TestFetchEnrichmentFailureKeepsOriginal(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", papers: []types.Paper{
		{Title: "Alpha", Summary: "a", Year: 2022, CitedByCount: intp(10)},
		{Title: "Beta", Summary: "b", Year: 2023, CitedByCount: intp(2)},
		{Title: "Gamma", Summary: "c", Year: 2021, CitedByCount: intp(4)},
	}}
	svc := NewService([]Provider{primary}, &mockEnricher{err: errors.New("rate limited")}, zap.NewNop())

	got := svc.Fetch(context.Background(), "q", 3)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Citations() != 10 {
		t.Errorf("citations = %d, want original 10", got[0].Citations())
	}
}

func TestFetchSecondaryResultsNotEnriched(t *testing.T) {
	primary := &mockLitProvider{name: "openalex", err: errors.New("down")}
	secondary := &mockLitProvider{name: "semantic_scholar", papers: []types.Paper{
		{Title: "Alpha", Summary: "a", Year: 2022, CitedByCount: intp(3)},
		{Title: "Beta", Summary: "b", Year: 2023, CitedByCount: intp(4)},
		{Title: "Gamma", Summary: "c", Year: 2024, CitedByCount: intp(5)},
	}}
	enricher := &mockEnricher{counts: map[string]int{"Alpha": 999}}
	svc := NewService([]Provider{primary, secondary}, enricher, zap.NewNop())

	got := svc.Fetch(context.Background(), "q", 3)
	if got[0].Citations() != 3 {
		t.Errorf("citations = %d, enrichment should only apply to primary results", got[0].Citations())
	}
}

// --- normalize ---

func TestNormalizeDropsEmptyTitles(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	got := svc.normalize([]types.Paper{
		{Title: "", Summary: "orphan"},
		{Title: "   ", Summary: "whitespace"},
		{Title: "Kept", Summary: "s", Year: 2020},
		{Title: "Also Kept", Summary: "s", Year: 2021},
		{Title: "Third", Summary: "s", Year: 2022},
	}, 5)
	if len(got) != 3 {
		t.Fatalf("len = %d, want 3", len(got))
	}
	if got[0].Title != "Kept" {
		t.Errorf("first title = %q", got[0].Title)
	}
}

func TestNormalizeSynthesizesSummary(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	got := svc.normalize([]types.Paper{
		{Title: "Sparse Transformers"},
		{Title: "B", Summary: "has one"},
		{Title: "C", Summary: "has one too"},
	}, 5)

	want := "This work appears to focus on: Sparse Transformers. (Abstract unavailable; summary generated from title only.)"
	if got[0].Summary != want {
		t.Errorf("Summary = %q, want %q", got[0].Summary, want)
	}
	if got[1].Summary != "has one" {
		t.Errorf("existing summary replaced: %q", got[1].Summary)
	}
}

func TestNormalizeDefaultsYear(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	got := svc.normalize([]types.Paper{
		{Title: "A"},
		{Title: "B", Year: -3},
		{Title: "C", Year: 2019},
	}, 5)
	if got[0].Year != defaultYear || got[1].Year != defaultYear {
		t.Errorf("years = %d/%d, want default %d", got[0].Year, got[1].Year, defaultYear)
	}
	if got[2].Year != 2019 {
		t.Errorf("year = %d, want 2019 preserved", got[2].Year)
	}
}

func TestNormalizeZeroesNegativeCitations(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	got := svc.normalize([]types.Paper{
		{Title: "A", CitedByCount: intp(-7)},
		{Title: "B"},
		{Title: "C"},
	}, 5)
	if got[0].Citations() != 0 {
		t.Errorf("citations = %d, want 0", got[0].Citations())
	}
	if got[1].CitedByCount != nil {
		t.Error("absent citation count should stay absent")
	}
}

func TestNormalizeEmptyInputStaysEmpty(t *testing.T) {
	svc := NewService(nil, nil, zap.NewNop())
	if got := svc.normalize(nil, 5); len(got) != 0 {
		t.Errorf("len = %d, want 0 (padding only applies to partial results)", len(got))
	}
}

// --- TruncateSummary ---

func TestTruncateSummary(t *testing.T) {
	short := "A short abstract."
	if got := TruncateSummary(short, 400); got != short {
		t.Errorf("short summary changed: %q", got)
	}

	long := strings.Repeat("word ", 120) // 600 chars
	got := TruncateSummary(long, 400)
	if len(got) > 400+3 {
		t.Errorf("len = %d, want <= 403", len(got))
	}
	if !strings.HasSuffix(got, "...") {
		t.Errorf("truncated summary should end with ellipsis: %q", got)
	}
	if strings.HasSuffix(strings.TrimSuffix(got, "..."), " ") {
		t.Errorf("should cut at a word boundary without trailing space: %q", got)
	}
}

// --- MockPapers ---

func TestMockPapersCount(t *testing.T) {
	for _, n := range []int{0, 1, 3, 5, 7} {
		got := MockPapers(n)
		if len(got) != n && n > 0 {
			t.Errorf("MockPapers(%d) len = %d", n, len(got))
		}
		if n <= 0 && got != nil {
			t.Errorf("MockPapers(%d) = %v, want nil", n, got)
		}
		for _, p := range got {
			if p.Title == "" || p.Summary == "" || p.Year == 0 {
				t.Errorf("incomplete mock paper: %+v", p)
			}
		}
	}
}
