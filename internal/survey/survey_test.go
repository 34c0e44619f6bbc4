// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package survey

import (
	"context"
	"errors"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/pdiddy/literature-surveyor/internal/llm"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// --- stage stubs ---

type stubVenues struct {
	gotDomain string
	set       types.VenueSet
}

func (s *stubVenues) Discover(_ context.Context, domain string) types.VenueSet {
	s.gotDomain = domain
	return s.set
}

type stubPapers struct {
	gotQuery string
	gotLimit int
	papers   []types.Paper
}

func (s *stubPapers) Fetch(_ context.Context, query string, limit int) []types.Paper {
	s.gotQuery = query
	s.gotLimit = limit
	return s.papers
}

type stubTopics struct {
	gotDomain string
	gotVenues []string
	topics    []string
}

func (s *stubTopics) Generate(_ context.Context, domain string, venues []string, _ []types.Paper) []string {
	s.gotDomain = domain
	s.gotVenues = venues
	return s.topics
}

type stubBackend struct {
	name  string
	reply string
	err   error
}

func (s *stubBackend) Name() string { return s.name }

func (s *stubBackend) Complete(_ context.Context, _ string) (string, error) {
	return s.reply, s.err
}

func testService(venues *stubVenues, papers *stubPapers, topics *stubTopics, remote, local llm.Backend) *Service {
	return NewService(venues, papers, topics, llm.Router{Remote: remote, Local: local}, zap.NewNop())
}

func fixedStages() (*stubVenues, *stubPapers, *stubTopics) {
	venues := &stubVenues{set: types.VenueSet{
		Conferences: []string{"ICML", "NeurIPS"},
		Journals:    []string{"JMLR"},
	}}
	papers := &stubPapers{papers: []types.Paper{
		{Title: "Machine Learning at Scale", Summary: "s", Year: 2023},
		{Title: "Another Machine Learning Study", Summary: "s", Year: 2024},
		{Title: "A Third Machine Learning Paper", Summary: "s", Year: 2022},
	}}
	topics := &stubTopics{topics: []string{"T1", "T2", "T3", "T4", "T5"}}
	return venues, papers, topics
}

// --- Run ---

func TestRunNormalizesQuestion(t *testing.T) {
	venues, papers, topics := fixedStages()
	svc := testService(venues, papers, topics, &stubBackend{name: "claude", reply: "An overview."}, nil)

	resp, err := svc.Run(context.Background(), Request{Question: "  Machine Learning  "})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if resp.Intent.Domain != "machine learning" {
		t.Errorf("domain = %q, want trimmed lowercase", resp.Intent.Domain)
	}
	if venues.gotDomain != "machine learning" {
		t.Errorf("venue stage got %q", venues.gotDomain)
	}
	if papers.gotQuery != "machine learning" {
		t.Errorf("literature stage got %q", papers.gotQuery)
	}
	if topics.gotDomain != "machine learning" {
		t.Errorf("idea stage got %q", topics.gotDomain)
	}
	if resp.OriginalQuestion != "  Machine Learning  " {
		t.Errorf("original question = %q, want verbatim echo", resp.OriginalQuestion)
	}
}

func TestRunScopeHeuristic(t *testing.T) {
	tests := []struct {
		question string
		want     string
	}{
		{"machine learning", "broad"},
		{"robotics", "broad"},
		{"machine learning for cancer detection", "narrow"},
		{"graph neural network pretraining", "narrow"},
	}
	for _, tt := range tests {
		venues, papers, topics := fixedStages()
		svc := testService(venues, papers, topics, &stubBackend{name: "claude", reply: "o"}, nil)
		resp, err := svc.Run(context.Background(), Request{Question: tt.question})
		if err != nil {
			t.Fatalf("Run(%q): %v", tt.question, err)
		}
		if resp.Intent.Scope != tt.want {
			t.Errorf("scope(%q) = %q, want %q", tt.question, resp.Intent.Scope, tt.want)
		}
	}
}

func TestRunEmptyQuestion(t *testing.T) {
	venues, papers, topics := fixedStages()
	svc := testService(venues, papers, topics, &stubBackend{name: "claude"}, nil)
	if _, err := svc.Run(context.Background(), Request{Question: "   "}); err == nil {
		t.Error("expected error for empty question")
	}
}

func TestRunProviderUsed(t *testing.T) {
	tests := []struct {
		name string
		req  Request
		want string
	}{
		{"local flag wins", Request{Question: "q", LocalLLM: true, Provider: "anthropic"}, "local"},
		{"named provider", Request{Question: "q", Provider: "anthropic"}, "anthropic"},
		{"backend name fallback", Request{Question: "q"}, "claude"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			venues, papers, topics := fixedStages()
			svc := testService(venues, papers, topics,
				&stubBackend{name: "claude", reply: "o"},
				&stubBackend{name: "ollama", reply: "o"})
			resp, err := svc.Run(context.Background(), tt.req)
			if err != nil {
				t.Fatalf("Run: %v", err)
			}
			if resp.ProviderUsed != tt.want {
				t.Errorf("ProviderUsed = %q, want %q", resp.ProviderUsed, tt.want)
			}
			if resp.UsedLocalLLM != tt.req.LocalLLM {
				t.Errorf("UsedLocalLLM = %v", resp.UsedLocalLLM)
			}
		})
	}
}

func TestRunOverviewFailureDegrades(t *testing.T) {
	venues, papers, topics := fixedStages()
	svc := testService(venues, papers, topics, &stubBackend{name: "claude", err: errors.New("down")}, nil)

	resp, err := svc.Run(context.Background(), Request{Question: "machine learning"})
	if err != nil {
		t.Fatalf("overview failure must not fail the request: %v", err)
	}
	if resp.Overview != "" {
		t.Errorf("Overview = %q, want empty on failure", resp.Overview)
	}
	if resp.Answer == "" {
		t.Error("answer should still assemble without an overview")
	}
}

func TestRunOverviewExtractsJSONAnswer(t *testing.T) {
	venues, papers, topics := fixedStages()
	svc := testService(venues, papers, topics,
		&stubBackend{name: "claude", reply: `{"answer": "A compact overview."}`}, nil)

	resp, err := svc.Run(context.Background(), Request{Question: "machine learning"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if resp.Overview != "A compact overview." {
		t.Errorf("Overview = %q", resp.Overview)
	}
}

func TestRunAnswerContainsAllSections(t *testing.T) {
	venues, papers, topics := fixedStages()
	svc := testService(venues, papers, topics, &stubBackend{name: "claude", reply: "The field is active."}, nil)

	resp, err := svc.Run(context.Background(), Request{Question: "machine learning"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	for _, want := range []string{
		"The field is active.",
		"ICML",
		"JMLR",
		"Machine Learning at Scale (2023)",
		"1. T1",
		"5. T5",
	} {
		if !strings.Contains(resp.Answer, want) {
			t.Errorf("answer missing %q:\n%s", want, resp.Answer)
		}
	}
}

// --- filter ---

func TestFilterPapersKeepsOverlap(t *testing.T) {
	papers := []types.Paper{
		{Title: "Deep Learning for Radiology", Summary: ""},
		{Title: "Crop Yield Prediction", Summary: "agronomy methods"},
		{Title: "Irrelevant", Summary: "but mentions radiology in passing"},
	}
	got := FilterPapers("radiology imaging", papers)
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if got[0].Title != "Deep Learning for Radiology" || got[1].Title != "Irrelevant" {
		t.Errorf("kept = %v", got)
	}
}

func TestFilterPapersNeverEmpties(t *testing.T) {
	papers := []types.Paper{
		{Title: "Alpha", Summary: "a"},
		{Title: "Beta", Summary: "b"},
	}
	got := FilterPapers("quantum chromodynamics", papers)
	if len(got) != 2 {
		t.Errorf("len = %d, want original list back", len(got))
	}
}

func TestFilterPapersShortDomainTokensIgnored(t *testing.T) {
	// Every token under four characters is dropped, leaving no tokens, so
	// the filter is a no-op.
	papers := []types.Paper{{Title: "Anything", Summary: ""}}
	got := FilterPapers("ai ml", papers)
	if len(got) != 1 {
		t.Errorf("len = %d, want 1", len(got))
	}
}

func TestFilterVenuesKeepsOriginalWhenNoOverlap(t *testing.T) {
	set := types.VenueSet{
		Conferences: []string{"ICML", "NeurIPS"},
		Journals:    []string{"JMLR", "Machine Learning Journal"},
	}
	got := FilterVenues("machine learning", set)
	if len(got.Conferences) != 2 {
		t.Errorf("conferences = %v, want original acronyms kept", got.Conferences)
	}
	if len(got.Journals) != 1 || got.Journals[0] != "Machine Learning Journal" {
		t.Errorf("journals = %v, want the overlapping name only", got.Journals)
	}
}
