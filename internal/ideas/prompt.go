// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package ideas

import (
	"strconv"
	"strings"
	"text/template"

	"github.com/pdiddy/literature-surveyor/internal/literature"
	"github.com/pdiddy/literature-surveyor/pkg/types"
)

// promptTemplate embeds the domain, discovered venues, and example papers
// into one instruction. The model is asked for a numbered list so the
// parser has a stable shape to scan for.
var promptTemplate = template.Must(template.New("ideas").Parse(`You are an expert researcher in {{.Domain}}.

Target venues:
{{.Venues}}

Example papers:
{{.Papers}}

Generate 3-5 novel research topics inspired by the above papers.
Return only a numbered list.
`))

type promptData struct {
	Domain string
	Venues string
	Papers string
}

// BuildPrompt renders the idea-generation prompt. Venues are joined with
// commas; each paper becomes one bullet with its summary truncated for
// prompt budget.
func BuildPrompt(domain string, venues []string, papers []types.Paper) string {
	bullets := make([]string, 0, len(papers))
	for _, p := range papers {
		var b strings.Builder
		b.WriteString("- ")
		b.WriteString(p.Title)
		b.WriteString(" (")
		if p.Year > 0 {
			b.WriteString(strconv.Itoa(p.Year))
		} else {
			b.WriteString("N/A")
		}
		b.WriteString("): ")
		b.WriteString(literature.TruncateSummary(p.Summary, 0))
		bullets = append(bullets, b.String())
	}

	var out strings.Builder
	err := promptTemplate.Execute(&out, promptData{
		Domain: domain,
		Venues: strings.Join(venues, ", "),
		Papers: strings.Join(bullets, "\n"),
	})
	if err != nil {
		// The template is static and the data is plain strings; execution
		// cannot fail at runtime.
		panic(err)
	}
	return out.String()
}
