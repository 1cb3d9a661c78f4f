package llm

import (
	"context"
	"fmt"
	"strings"

	"contentgate/internal/asset"
)

// Generator regenerates one content asset following improvement directives.
// Implementations wrap an external model API; calls must honor ctx deadlines.
// A failed call is the caller's problem to budget, not the generator's; no
// implementation retries internally.
type Generator interface {
	Regenerate(ctx context.Context, a asset.Asset, directives []string) (asset.Asset, error)
}

// PromptBuilder assembles the regeneration prompt shared by all providers.
type PromptBuilder struct{}

func (PromptBuilder) BuildRegeneratePrompt(a asset.Asset, directives []string) string {
	var sb strings.Builder
	sb.WriteString("You are a marketing copywriter for SEBI-registered financial advisors in India.\n")
	sb.WriteString("Rewrite the content below for the same advisor, channel and theme, fixing the listed weaknesses.\n\n")
	fmt.Fprintf(&sb, "Channel: %s\nSegment: %s\n\n", a.Type, a.Segment)
	sb.WriteString("### CURRENT CONTENT ###\n")
	sb.WriteString(a.Text)
	sb.WriteString("\n\n### REQUIRED IMPROVEMENTS ###\n")
	for _, d := range directives {
		sb.WriteString("- " + d + "\n")
	}
	sb.WriteString("\n### RULES ###\n")
	sb.WriteString("1. Keep all factual claims verifiable; never promise guaranteed or risk-free returns.\n")
	sb.WriteString("2. Keep the advisor's ARN disclosure if present.\n")
	sb.WriteString("3. Return only the rewritten content, no commentary.\n")
	return sb.String()
}

// replaceText produces the regenerated asset: new text, same identity.
func replaceText(a asset.Asset, text string) asset.Asset {
	out := a
	out.Text = strings.TrimSpace(text)
	out.Hook = firstLine(out.Text)
	return out
}

func firstLine(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			return line
		}
	}
	return ""
}

// MockGenerator returns canned rewrites, for tests and the mock provider.
// Rewrite is called once per regeneration; when nil the asset comes back
// unchanged.
type MockGenerator struct {
	Rewrite func(a asset.Asset, directives []string) (string, error)
	Calls   int
}

func (m *MockGenerator) Regenerate(ctx context.Context, a asset.Asset, directives []string) (asset.Asset, error) {
	if err := ctx.Err(); err != nil {
		return asset.Asset{}, err
	}
	m.Calls++
	if m.Rewrite == nil {
		return a, nil
	}
	text, err := m.Rewrite(a, directives)
	if err != nil {
		return asset.Asset{}, err
	}
	return replaceText(a, text), nil
}
