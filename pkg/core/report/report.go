// Package report assembles the 3-year model summary as Markdown and renders
// it to HTML for the dashboard's report view.
package report

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"

	"loopbox_model/pkg/core/calc"
	"loopbox_model/pkg/core/export"
	"loopbox_model/pkg/core/validate"
)

// Summary bundles everything the report needs for one model state.
type Summary struct {
	YearLabels [3]string
	Statements [3]calc.IncomeStatement
	Units      [3]calc.UnitEconomics
	BreakEven  calc.BreakEvenResult
	Flags      validate.Report
}

// BuildMarkdown renders the full summary as Markdown.
func BuildMarkdown(s Summary) string {
	var b strings.Builder

	b.WriteString("# Loop Box Financial Model\n\n")

	b.WriteString("## Key Metrics\n\n")
	for i, label := range s.YearLabels {
		stmt := s.Statements[i]
		fmt.Fprintf(&b, "- **%s** — Revenue %s, EBITDA %s, Net Margin %s\n",
			label,
			export.FormatINRCrores(stmt.Revenue.Total),
			export.FormatINRLakhs(stmt.EBITDA),
			export.FormatPercent(stmt.NetMarginPct))
	}
	b.WriteString("\n")

	writeTable(&b, "Income Statement", export.IncomeStatementTable(s.Statements, s.YearLabels))
	writeTable(&b, "Unit Economics", export.UnitEconomicsTable(s.Units, s.YearLabels))
	writeTable(&b, "Break-Even", export.BreakEvenTable(s.BreakEven))

	b.WriteString("## Validation Flags\n\n")
	if len(s.Flags.Flags) == 0 {
		b.WriteString("No flags triggered.\n")
	}
	for _, f := range s.Flags.Flags {
		fmt.Fprintf(&b, "- %s **%s** — %s\n", severityIcon(f.Severity), f.Rule, f.Message)
	}

	return b.String()
}

func severityIcon(sev validate.Severity) string {
	switch sev {
	case validate.Red:
		return "🔴"
	case validate.Yellow:
		return "🟡"
	default:
		return "🟢"
	}
}

func writeTable(b *strings.Builder, heading string, t export.Table) {
	fmt.Fprintf(b, "## %s\n\n", heading)
	b.WriteString("| " + strings.Join(t.Headers, " | ") + " |\n")
	b.WriteString("|" + strings.Repeat(" --- |", len(t.Headers)) + "\n")
	for _, row := range t.Rows {
		b.WriteString("| " + strings.Join(row, " | ") + " |\n")
	}
	b.WriteString("\n")
}

var md = goldmark.New(goldmark.WithExtensions(extension.Table))

// RenderHTML converts the Markdown summary to HTML.
func RenderHTML(markdown string) (string, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to render report: %w", err)
	}
	return buf.String(), nil
}

// ValidateMarkdown checks that the string parses as Markdown. Goldmark is
// very permissive, so this is a basic structural check.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	doc := parser.Parse(text.NewReader([]byte(input)))
	return doc != nil
}
