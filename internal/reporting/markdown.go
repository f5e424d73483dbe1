package reporting

import (
	"fmt"
	"strings"
)

// RenderMarkdown renders report as Markdown string.
func RenderMarkdown(r *Report, precision int) string {
	var sb strings.Builder

	// Header
	sb.WriteString("# Buy Now Comparison Report\n\n")
	sb.WriteString("| Field | Value |\n")
	sb.WriteString("|-------|-------|\n")
	if r.Version.Present() && !r.Version.IsNull() {
		sb.WriteString(fmt.Sprintf("| Version | %s |\n", escapeCell(displayValue(r.Version))))
	}
	if rng, ok := rangeText(r.From, r.To); ok {
		sb.WriteString(fmt.Sprintf("| Range | %s |\n", escapeCell(rng)))
	}
	sb.WriteString(fmt.Sprintf("| Total Events | %d |\n", r.TotalEvents))
	sb.WriteString("\n")

	// Groups
	for _, g := range r.Groups {
		sb.WriteString(fmt.Sprintf("## %s\n\n", g.Title))
		writeMarkdownTable(&sb, "Value", summaryRows(g.Summary, precision))
	}

	// Delta
	sb.WriteString(fmt.Sprintf("## %s\n\n", r.DeltaTitle))
	writeMarkdownTable(&sb, "Delta", deltaRows(r.Delta, precision))

	// Data Quality
	sb.WriteString("## Data Quality\n\n")
	if len(r.DataQuality) > 0 {
		for _, msg := range r.DataQuality {
			sb.WriteString(fmt.Sprintf("- %s\n", msg))
		}
	} else {
		sb.WriteString("No values ignored.\n")
	}
	sb.WriteString("\n")

	return sb.String()
}

func writeMarkdownTable(sb *strings.Builder, valueHeader string, rows []row) {
	sb.WriteString(fmt.Sprintf("| Metric | %s |\n", valueHeader))
	sb.WriteString("|--------|" + strings.Repeat("-", len(valueHeader)+2) + "|\n")
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("| %s | %s |\n", escapeCell(r.Label), r.Value))
	}
	sb.WriteString("\n")
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
