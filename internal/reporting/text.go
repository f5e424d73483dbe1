package reporting

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const headerRule = "=========================="

// RenderText renders report as fixed-width text tables.
func RenderText(r *Report, precision int) string {
	var sb strings.Builder

	// Header
	sb.WriteString("BUY NOW COMPARISON REPORT\n")
	sb.WriteString(headerRule + "\n")
	if r.Version.Present() && !r.Version.IsNull() {
		sb.WriteString(fmt.Sprintf("Version : %s\n", displayValue(r.Version)))
	}
	if rng, ok := rangeText(r.From, r.To); ok {
		sb.WriteString(fmt.Sprintf("Range   : %s\n", rng))
	}
	sb.WriteString(fmt.Sprintf("Total events: %d\n", r.TotalEvents))
	sb.WriteString(headerRule + "\n")

	// Groups
	for _, g := range r.Groups {
		writeTextTable(&sb, g.Title, summaryRows(g.Summary, precision))
	}

	// Delta
	writeTextTable(&sb, r.DeltaTitle, deltaRows(r.Delta, precision))

	return sb.String()
}

// writeTextTable writes a titled key/value table. Keys are left-aligned and
// values right-aligned to the widest entry; widths count runes.
func writeTextTable(sb *strings.Builder, title string, rows []row) {
	widthK, widthV := 0, 0
	for _, r := range rows {
		if n := utf8.RuneCountInString(r.Label); n > widthK {
			widthK = n
		}
		if n := utf8.RuneCountInString(r.Value); n > widthV {
			widthV = n
		}
	}
	bar := strings.Repeat("-", widthK+widthV+5)

	sb.WriteString(fmt.Sprintf("\n%s\n%s\n", title, bar))
	for _, r := range rows {
		sb.WriteString(fmt.Sprintf("%-*s : %*s\n", widthK, r.Label, widthV, r.Value))
	}
	sb.WriteString(bar + "\n")
}
