package reporting

import (
	"strconv"
	"strings"

	"buynow-compare/internal/domain"
)

// RenderCSV renders one row per group plus a delta row.
// Undefined values are written as NaN, +Inf or -Inf; the delta row leaves
// the count columns empty.
func RenderCSV(r *Report, precision int) string {
	var sb strings.Builder

	// Header
	sb.WriteString("group,n,wins,losses,")
	sb.WriteString(strings.Join(domain.MetricKeys, ","))
	sb.WriteString("\n")

	// Rows
	for _, g := range r.Groups {
		s := g.Summary
		fields := []string{g.ID, formatInt(s.N), formatInt(s.Wins), formatInt(s.Losses)}
		for _, key := range domain.MetricKeys {
			v, _ := s.Metric(key)
			fields = append(fields, formatCSVFloat(v, precision))
		}
		sb.WriteString(strings.Join(fields, ","))
		sb.WriteString("\n")
	}

	fields := []string{"delta", "", "", ""}
	for _, d := range r.Delta {
		fields = append(fields, formatCSVFloat(d.Value, precision))
	}
	sb.WriteString(strings.Join(fields, ","))
	sb.WriteString("\n")

	return sb.String()
}

func formatCSVFloat(v float64, precision int) string {
	return strconv.FormatFloat(v, 'f', precision, 64)
}
