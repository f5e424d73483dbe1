package reporting

import "buynow-compare/internal/domain"

// Report represents the buyNow comparison report structure.
type Report struct {
	// Metadata copied from the backtest file
	Version     domain.Value
	From        domain.Value
	To          domain.Value
	TotalEvents int

	// Groups in display order: buyNow first, then the rest
	Groups []GroupSection

	// Delta (buyNow minus other)
	DeltaTitle string
	Delta      domain.Delta

	// DataQuality lists values that were ignored during aggregation
	DataQuality []string
}

// GroupSection is one summarized group.
type GroupSection struct {
	ID      string // domain.GroupBuyNow | domain.GroupOther
	Title   string
	Summary domain.Summary
}

// row is one label/value pair of a rendered table.
type row struct {
	Label string
	Value string
}

// Display labels for summary metrics
var metricLabels = map[string]string{
	domain.KeyN:            "Trades",
	domain.KeyWins:         "Wins",
	domain.KeyLosses:       "Losses",
	domain.KeyWinRatePct:   "Win rate %",
	domain.KeyAvgR:         "Avg R",
	domain.KeyMedR:         "Med R",
	domain.KeyExpR:         "Expectancy R",
	domain.KeyProfitFactor: "Profit factor",
	domain.KeyAvgReturnPct: "Avg return %",
	domain.KeyAvgHoldDays:  "Avg hold (days)",
	domain.KeyTargetHitPct: "Target hit %",
	domain.KeyStopHitPct:   "Stop hit %",
	domain.KeyTimeExitPct:  "Time exit %",
	domain.KeyAvgRRAtEntry: "Avg RR at entry",
	domain.KeyAvgMAEPct:    "Avg MAE %",
	domain.KeyAvgMFEPct:    "Avg MFE %",
}

// summaryRows returns the group table: trade and win counts, then every float metric.
func summaryRows(s domain.Summary, precision int) []row {
	rows := make([]row, 0, len(domain.MetricKeys)+2)
	rows = append(rows,
		row{metricLabels[domain.KeyN], formatInt(s.N)},
		row{metricLabels[domain.KeyWins], formatInt(s.Wins)},
	)
	for _, key := range domain.MetricKeys {
		v, _ := s.Metric(key)
		rows = append(rows, row{metricLabels[key], FormatFloat(v, precision)})
	}
	return rows
}

// deltaRows returns the delta table keyed by raw metric keys.
func deltaRows(d domain.Delta, precision int) []row {
	rows := make([]row, len(d))
	for i, r := range d {
		rows[i] = row{r.Key, FormatFloat(r.Value, precision)}
	}
	return rows
}
