package reporting

import (
	"fmt"
	"io"

	"buynow-compare/internal/config"
	"buynow-compare/internal/domain"
)

// Titles holds the section headings of a report.
type Titles struct {
	BuyNow string
	Other  string
	Delta  string
}

// TitlesFromConfig returns the configured section headings.
func TitlesFromConfig(c config.Config) Titles {
	return Titles{
		BuyNow: c.Groups.BuyNowTitle,
		Other:  c.Groups.OtherTitle,
		Delta:  c.Groups.DeltaTitle,
	}
}

// Generator assembles reports from computed summaries.
type Generator struct {
	titles Titles
}

// NewGenerator creates a new report generator.
func NewGenerator(titles Titles) *Generator {
	return &Generator{titles: titles}
}

// Generate builds the report for one backtest file.
func (g *Generator) Generate(file *domain.BacktestFile, buyNow, other domain.Summary, delta domain.Delta, dataQuality []string) *Report {
	r := &Report{
		Groups: []GroupSection{
			{ID: domain.GroupBuyNow, Title: g.titles.BuyNow, Summary: buyNow},
			{ID: domain.GroupOther, Title: g.titles.Other, Summary: other},
		},
		DeltaTitle:  g.titles.Delta,
		Delta:       delta,
		DataQuality: dataQuality,
	}
	if file != nil {
		r.Version = file.Version
		r.From = file.From
		r.To = file.To
		r.TotalEvents = len(file.Events)
	}
	return r
}

// Render writes r to w in the given format (config.FormatText, FormatMarkdown or FormatCSV).
func Render(w io.Writer, r *Report, format string, precision int) error {
	var out string
	switch format {
	case config.FormatText, "":
		out = RenderText(r, precision)
	case config.FormatMarkdown:
		out = RenderMarkdown(r, precision)
	case config.FormatCSV:
		out = RenderCSV(r, precision)
	default:
		return fmt.Errorf("unknown report format %q", format)
	}
	if _, err := io.WriteString(w, out); err != nil {
		return fmt.Errorf("write report: %w", err)
	}
	return nil
}
