package metrics

import (
	"fmt"
	"sort"

	"buynow-compare/internal/domain"
)

// Aggregator computes summaries from trade events.
type Aggregator struct {
	// Rejections tracks values that were present but unusable as finite numbers.
	// Key: field path (e.g. "simulation.R"), Value: count of events.
	Rejections map[string]int
}

// NewAggregator creates a new metrics aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{
		Rejections: make(map[string]int),
	}
}

// Summarize computes the summary for events and records rejected values.
// It never fails: malformed fields only drop out of the affected averages.
func (a *Aggregator) Summarize(events []*domain.TradeEvent) domain.Summary {
	return computeFromEvents(events, a.reject)
}

func (a *Aggregator) reject(field domain.FieldPath) {
	a.Rejections[field.String()]++
}

// TotalRejections returns the number of rejected values across all fields.
func (a *Aggregator) TotalRejections() int {
	total := 0
	for _, count := range a.Rejections {
		total += count
	}
	return total
}

// RejectionErrors returns data quality messages for rejected values,
// sorted by field path for deterministic output.
func (a *Aggregator) RejectionErrors() []string {
	if len(a.Rejections) == 0 {
		return nil
	}

	keys := make([]string, 0, len(a.Rejections))
	for k := range a.Rejections {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	errors := make([]string, len(keys))
	for i, field := range keys {
		errors[i] = fmt.Sprintf("ignored %d non-numeric value(s) in %s", a.Rejections[field], field)
	}
	return errors
}

// Summarize computes the summary for events without tracking rejections.
func Summarize(events []*domain.TradeEvent) domain.Summary {
	return computeFromEvents(events, nil)
}
