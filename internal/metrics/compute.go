package metrics

import (
	"math"
	"sort"

	"buynow-compare/internal/domain"
)

// computeFromEvents calculates all summary fields for one group of events.
// reject is called for every present, non-null value that cannot be used
// as a finite number.
func computeFromEvents(events []*domain.TradeEvent, reject func(domain.FieldPath)) domain.Summary {
	n := len(events)

	wins := 0
	losses := 0
	exits := make(map[string]int)
	for _, e := range events {
		switch e.Result() {
		case domain.OutcomeClassWin:
			wins++
		case domain.OutcomeClassLoss:
			losses++
		}
		if exitType := e.ExitType(); exitType != "" {
			exits[exitType]++
		}
	}

	rValues := finiteValues(events, domain.FieldR, reject)

	return domain.Summary{
		N:          n,
		Wins:       wins,
		Losses:     losses,
		WinRatePct: computePct(wins, n),

		AvgR:         computeMean(rValues),
		MedR:         computeMedian(rValues),
		ExpR:         computeMean(rValues),
		ProfitFactor: computeProfitFactor(events),

		AvgReturnPct: computeMean(finiteValues(events, domain.FieldReturnPct, reject)),
		AvgHoldDays:  computeMean(finiteValues(events, domain.FieldHoldingDays, reject)),

		TargetHitPct: computePct(exits[domain.ExitTypeTarget], n),
		StopHitPct:   computePct(exits[domain.ExitTypeStop], n),
		TimeExitPct:  computePct(exits[domain.ExitTypeTime], n),

		AvgRRAtEntry: computeMean(finiteValues(events, domain.FieldRRAtEntry, reject)),
		AvgMAEPct:    computeMean(finiteValues(events, domain.FieldMAEPct, reject)),
		AvgMFEPct:    computeMean(finiteValues(events, domain.FieldMFEPct, reject)),
	}
}

// finiteValues extracts field from every event, keeping finite numbers only.
func finiteValues(events []*domain.TradeEvent, field domain.FieldPath, reject func(domain.FieldPath)) []float64 {
	values := make([]float64, 0, len(events))
	for _, e := range events {
		v := e.Get(field)
		f, ok := ToFiniteNumber(v)
		if !ok {
			if reject != nil && v.Present() && !v.IsNull() {
				reject(field)
			}
			continue
		}
		values = append(values, f)
	}
	return values
}

// computePct returns 100 * count / total, NaN when total is zero.
func computePct(count, total int) float64 {
	if total == 0 {
		return math.NaN()
	}
	return 100 * float64(count) / float64(total)
}

// computeMean calculates the arithmetic mean, NaN for no values.
func computeMean(values []float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}
	sum := 0.0
	for _, v := range values {
		sum += v
	}
	return sum / float64(len(values))
}

// computeMedian returns the middle value, or the mean of the two middle
// values for an even count. NaN for no values.
func computeMedian(values []float64) float64 {
	n := len(values)
	if n == 0 {
		return math.NaN()
	}
	sorted := make([]float64, n)
	copy(sorted, values)
	sort.Float64s(sorted)

	mid := n / 2
	if n%2 == 1 {
		return sorted[mid]
	}
	return (sorted[mid-1] + sorted[mid]) / 2
}

// computeProfitFactor = sum(positive R) / sum(|negative R|).
// Unparsable R counts as zero. With no losses the result is +Inf if there
// were gains and NaN otherwise.
func computeProfitFactor(events []*domain.TradeEvent) float64 {
	gains := 0.0
	losses := 0.0
	for _, e := range events {
		r, ok := ToNumber(e.Get(domain.FieldR))
		if !ok {
			r = 0
		}
		if r > 0 {
			gains += r
		} else if r < 0 {
			losses += -r
		}
	}
	if losses == 0 {
		if gains > 0 {
			return math.Inf(1)
		}
		return math.NaN()
	}
	return gains / losses
}
