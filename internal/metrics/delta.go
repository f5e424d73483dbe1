package metrics

import (
	"math"

	"buynow-compare/internal/domain"
)

// ComputeDelta returns buyNow - other for every float metric.
// A side that is NaN or infinite makes the delta NaN, so an infinite profit
// factor never yields an infinite difference.
func ComputeDelta(buyNow, other domain.Summary) domain.Delta {
	delta := make(domain.Delta, 0, len(domain.MetricKeys))
	for _, key := range domain.MetricKeys {
		a, _ := buyNow.Metric(key)
		b, _ := other.Metric(key)
		delta = append(delta, domain.DeltaRow{Key: key, Value: diffFinite(a, b)})
	}
	return delta
}

func diffFinite(a, b float64) float64 {
	if !isFinite(a) || !isFinite(b) {
		return math.NaN()
	}
	return a - b
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
