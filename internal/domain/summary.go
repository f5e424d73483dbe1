package domain

// Summary holds the comparative statistics for one group of trade events.
// Float fields are NaN when undefined (no trades or no usable values).
type Summary struct {
	// Counts
	N      int
	Wins   int
	Losses int

	WinRatePct float64 // 100 * wins / n

	// R distribution
	AvgR         float64
	MedR         float64
	ExpR         float64 // expectancy, mean R per trade
	ProfitFactor float64 // gross positive R / gross negative R, +Inf with no losses

	AvgReturnPct float64
	AvgHoldDays  float64

	// Exit breakdown, percent of n
	TargetHitPct float64
	StopHitPct   float64
	TimeExitPct  float64

	AvgRRAtEntry float64
	AvgMAEPct    float64
	AvgMFEPct    float64
}

// Metric keys
const (
	KeyN            = "n"
	KeyWins         = "wins"
	KeyLosses       = "losses"
	KeyWinRatePct   = "win_rate_%"
	KeyAvgR         = "avg_R"
	KeyMedR         = "med_R"
	KeyExpR         = "exp_R"
	KeyProfitFactor = "profit_factor"
	KeyAvgReturnPct = "avg_return_%"
	KeyAvgHoldDays  = "avg_hold_days"
	KeyTargetHitPct = "target_hit_%"
	KeyStopHitPct   = "stop_hit_%"
	KeyTimeExitPct  = "time_exit_%"
	KeyAvgRRAtEntry = "avg_rr_at_entry"
	KeyAvgMAEPct    = "avg_mae_%"
	KeyAvgMFEPct    = "avg_mfe_%"
)

// MetricKeys lists the float metrics of a Summary in report order.
var MetricKeys = []string{
	KeyWinRatePct,
	KeyAvgR,
	KeyMedR,
	KeyExpR,
	KeyProfitFactor,
	KeyAvgReturnPct,
	KeyAvgHoldDays,
	KeyTargetHitPct,
	KeyStopHitPct,
	KeyTimeExitPct,
	KeyAvgRRAtEntry,
	KeyAvgMAEPct,
	KeyAvgMFEPct,
}

// Metric returns the float metric for key. Count keys are returned as floats.
func (s Summary) Metric(key string) (float64, bool) {
	switch key {
	case KeyN:
		return float64(s.N), true
	case KeyWins:
		return float64(s.Wins), true
	case KeyLosses:
		return float64(s.Losses), true
	case KeyWinRatePct:
		return s.WinRatePct, true
	case KeyAvgR:
		return s.AvgR, true
	case KeyMedR:
		return s.MedR, true
	case KeyExpR:
		return s.ExpR, true
	case KeyProfitFactor:
		return s.ProfitFactor, true
	case KeyAvgReturnPct:
		return s.AvgReturnPct, true
	case KeyAvgHoldDays:
		return s.AvgHoldDays, true
	case KeyTargetHitPct:
		return s.TargetHitPct, true
	case KeyStopHitPct:
		return s.StopHitPct, true
	case KeyTimeExitPct:
		return s.TimeExitPct, true
	case KeyAvgRRAtEntry:
		return s.AvgRRAtEntry, true
	case KeyAvgMAEPct:
		return s.AvgMAEPct, true
	case KeyAvgMFEPct:
		return s.AvgMFEPct, true
	default:
		return 0, false
	}
}

// DeltaRow is one metric difference between the buy-now and other groups.
type DeltaRow struct {
	Key   string
	Value float64 // NaN when either side is not finite
}

// Delta lists DeltaRows in MetricKeys order.
type Delta []DeltaRow

// Get returns the delta for key.
func (d Delta) Get(key string) (float64, bool) {
	for _, row := range d {
		if row.Key == key {
			return row.Value, true
		}
	}
	return 0, false
}
