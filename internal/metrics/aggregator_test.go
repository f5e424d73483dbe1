package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"buynow-compare/internal/domain"
)

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil)

	assert.Equal(t, 0, s.N)
	assert.Equal(t, 0, s.Wins)
	for _, key := range domain.MetricKeys {
		v, ok := s.Metric(key)
		require.True(t, ok)
		assert.True(t, math.IsNaN(v), "%s: expected NaN, got %v", key, v)
	}
}

func TestSummarize_BuyNowExample(t *testing.T) {
	buyNow := []*domain.TradeEvent{
		makeEvent(t, `{"signal":{"buyNow":true},"simulation":{"R":2,"result":"WIN","exitType":"TARGET"}}`),
	}
	other := []*domain.TradeEvent{
		makeEvent(t, `{"signal":{"buyNow":false},"simulation":{"R":-1,"result":"LOSS","exitType":"STOP"}}`),
	}

	st := Summarize(buyNow)
	assert.Equal(t, 1, st.N)
	assert.Equal(t, 1, st.Wins)
	assert.Equal(t, 100.0, st.WinRatePct)
	assert.Equal(t, 2.0, st.AvgR)
	assert.Equal(t, 2.0, st.MedR)
	assert.Equal(t, 2.0, st.ExpR)
	assert.True(t, math.IsInf(st.ProfitFactor, 1))
	assert.Equal(t, 100.0, st.TargetHitPct)
	assert.Equal(t, 0.0, st.StopHitPct)
	assert.Equal(t, 0.0, st.TimeExitPct)
	assert.True(t, math.IsNaN(st.AvgReturnPct))

	sf := Summarize(other)
	assert.Equal(t, 1, sf.N)
	assert.Equal(t, 0, sf.Wins)
	assert.Equal(t, 1, sf.Losses)
	assert.Equal(t, 0.0, sf.WinRatePct)
	assert.Equal(t, -1.0, sf.AvgR)
	assert.Equal(t, 0.0, sf.ProfitFactor)
	assert.Equal(t, 100.0, sf.StopHitPct)
}

func TestSummarize_FullRecords(t *testing.T) {
	events := []*domain.TradeEvent{
		makeEvent(t, `{"simulation":{"R":2,"result":"WIN","exitType":"TARGET","returnPct":4,"holdingDays":3,"maePct":-1,"mfePct":5},"risk":{"rrAtEntry":2}}`),
		makeEvent(t, `{"simulation":{"R":-1,"result":"LOSS","exitType":"STOP","returnPct":-2,"holdingDays":5,"maePct":-3,"mfePct":1},"risk":{"rrAtEntry":3}}`),
		makeEvent(t, `{"simulation":{"R":0.5,"result":"WIN","exitType":"TIME","returnPct":1,"holdingDays":10,"maePct":-2,"mfePct":2},"risk":{"rrAtEntry":"1"}}`),
		makeEvent(t, `{"simulation":{"R":-1,"result":"LOSS","exitType":"STOP","returnPct":-2,"holdingDays":2,"maePct":-2,"mfePct":0}}`),
	}

	s := Summarize(events)

	assert.Equal(t, 4, s.N)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 2, s.Losses)
	assert.Equal(t, 50.0, s.WinRatePct)
	assert.InDelta(t, 0.125, s.AvgR, 1e-12)
	assert.InDelta(t, -0.25, s.MedR, 1e-12)
	assert.InDelta(t, s.AvgR, s.ExpR, 0)
	assert.InDelta(t, 1.25, s.ProfitFactor, 1e-12)
	assert.InDelta(t, 0.25, s.AvgReturnPct, 1e-12)
	assert.InDelta(t, 5.0, s.AvgHoldDays, 1e-12)
	assert.Equal(t, 25.0, s.TargetHitPct)
	assert.Equal(t, 50.0, s.StopHitPct)
	assert.Equal(t, 25.0, s.TimeExitPct)
	assert.InDelta(t, 2.0, s.AvgRRAtEntry, 1e-12)
	assert.InDelta(t, -2.0, s.AvgMAEPct, 1e-12)
	assert.InDelta(t, 2.0, s.AvgMFEPct, 1e-12)
}

func TestSummarize_NonNumericRStillCounted(t *testing.T) {
	events := []*domain.TradeEvent{
		makeEvent(t, `{"simulation":{"R":"oops","result":"WIN"}}`),
		makeEvent(t, `{"simulation":{"R":3,"result":"WIN"}}`),
	}

	s := Summarize(events)

	assert.Equal(t, 2, s.N)
	assert.Equal(t, 2, s.Wins)
	assert.Equal(t, 3.0, s.AvgR)
	assert.Equal(t, 3.0, s.MedR)
}

func TestSummarize_WinRateBounds(t *testing.T) {
	results := []string{`"WIN"`, `"LOSS"`, `"win"`, `null`, `1`, `"BREAKEVEN"`, `"WIN"`}
	events := make([]*domain.TradeEvent, len(results))
	for i, r := range results {
		events[i] = makeEvent(t, `{"simulation":{"result":`+r+`}}`)
	}

	s := Summarize(events)

	assert.Equal(t, 2, s.Wins, "only exact WIN counts")
	assert.GreaterOrEqual(t, s.WinRatePct, 0.0)
	assert.LessOrEqual(t, s.WinRatePct, 100.0)
	assert.InDelta(t, 100*2.0/7.0, s.WinRatePct, 1e-9)
}

func TestSummarize_MalformedRecordsNeverFail(t *testing.T) {
	events := []*domain.TradeEvent{
		nil,
		makeEvent(t, `[]`),
		makeEvent(t, `"text"`),
		makeEvent(t, `{"simulation":null,"risk":[1,2]}`),
		makeEvent(t, `{"simulation":{"exitType":42,"holdingDays":{"d":1}}}`),
	}

	s := Summarize(events)

	assert.Equal(t, 5, s.N)
	assert.Equal(t, 0.0, s.TargetHitPct)
	assert.True(t, math.IsNaN(s.AvgR))
	assert.True(t, math.IsNaN(s.AvgHoldDays))
	assert.True(t, math.IsNaN(s.ProfitFactor))
}

func TestAggregator_TracksRejections(t *testing.T) {
	agg := NewAggregator()

	agg.Summarize([]*domain.TradeEvent{
		makeEvent(t, `{"simulation":{"R":"x","returnPct":"n/a"},"risk":{"rrAtEntry":null}}`),
		makeEvent(t, `{"simulation":{"R":[1],"holdingDays":"5"}}`),
	})
	agg.Summarize([]*domain.TradeEvent{
		makeEvent(t, `{"simulation":{"R":"inf","maePct":true}}`),
	})

	assert.Equal(t, 3, agg.Rejections["simulation.R"])
	assert.Equal(t, 1, agg.Rejections["simulation.returnPct"])
	assert.NotContains(t, agg.Rejections, "risk.rrAtEntry", "null is not a rejection")
	assert.NotContains(t, agg.Rejections, "simulation.holdingDays")
	assert.NotContains(t, agg.Rejections, "simulation.maePct", "booleans coerce")
	assert.Equal(t, 4, agg.TotalRejections())

	assert.Equal(t, []string{
		"ignored 3 non-numeric value(s) in simulation.R",
		"ignored 1 non-numeric value(s) in simulation.returnPct",
	}, agg.RejectionErrors())
}

func TestAggregator_NoRejections(t *testing.T) {
	agg := NewAggregator()
	agg.Summarize([]*domain.TradeEvent{makeREvent(t, "1")})

	assert.Nil(t, agg.RejectionErrors())
	assert.Equal(t, 0, agg.TotalRejections())
}
