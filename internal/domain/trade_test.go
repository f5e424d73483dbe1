package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeEvent(t *testing.T, raw string) *TradeEvent {
	t.Helper()
	var e TradeEvent
	require.NoError(t, json.Unmarshal([]byte(raw), &e))
	return &e
}

func TestTradeEvent_AbsentVersusWrongType(t *testing.T) {
	e := decodeEvent(t, `{"simulation":{"R":"abc","result":null}}`)

	r := e.Get(FieldR)
	assert.True(t, r.Present())
	assert.Equal(t, KindString, r.Kind())

	result := e.Get(FieldResult)
	assert.True(t, result.Present())
	assert.True(t, result.IsNull())

	missing := e.Get(FieldMAEPct)
	assert.False(t, missing.Present())
	assert.Equal(t, KindAbsent, missing.Kind())

	assert.False(t, e.Get(FieldRRAtEntry).Present(), "risk section absent")
}

func TestTradeEvent_NonObjectSections(t *testing.T) {
	e := decodeEvent(t, `{"signal":"yes","simulation":[1,2],"risk":7}`)

	assert.Nil(t, e.Signal)
	assert.Nil(t, e.Simulation)
	assert.Nil(t, e.Risk)
	assert.False(t, e.IsBuyNow())
}

func TestTradeEvent_NonObjectEvent(t *testing.T) {
	for _, raw := range []string{`null`, `42`, `"event"`, `[{"signal":{"buyNow":true}}]`} {
		e := decodeEvent(t, raw)
		assert.Equal(t, TradeEvent{}, *e, raw)
	}
}

func TestTradeEvent_IsBuyNowStrict(t *testing.T) {
	tests := []struct {
		raw  string
		want bool
	}{
		{`{"signal":{"buyNow":true}}`, true},
		{`{"signal":{"buyNow":false}}`, false},
		{`{"signal":{"buyNow":"true"}}`, false},
		{`{"signal":{"buyNow":1}}`, false},
		{`{"signal":{"buyNow":null}}`, false},
		{`{"signal":{}}`, false},
		{`{}`, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, decodeEvent(t, tt.raw).IsBuyNow(), tt.raw)
	}

	var nilEvent *TradeEvent
	assert.False(t, nilEvent.IsBuyNow())
}

func TestTradeEvent_StringAccessors(t *testing.T) {
	e := decodeEvent(t, `{"simulation":{"result":"WIN","exitType":"TARGET"}}`)
	assert.Equal(t, OutcomeClassWin, e.Result())
	assert.Equal(t, ExitTypeTarget, e.ExitType())

	e = decodeEvent(t, `{"simulation":{"result":1,"exitType":{"t":"STOP"}}}`)
	assert.Equal(t, "", e.Result())
	assert.Equal(t, "", e.ExitType())
}

func TestValue_Text(t *testing.T) {
	s, ok := NewValue([]byte(` "a\"b" `)).Text()
	assert.True(t, ok)
	assert.Equal(t, `a"b`, s)

	_, ok = NewValue([]byte(`12`)).Text()
	assert.False(t, ok)
}

func TestFieldPath_String(t *testing.T) {
	assert.Equal(t, "simulation.R", FieldR.String())
	assert.Equal(t, "risk.rrAtEntry", FieldRRAtEntry.String())
}

func TestSummary_MetricUnknownKey(t *testing.T) {
	_, ok := Summary{}.Metric("sharpe")
	assert.False(t, ok)

	n, ok := Summary{N: 3}.Metric(KeyN)
	assert.True(t, ok)
	assert.Equal(t, 3.0, n)
}
