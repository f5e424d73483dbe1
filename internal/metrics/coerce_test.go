package metrics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"buynow-compare/internal/domain"
)

func TestToNumber(t *testing.T) {
	tests := []struct {
		raw    string
		want   float64
		ok     bool
		isNaN  bool
		isPInf bool
	}{
		{raw: `2`, want: 2, ok: true},
		{raw: `-1.25`, want: -1.25, ok: true},
		{raw: `1e3`, want: 1000, ok: true},
		{raw: `"2.5"`, want: 2.5, ok: true},
		{raw: `"  -3 "`, want: -3, ok: true},
		{raw: `true`, want: 1, ok: true},
		{raw: `false`, want: 0, ok: true},
		{raw: `"inf"`, ok: true, isPInf: true},
		{raw: `"Infinity"`, ok: true, isPInf: true},
		{raw: `"nan"`, ok: true, isNaN: true},
		{raw: `1e400`, ok: true, isPInf: true},
		{raw: `"abc"`},
		{raw: `"0x1p2"`},
		{raw: `"-0X1.8p1"`},
		{raw: `"1_000"`, want: 1000, ok: true},
		{raw: `""`},
		{raw: `null`},
		{raw: `[1]`},
		{raw: `{"R":1}`},
		{raw: ``},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, ok := ToNumber(domain.NewValue([]byte(tt.raw)))
			assert.Equal(t, tt.ok, ok)
			switch {
			case !tt.ok:
			case tt.isNaN:
				assert.True(t, math.IsNaN(got), "expected NaN, got %v", got)
			case tt.isPInf:
				assert.True(t, math.IsInf(got, 1), "expected +Inf, got %v", got)
			default:
				assert.InDelta(t, tt.want, got, 1e-12)
			}
		})
	}
}

func TestToFiniteNumber_RejectsNonFinite(t *testing.T) {
	for _, raw := range []string{`"inf"`, `"-inf"`, `"nan"`, `1e400`, `null`, `"x"`, `"0x1p2"`, `"0x1.8p1"`} {
		_, ok := ToFiniteNumber(domain.NewValue([]byte(raw)))
		assert.False(t, ok, "expected %s to be rejected", raw)
	}

	f, ok := ToFiniteNumber(domain.NewValue([]byte(`"4"`)))
	assert.True(t, ok)
	assert.Equal(t, 4.0, f)
}
