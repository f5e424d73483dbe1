package metrics

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"buynow-compare/internal/domain"
)

// ToNumber converts a raw field value to float64.
// Numbers convert directly, booleans become 1 or 0, and strings are trimmed
// and parsed as decimal ("2.5", "1e3", "inf", "nan"). Null, arrays, objects,
// hex floats and unparsable strings fail. Out-of-range input yields ±Inf.
func ToNumber(v domain.Value) (float64, bool) {
	switch v.Kind() {
	case domain.KindNumber:
		return parseFloat(string(v.Raw()))
	case domain.KindBool:
		b, _ := v.Bool()
		if b {
			return 1, true
		}
		return 0, true
	case domain.KindString:
		s, ok := v.Text()
		if !ok {
			return 0, false
		}
		s = strings.TrimSpace(s)
		if isHexFloat(s) {
			return 0, false
		}
		return parseFloat(s)
	default:
		return 0, false
	}
}

// ToFiniteNumber is ToNumber restricted to finite results.
// Every aggregate uses it to decide which values to keep.
func ToFiniteNumber(v domain.Value) (float64, bool) {
	f, ok := ToNumber(v)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func parseFloat(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		var numErr *strconv.NumError
		if errors.As(err, &numErr) && errors.Is(numErr.Err, strconv.ErrRange) {
			return f, true
		}
		return 0, false
	}
	return f, true
}

// isHexFloat reports whether s uses Go's hex float syntax ("0x1p2"),
// which ParseFloat accepts but decimal input must not.
func isHexFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
