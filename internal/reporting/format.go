package reporting

import (
	"encoding/json"
	"math"
	"strconv"

	"buynow-compare/internal/domain"
)

// FormatFloat formats v with precision decimals. NaN prints as "NaN" and
// either infinity as "∞".
func FormatFloat(v float64, precision int) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 0):
		return "∞"
	default:
		return strconv.FormatFloat(v, 'f', precision, 64)
	}
}

func formatInt(n int) string {
	return strconv.Itoa(n)
}

// displayValue renders a metadata value: strings unquoted, booleans as
// True/False, anything else as its JSON text.
func displayValue(v domain.Value) string {
	if s, ok := v.Text(); ok {
		return s
	}
	if b, ok := v.Bool(); ok {
		if b {
			return "True"
		}
		return "False"
	}
	return string(v.Raw())
}

// truthy reports whether a metadata value counts as set: absent, null,
// false, zero, "" and empty arrays or objects do not.
func truthy(v domain.Value) bool {
	switch v.Kind() {
	case domain.KindBool:
		b, _ := v.Bool()
		return b
	case domain.KindString:
		s, _ := v.Text()
		return s != ""
	case domain.KindNumber:
		f, err := strconv.ParseFloat(string(v.Raw()), 64)
		return err != nil || f != 0
	case domain.KindArray:
		var items []json.RawMessage
		return json.Unmarshal(v.Raw(), &items) != nil || len(items) > 0
	case domain.KindObject:
		var fields map[string]json.RawMessage
		return json.Unmarshal(v.Raw(), &fields) != nil || len(fields) > 0
	default:
		return false
	}
}

// rangeText returns "from → to" with "?" for an unset side, and false when
// neither side is set.
func rangeText(from, to domain.Value) (string, bool) {
	if !truthy(from) && !truthy(to) {
		return "", false
	}
	side := func(v domain.Value) string {
		if truthy(v) {
			return displayValue(v)
		}
		return "?"
	}
	return side(from) + " → " + side(to), true
}
