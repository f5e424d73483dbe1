package domain

import (
	"bytes"
	"encoding/json"
)

// Value is a raw JSON field value taken from a loosely structured record.
// The zero Value means the field was absent.
type Value struct {
	raw json.RawMessage
}

// NewValue wraps raw JSON. Leading and trailing whitespace is dropped.
func NewValue(raw []byte) Value {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 {
		return Value{}
	}
	cp := make(json.RawMessage, len(trimmed))
	copy(cp, trimmed)
	return Value{raw: cp}
}

// Present reports whether the field existed in the source record (null included).
func (v Value) Present() bool {
	return len(v.raw) > 0
}

// IsNull reports whether the field was present with a JSON null.
func (v Value) IsNull() bool {
	return string(v.raw) == "null"
}

// Raw returns the underlying JSON text, nil when absent.
func (v Value) Raw() json.RawMessage {
	return v.raw
}

// Kind returns the JSON kind of the value.
func (v Value) Kind() ValueKind {
	if len(v.raw) == 0 {
		return KindAbsent
	}
	switch v.raw[0] {
	case 'n':
		return KindNull
	case 't', 'f':
		return KindBool
	case '"':
		return KindString
	case '{':
		return KindObject
	case '[':
		return KindArray
	default:
		return KindNumber
	}
}

// Bool returns the value if it is a JSON boolean.
func (v Value) Bool() (bool, bool) {
	switch string(v.raw) {
	case "true":
		return true, true
	case "false":
		return false, true
	}
	return false, false
}

// Text returns the decoded value if it is a JSON string.
func (v Value) Text() (string, bool) {
	if v.Kind() != KindString {
		return "", false
	}
	var s string
	if err := json.Unmarshal(v.raw, &s); err != nil {
		return "", false
	}
	return s, true
}

// ValueKind classifies a raw JSON value.
type ValueKind int

const (
	KindAbsent ValueKind = iota
	KindNull
	KindBool
	KindNumber
	KindString
	KindArray
	KindObject
)
