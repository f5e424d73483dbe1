package domain

import "encoding/json"

// TradeEvent is one backtest event as written by the backtester.
// Each section holds the raw fields of the matching nested object; a section
// is nil when the object is absent or is not a JSON object.
type TradeEvent struct {
	Signal     Section
	Simulation Section
	Risk       Section
}

// Section is a nested object of a trade event, keyed by field name.
type Section map[string]Value

// Get returns the named field, or the zero Value when absent.
func (s Section) Get(key string) Value {
	if s == nil {
		return Value{}
	}
	return s[key]
}

// FieldPath names a consumed field as section.key.
type FieldPath struct {
	Section string
	Key     string
}

// String returns the dotted form, e.g. "simulation.R".
func (p FieldPath) String() string {
	return p.Section + "." + p.Key
}

// Section names
const (
	SectionSignal     = "signal"
	SectionSimulation = "simulation"
	SectionRisk       = "risk"
)

// Consumed fields
var (
	FieldBuyNow      = FieldPath{SectionSignal, "buyNow"}
	FieldR           = FieldPath{SectionSimulation, "R"}
	FieldResult      = FieldPath{SectionSimulation, "result"}
	FieldExitType    = FieldPath{SectionSimulation, "exitType"}
	FieldReturnPct   = FieldPath{SectionSimulation, "returnPct"}
	FieldHoldingDays = FieldPath{SectionSimulation, "holdingDays"}
	FieldMAEPct      = FieldPath{SectionSimulation, "maePct"}
	FieldMFEPct      = FieldPath{SectionSimulation, "mfePct"}
	FieldRRAtEntry   = FieldPath{SectionRisk, "rrAtEntry"}
)

// Outcome class constants
const (
	OutcomeClassWin  = "WIN"
	OutcomeClassLoss = "LOSS"
)

// Exit type constants
const (
	ExitTypeTarget = "TARGET"
	ExitTypeStop   = "STOP"
	ExitTypeTime   = "TIME"
)

// Get returns the field at p. A nil event has every field absent.
func (e *TradeEvent) Get(p FieldPath) Value {
	if e == nil {
		return Value{}
	}
	switch p.Section {
	case SectionSignal:
		return e.Signal.Get(p.Key)
	case SectionSimulation:
		return e.Simulation.Get(p.Key)
	case SectionRisk:
		return e.Risk.Get(p.Key)
	default:
		return Value{}
	}
}

// IsBuyNow reports whether signal.buyNow is the JSON boolean true.
// Strings, numbers and other truthy values do not count.
func (e *TradeEvent) IsBuyNow() bool {
	b, ok := e.Get(FieldBuyNow).Bool()
	return ok && b
}

// Result returns simulation.result when it is a string.
func (e *TradeEvent) Result() string {
	s, _ := e.Get(FieldResult).Text()
	return s
}

// ExitType returns simulation.exitType when it is a string.
func (e *TradeEvent) ExitType() string {
	s, _ := e.Get(FieldExitType).Text()
	return s
}

// UnmarshalJSON decodes an event leniently. Input that is not a JSON object
// yields an event with every field absent rather than an error.
func (e *TradeEvent) UnmarshalJSON(data []byte) error {
	*e = TradeEvent{}

	fields, ok := decodeObject(data)
	if !ok {
		return nil
	}
	e.Signal = decodeSection(fields[SectionSignal])
	e.Simulation = decodeSection(fields[SectionSimulation])
	e.Risk = decodeSection(fields[SectionRisk])
	return nil
}

func decodeSection(raw json.RawMessage) Section {
	fields, ok := decodeObject(raw)
	if !ok {
		return nil
	}
	s := make(Section, len(fields))
	for k, v := range fields {
		s[k] = NewValue(v)
	}
	return s
}

// decodeObject returns the members of a JSON object, false for anything else.
func decodeObject(raw json.RawMessage) (map[string]json.RawMessage, bool) {
	if NewValue(raw).Kind() != KindObject {
		return nil, false
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(raw, &fields); err != nil {
		return nil, false
	}
	return fields, true
}
