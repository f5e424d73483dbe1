// Package backtest reads backtest result documents and splits their events
// by the buyNow signal.
package backtest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"unicode/utf8"

	"buynow-compare/internal/domain"
)

// Load reads and decodes the backtest file at path.
func Load(path string) (*domain.BacktestFile, error) {
	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode parses a backtest document of the form
// {"version": any, "from": string, "to": string, "events": [...]}.
// Only events is required, and it must be an array. Read failures and
// invalid UTF-8 are reported as ErrInvalidJSON.
func Decode(r io.Reader) (*domain.BacktestFile, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}
	// encoding/json would replace invalid bytes with U+FFFD
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: invalid UTF-8", ErrInvalidJSON)
	}

	var top json.RawMessage
	if err := json.Unmarshal(data, &top); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	// A valid document that is not an object has no events either
	if domain.NewValue(top).Kind() != domain.KindObject {
		return nil, ErrMissingEvents
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(top, &fields); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidJSON, err)
	}

	rawEvents, ok := fields["events"]
	if !ok || domain.NewValue(rawEvents).Kind() != domain.KindArray {
		return nil, ErrMissingEvents
	}

	var elems []json.RawMessage
	if err := json.Unmarshal(rawEvents, &elems); err != nil {
		return nil, fmt.Errorf("%w: events: %v", ErrInvalidJSON, err)
	}

	events := make([]*domain.TradeEvent, len(elems))
	for i, raw := range elems {
		e := &domain.TradeEvent{}
		// TradeEvent decoding is lenient and only fails on broken JSON,
		// which was already rejected above.
		if err := e.UnmarshalJSON(raw); err != nil {
			return nil, fmt.Errorf("%w: event %d: %v", ErrInvalidJSON, i, err)
		}
		events[i] = e
	}

	return &domain.BacktestFile{
		Version: domain.NewValue(fields["version"]),
		From:    domain.NewValue(fields["from"]),
		To:      domain.NewValue(fields["to"]),
		Events:  events,
	}, nil
}

// Partition splits events into those with signal.buyNow == true and all
// others. Every event lands in exactly one group, in input order.
func Partition(events []*domain.TradeEvent) (buyNow, other []*domain.TradeEvent) {
	buyNow = make([]*domain.TradeEvent, 0, len(events))
	other = make([]*domain.TradeEvent, 0, len(events))
	for _, e := range events {
		if e.IsBuyNow() {
			buyNow = append(buyNow, e)
		} else {
			other = append(other, e)
		}
	}
	return buyNow, other
}
