package backtest

import "errors"

// Input errors. Each one is fatal for a run.
var (
	// ErrFileNotFound is returned when the backtest file does not exist.
	ErrFileNotFound = errors.New("file not found")

	// ErrInvalidJSON is returned when the document cannot be read or parsed as JSON.
	ErrInvalidJSON = errors.New("invalid JSON")

	// ErrMissingEvents is returned when the document has no events array.
	ErrMissingEvents = errors.New("no events array")
)
