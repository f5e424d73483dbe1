// Package logging builds the logrus logger used for stderr diagnostics.
package logging

import (
	"bytes"
	"fmt"
	"io"
	"sort"

	log "github.com/sirupsen/logrus"
)

// New returns a logger writing plain lines to w at the given level
// ("debug", "info", "warn", ...).
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("parse log level: %w", err)
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetFormatter(&PlainFormatter{})
	logger.SetLevel(lvl)
	return logger, nil
}

// PlainFormatter prints the message followed by sorted key=value fields.
// No timestamp or level prefix, so fatal errors stay one-line diagnostics.
type PlainFormatter struct{}

func (f *PlainFormatter) Format(entry *log.Entry) ([]byte, error) {
	var b bytes.Buffer
	b.WriteString(entry.Message)

	keys := make([]string, 0, len(entry.Data))
	for k := range entry.Data {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Fprintf(&b, " %s=%v", k, entry.Data[k])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}
