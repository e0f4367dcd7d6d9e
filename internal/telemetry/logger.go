package telemetry

import (
	"io"
	"os"
	"sort"
	"time"

	"github.com/charmbracelet/log"
)

// JSONLogger writes one JSON object per event. A nil *JSONLogger discards everything.
type JSONLogger struct {
	l *log.Logger
	c io.Closer
}

// NewJSONLogger logs to path, or discards when path is empty.
func NewJSONLogger(path string) (*JSONLogger, error) {
	if path == "" {
		return NewJSONLoggerTo(io.Discard), nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, err
	}
	lg := NewJSONLoggerTo(f)
	lg.c = f
	return lg, nil
}

func NewJSONLoggerTo(w io.Writer) *JSONLogger {
	return &JSONLogger{l: log.NewWithOptions(w, log.Options{
		Formatter:       log.JSONFormatter,
		ReportTimestamp: true,
		TimeFormat:      time.RFC3339Nano,
		Level:           log.DebugLevel,
	})}
}

// With returns a logger that adds fields to every event.
func (l *JSONLogger) With(fields map[string]any) *JSONLogger {
	if l == nil || l.l == nil {
		return l
	}
	return &JSONLogger{l: l.l.With(keyvals(fields)...), c: l.c}
}

func (l *JSONLogger) Debug(msg string, fields map[string]any) {
	if l == nil || l.l == nil {
		return
	}
	l.l.Debug(msg, keyvals(fields)...)
}

func (l *JSONLogger) Info(msg string, fields map[string]any) {
	if l == nil || l.l == nil {
		return
	}
	l.l.Info(msg, keyvals(fields)...)
}

func (l *JSONLogger) Error(msg string, fields map[string]any) {
	if l == nil || l.l == nil {
		return
	}
	l.l.Error(msg, keyvals(fields)...)
}

func (l *JSONLogger) Close() error {
	if l == nil || l.c == nil {
		return nil
	}
	return l.c.Close()
}

func keyvals(fields map[string]any) []any {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	out := make([]any, 0, 2*len(keys))
	for _, k := range keys {
		out = append(out, k, fields[k])
	}
	return out
}
