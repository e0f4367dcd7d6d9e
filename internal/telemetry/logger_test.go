package telemetry

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestJSONLoggerWritesEvents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "events.jsonl")
	lg, err := NewJSONLogger(path)
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	session := lg.With(map[string]any{"session": "abc"})
	session.Info("round_passed", map[string]any{"round": 2, "mistakes": 1})
	session.Error("nav_failed", map[string]any{"err": "underflow"})
	if err := lg.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer f.Close()

	var events []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var ev map[string]any
		if err := json.Unmarshal(sc.Bytes(), &ev); err != nil {
			t.Fatalf("line is not JSON: %q: %v", sc.Text(), err)
		}
		events = append(events, ev)
	}
	if len(events) != 2 {
		t.Fatalf("expected 2 events, got %d", len(events))
	}
	if events[0]["msg"] != "round_passed" || events[0]["level"] != "info" || events[0]["session"] != "abc" {
		t.Fatalf("unexpected first event: %#v", events[0])
	}
	if events[0]["round"] != float64(2) {
		t.Fatalf("round field = %#v", events[0]["round"])
	}
	if events[1]["level"] != "error" || events[1]["err"] != "underflow" {
		t.Fatalf("unexpected second event: %#v", events[1])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var lg *JSONLogger
	lg.Info("ignored", nil)
	lg.With(map[string]any{"a": 1}).Error("ignored", nil)
	if err := lg.Close(); err != nil {
		t.Fatalf("close nil logger: %v", err)
	}
	discard, err := NewJSONLogger("")
	if err != nil {
		t.Fatalf("discard logger: %v", err)
	}
	discard.Debug("ignored", map[string]any{"k": "v"})
	if err := discard.Close(); err != nil {
		t.Fatalf("close discard logger: %v", err)
	}
}
