package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNewJSON(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "json", "warn")
	log.Info().Msg("dropped")
	log.Warn().Str("source", "sample").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("lines=%q", lines)
	}
	var entry map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry["message"] != "kept" || entry["source"] != "sample" || entry["level"] != "warn" {
		t.Fatalf("entry=%v", entry)
	}
	if _, ok := entry["time"]; !ok {
		t.Fatalf("missing timestamp: %v", entry)
	}
}

func TestNewTextAndDefaultLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "text", "nonsense")
	log.Debug().Msg("hidden")
	log.Info().Msg("table loaded")

	out := buf.String()
	if strings.Contains(out, "hidden") || !strings.Contains(out, "table loaded") {
		t.Fatalf("out=%q", out)
	}
	if strings.HasPrefix(strings.TrimSpace(out), "{") {
		t.Fatalf("text format should not be json: %q", out)
	}
}
