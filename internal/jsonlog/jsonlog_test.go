package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"
)

func TestLoggerLevels(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelInfo)

	l.PrintInfo("starting server", map[string]string{"addr": ":4000"})
	l.PrintError(errors.New("boom"), nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 log lines; got %d", len(lines))
	}

	var entry struct {
		Level      string            `json:"level"`
		Message    string            `json:"message"`
		Properties map[string]string `json:"properties"`
		Trace      string            `json:"trace"`
	}
	if err := json.Unmarshal([]byte(lines[0]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.Level != "INFO" || entry.Message != "starting server" {
		t.Errorf("unexpected first entry: %+v", entry)
	}
	if entry.Properties["addr"] != ":4000" {
		t.Errorf("expected addr property; got %v", entry.Properties)
	}

	if err := json.Unmarshal([]byte(lines[1]), &entry); err != nil {
		t.Fatal(err)
	}
	if entry.Level != "ERROR" || entry.Message != "boom" {
		t.Errorf("unexpected second entry: %+v", entry)
	}
	if entry.Trace == "" {
		t.Error("expected a stack trace on ERROR entries")
	}
}

func TestLoggerMinLevel(t *testing.T) {
	var buf bytes.Buffer
	l := New(&buf, LevelError)
	l.PrintInfo("suppressed", nil)
	if buf.Len() != 0 {
		t.Errorf("expected INFO entry below min level to be dropped; got %q", buf.String())
	}
}
