package jsonlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"
)

type logEntry struct {
	Level      string            `json:"level"`
	Time       string            `json:"time"`
	Message    string            `json:"message"`
	Properties map[string]string `json:"properties"`
	Trace      string            `json:"trace"`
}

func TestPrintInfo(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)
	logger.PrintInfo("starting server", map[string]string{"addr": ":4000"})
	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Level != "INFO" {
		t.Errorf("expected level INFO; got %s", entry.Level)
	}
	if entry.Message != "starting server" {
		t.Errorf("expected message %q; got %q", "starting server", entry.Message)
	}
	if entry.Properties["addr"] != ":4000" {
		t.Errorf("expected addr property %q; got %q", ":4000", entry.Properties["addr"])
	}
	if entry.Trace != "" {
		t.Error("expected no stack trace on an INFO entry")
	}
}

func TestPrintErrorIncludesTrace(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)
	logger.PrintError(errors.New("connection refused"), nil)
	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("expected level ERROR; got %s", entry.Level)
	}
	if entry.Message != "connection refused" {
		t.Errorf("expected message %q; got %q", "connection refused", entry.Message)
	}
	if entry.Trace == "" {
		t.Error("expected a stack trace on an ERROR entry")
	}
}

func TestMinLevelFiltersEntries(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelError)
	logger.PrintInfo("dropped", nil)
	if buf.Len() != 0 {
		t.Errorf("expected INFO entry below min level to be dropped; got %q", buf.String())
	}
	logger.PrintError(errors.New("kept"), nil)
	if buf.Len() == 0 {
		t.Error("expected ERROR entry at min level to be written")
	}
}

func TestWriteLogsAtErrorLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, LevelInfo)
	if _, err := logger.Write([]byte("http: proxy error")); err != nil {
		t.Fatal(err)
	}
	var entry logEntry
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("log line is not valid JSON: %v", err)
	}
	if entry.Level != "ERROR" {
		t.Errorf("expected level ERROR; got %s", entry.Level)
	}
}
