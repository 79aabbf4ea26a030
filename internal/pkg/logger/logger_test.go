package logger

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"
)

func newCaptured(verbose bool) (*StdLogger, *bytes.Buffer) {
	var buf bytes.Buffer
	return &StdLogger{verbose: verbose, out: log.New(&buf, "watchit: ", 0)}, &buf
}

func TestWarnEmittedWithoutVerbose(t *testing.T) {
	l, buf := newCaptured(false)
	l.Warn("command run degraded", map[string]interface{}{"error": "broken pipe"})

	got := buf.String()
	if !strings.Contains(got, "[WARN] command run degraded") {
		t.Fatalf("warn line missing: %q", got)
	}
	if !strings.Contains(got, "error=broken pipe") {
		t.Fatalf("field missing: %q", got)
	}
}

func TestDebugAndInfoGatedByVerbose(t *testing.T) {
	l, buf := newCaptured(false)
	l.Debug("noise", nil)
	l.Info("noise", nil)
	if buf.Len() != 0 {
		t.Fatalf("quiet logger wrote %q", buf.String())
	}

	l.verbose = true
	l.Debug("detail", nil)
	if !strings.Contains(buf.String(), "[DEBUG] detail") {
		t.Fatalf("verbose debug missing: %q", buf.String())
	}
}

func TestErrorIncludesCause(t *testing.T) {
	l, buf := newCaptured(false)
	l.Error("history save failed", errors.New("disk full"), nil)
	if !strings.Contains(buf.String(), "history save failed: disk full") {
		t.Fatalf("error cause missing: %q", buf.String())
	}
}

func TestFieldsRenderedInSortedOrder(t *testing.T) {
	got := formatFields(map[string]interface{}{"provider": "openai", "model": "gpt-3.5-turbo"})
	if got != " model=gpt-3.5-turbo provider=openai" {
		t.Fatalf("formatFields() = %q", got)
	}
}
