package logger

import (
	"os"
	"strings"
	"testing"
)

func reset(t *testing.T) *strings.Builder {
	t.Helper()
	var buf strings.Builder
	SetOutput(&buf)
	SetVerbose(false)
	t.Cleanup(func() {
		SetOutput(os.Stderr)
		SetVerbose(false)
	})
	return &buf
}

func TestVerboseGating(t *testing.T) {
	buf := reset(t)

	Debug("hidden %d", 1)
	Info("hidden %d", 2)
	if buf.Len() != 0 {
		t.Fatalf("expected no output without verbose, got %q", buf.String())
	}

	SetVerbose(true)
	if !IsVerbose() {
		t.Fatal("IsVerbose should report true")
	}
	Debug("shown %d", 1)
	Info("shown %d", 2)

	out := buf.String()
	if !strings.Contains(out, "[DEBUG] shown 1") {
		t.Errorf("missing debug line in %q", out)
	}
	if !strings.Contains(out, "[INFO] shown 2") {
		t.Errorf("missing info line in %q", out)
	}
}

func TestWarnAndErrorAlwaysPrint(t *testing.T) {
	buf := reset(t)

	Warn("skipping %s", "a.txt")
	Error("failed: %v", "boom")

	out := buf.String()
	if !strings.Contains(out, "[WARN] skipping a.txt") {
		t.Errorf("missing warn line in %q", out)
	}
	if !strings.Contains(out, "[ERROR] failed: boom") {
		t.Errorf("missing error line in %q", out)
	}
}
