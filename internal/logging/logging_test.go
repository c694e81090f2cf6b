package logging

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestTraceWritesOnlyWhenEnabled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "trace.log")
	Configure(path)
	t.Cleanup(func() {
		SetTraceEnabled(false)
		Configure("")
	})

	SetTraceEnabled(false)
	Trace("selector.open", map[string]interface{}{"id": "skipped"})
	SetTraceEnabled(true)
	Trace("selector.select", map[string]interface{}{"item": "Alpha"})
	Error(errors.New("boom"))
	Sync()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("expected log file, got %v", err)
	}
	out := string(data)
	if strings.Contains(out, "skipped") {
		t.Fatalf("expected disabled trace to be dropped, got:\n%s", out)
	}
	if !strings.Contains(out, `"event":"selector.select"`) || !strings.Contains(out, "Alpha") {
		t.Fatalf("expected trace entry, got:\n%s", out)
	}
	if !strings.Contains(out, "boom") {
		t.Fatalf("expected error entry, got:\n%s", out)
	}
}

func TestErrorIgnoresNil(t *testing.T) {
	path := filepath.Join(t.TempDir(), "error.log")
	Configure(path)
	t.Cleanup(func() { Configure("") })

	Error(nil)
	Sync()
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("expected no log file for nil error, got %v", err)
	}
}
