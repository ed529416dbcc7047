package logging

import (
	"os"
	"strings"
	"testing"
)

func TestPrintfAppendsTimestampedLines(t *testing.T) {
	logger, err := New(t.TempDir())
	if err != nil {
		t.Fatalf("new logger: %v", err)
	}
	logger.Printf("load tasks: %s\n", "corrupt")
	logger.Printf("persist ok")
	if err := logger.Close(); err != nil {
		t.Fatalf("close: %v", err)
	}
	data, err := os.ReadFile(logger.Path())
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), data)
	}
	if !strings.HasPrefix(lines[0], "[") || !strings.HasSuffix(lines[0], "] load tasks: corrupt") {
		t.Fatalf("unexpected first line %q", lines[0])
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var logger *Logger
	logger.Printf("ignored")
	if err := logger.Close(); err != nil {
		t.Fatalf("close on nil logger: %v", err)
	}
	if logger.Path() != "" {
		t.Fatalf("nil logger should have no path")
	}
}
