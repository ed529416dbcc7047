package logbook

import (
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestTailReturnsRecentLinesAndTotal(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "activity.log")
	book, err := New(path)
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	for i := 0; i < 5; i++ {
		book.Info("entry-%d", i)
	}
	lines, total := book.Tail(3)
	if total != 5 {
		t.Fatalf("total lines = %d, want 5", total)
	}
	if len(lines) != 3 {
		t.Fatalf("len(lines) = %d, want 3", len(lines))
	}
	for idx, want := range []string{"entry-2", "entry-3", "entry-4"} {
		if !strings.Contains(lines[idx], want) {
			t.Fatalf("line %d = %q, missing %s", idx, lines[idx], want)
		}
	}
}

func TestLevelsAreRecorded(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "logs", "activity.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Warn("corrupt list reset")
	book.Error("persist failed: %s", "disk full")
	lines, total := book.Tail(10)
	if total != 2 {
		t.Fatalf("total = %d, want 2", total)
	}
	if !strings.Contains(lines[0], "WARN  corrupt list reset") {
		t.Fatalf("unexpected warn line %q", lines[0])
	}
	if !strings.Contains(lines[1], "ERROR persist failed: disk full") {
		t.Fatalf("unexpected error line %q", lines[1])
	}
}

func TestTailOnMissingFile(t *testing.T) {
	book, err := New(filepath.Join(t.TempDir(), "activity.log"))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	lines, total := book.Tail(5)
	if lines != nil || total != 0 {
		t.Fatalf("expected empty tail, got %v (%d)", lines, total)
	}
}

func TestEntriesUseConfiguredClock(t *testing.T) {
	stamp := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
	book, err := New(filepath.Join(t.TempDir(), "activity.log"), WithClock(func() time.Time { return stamp }))
	if err != nil {
		t.Fatalf("new logbook: %v", err)
	}
	book.Info("Added task %s", "1")
	lines, _ := book.Tail(1)
	if len(lines) != 1 || lines[0] != "2024-01-02T03:04:05Z INFO  Added task 1" {
		t.Fatalf("unexpected entry %q", lines)
	}
}
