package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestFileSlotsMissingKeyReturnsNotFound(t *testing.T) {
	slots, err := NewFileSlots(filepath.Join(t.TempDir(), "state"))
	if err != nil {
		t.Fatalf("new slots: %v", err)
	}
	if _, err := slots.Get("tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestFileSlotsSetThenGet(t *testing.T) {
	dir := t.TempDir()
	slots, err := NewFileSlots(dir)
	if err != nil {
		t.Fatalf("new slots: %v", err)
	}
	if err := slots.Set("tasks", []byte(`[{"id":"1"}]`)); err != nil {
		t.Fatalf("set: %v", err)
	}
	got, err := slots.Get("tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != `[{"id":"1"}]` {
		t.Fatalf("got %s", got)
	}
	if _, err := os.Stat(filepath.Join(dir, "tasks.json")); err != nil {
		t.Fatalf("expected tasks.json on disk: %v", err)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("read dir: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected temp files to be cleaned up, found %d entries", len(entries))
	}
}

func TestFileSlotsDeleteIsIdempotent(t *testing.T) {
	slots, err := NewFileSlots(t.TempDir())
	if err != nil {
		t.Fatalf("new slots: %v", err)
	}
	if err := slots.Set("tasks", []byte("[]")); err != nil {
		t.Fatalf("set: %v", err)
	}
	if err := slots.Delete("tasks"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := slots.Delete("tasks"); err != nil {
		t.Fatalf("second delete: %v", err)
	}
	if _, err := slots.Get("tasks"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestValidateKeyRejectsPaths(t *testing.T) {
	for _, key := range []string{"", " tasks", "../tasks", "a/b", `a\b`, ".hidden"} {
		if err := ValidateKey(key); err == nil {
			t.Fatalf("expected %q to be rejected", key)
		}
	}
	if err := ValidateKey("tasks"); err != nil {
		t.Fatalf("tasks should be valid: %v", err)
	}
}

func TestMemorySlotsCopiesValues(t *testing.T) {
	slots := NewMemorySlots()
	value := []byte("abc")
	if err := slots.Set("tasks", value); err != nil {
		t.Fatalf("set: %v", err)
	}
	value[0] = 'z'
	got, err := slots.Get("tasks")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if string(got) != "abc" {
		t.Fatalf("stored value was mutated: %s", got)
	}
}
