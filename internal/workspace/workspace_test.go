package workspace

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/tally/internal/storage"
)

func TestOpenCreatesLayoutAndEmptyList(t *testing.T) {
	projectDir := t.TempDir()
	ws, err := Open(projectDir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer ws.Close()
	if ws.Store.Len() != 0 {
		t.Fatalf("expected empty list")
	}
	for _, path := range []string{
		filepath.Join(projectDir, ".tally", "config.yaml"),
		filepath.Join(projectDir, ".tally", "state"),
		filepath.Join(projectDir, ".tally", "logs", "tally.log"),
	} {
		if _, err := os.Stat(path); err != nil {
			t.Fatalf("expected %s: %v", path, err)
		}
	}
}

func TestSavePersistsToStateFileAndJournals(t *testing.T) {
	projectDir := t.TempDir()
	ws, err := Open(projectDir)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	added, _ := ws.Store.Add("buy milk")
	if err := ws.Save("Added %s", added.Text); err != nil {
		t.Fatalf("save: %v", err)
	}
	ws.Close()

	data, err := os.ReadFile(filepath.Join(projectDir, ".tally", "state", "tasks.json"))
	if err != nil {
		t.Fatalf("read state: %v", err)
	}
	if !strings.Contains(string(data), `"text":"buy milk"`) {
		t.Fatalf("unexpected state file %s", data)
	}
	lines, _ := ws.Logbook.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "Added buy milk") {
		t.Fatalf("journal missing entry: %v", lines)
	}

	reopened, err := Open(projectDir)
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	defer reopened.Close()
	if reopened.Store.Len() != 1 {
		t.Fatalf("expected list to reload, got %d", reopened.Store.Len())
	}
}

func TestOpenRecoversFromCorruptState(t *testing.T) {
	projectDir := t.TempDir()
	stateDir := filepath.Join(projectDir, ".tally", "state")
	if err := os.MkdirAll(stateDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(stateDir, "tasks.json"), []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	ws, err := Open(projectDir)
	if err != nil {
		t.Fatalf("open should not fail on corrupt state: %v", err)
	}
	defer ws.Close()
	if ws.Store.Len() != 0 {
		t.Fatalf("expected empty list after corrupt state")
	}
	lines, _ := ws.Logbook.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "WARN") {
		t.Fatalf("expected warning in journal, got %v", lines)
	}
}

type failingSlots struct {
	*storage.MemorySlots
}

func (failingSlots) Set(string, []byte) error { return errors.New("disk full") }

func TestSaveReportsPersistFailure(t *testing.T) {
	ws, err := Open(t.TempDir(), WithSlots(failingSlots{storage.NewMemorySlots()}))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer ws.Close()
	ws.Store.Add("x")
	if err := ws.Save("Added x"); err == nil {
		t.Fatalf("expected persist error")
	}
	lines, _ := ws.Logbook.Tail(1)
	if len(lines) != 1 || !strings.Contains(lines[0], "ERROR") {
		t.Fatalf("expected error in journal, got %v", lines)
	}
}
