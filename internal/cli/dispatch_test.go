package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/kingrea/tally/internal/commands"
	"github.com/kingrea/tally/internal/exitcode"
	"github.com/kingrea/tally/internal/storage"
	"github.com/kingrea/tally/internal/workspace"
)

func run(t *testing.T, d *Dispatcher, args ...string) (string, string, int) {
	t.Helper()
	var out, errOut bytes.Buffer
	code := d.Run(args, &out, &errOut)
	return out.String(), errOut.String(), code
}

func TestUnknownCommand(t *testing.T) {
	d := NewDispatcher(commands.DefaultRegistry, nil)
	_, stderr, code := run(t, d, "frobnicate")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(stderr, "unknown command: frobnicate") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestUnknownFlag(t *testing.T) {
	d := NewDispatcher(commands.DefaultRegistry, nil)
	_, stderr, code := run(t, d, "version", "--bogus")
	if code != exitcode.UserError {
		t.Fatalf("expected user error, got %d", code)
	}
	if !strings.Contains(stderr, "bogus") {
		t.Fatalf("unexpected stderr %q", stderr)
	}
}

func TestCommandsShareOneFileBackedList(t *testing.T) {
	projectDir := t.TempDir()
	d := NewDispatcher(commands.DefaultRegistry, nil)

	if _, stderr, code := run(t, d, "add", "--dir", projectDir, "buy", "milk"); code != exitcode.Success {
		t.Fatalf("add failed: %d %s", code, stderr)
	}
	if _, stderr, code := run(t, d, "add", "-q", "--dir", projectDir, "walk", "dog"); code != exitcode.Success {
		t.Fatalf("add failed: %d %s", code, stderr)
	}
	if _, stderr, code := run(t, d, "done", "--dir", projectDir, "2"); code != exitcode.Success {
		t.Fatalf("done failed: %d %s", code, stderr)
	}
	stdout, _, code := run(t, d, "list", "--dir", projectDir)
	if code != exitcode.Success {
		t.Fatalf("list failed: %d", code)
	}
	want := "1. [ ] buy milk\n2. [x] walk dog\n1/2 done (50%)\n"
	if stdout != want {
		t.Fatalf("list output\nwant %q\ngot  %q", want, stdout)
	}
	if _, err := os.Stat(filepath.Join(projectDir, ".tally", "state", "tasks.json")); err != nil {
		t.Fatalf("expected state file: %v", err)
	}
}

func TestDefaultDirIsUsedWithoutFlag(t *testing.T) {
	var opened string
	d := NewDispatcher(commands.DefaultRegistry, func(dir string) (*workspace.Workspace, error) {
		opened = dir
		return workspace.Open(dir, workspace.WithSlots(storage.NewMemorySlots()))
	})
	projectDir := t.TempDir()
	d.SetDefaultDir(projectDir)
	if _, _, code := run(t, d, "list"); code != exitcode.Success {
		t.Fatalf("list failed: %d", code)
	}
	if opened != projectDir {
		t.Fatalf("opened %q, want %q", opened, projectDir)
	}
}

func TestBrokenConfigIsConfigError(t *testing.T) {
	projectDir := t.TempDir()
	tallyDir := filepath.Join(projectDir, ".tally")
	if err := os.MkdirAll(tallyDir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(tallyDir, "config.yaml"), []byte("version: 0\nui:\n  progress_width: 1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	d := NewDispatcher(commands.DefaultRegistry, nil)
	_, _, code := run(t, d, "list", "--dir", projectDir)
	if code != exitcode.ConfigError {
		t.Fatalf("expected config error, got %d", code)
	}
}

func TestHelpFlagPrintsUsage(t *testing.T) {
	d := NewDispatcher(commands.DefaultRegistry, nil)
	stdout, _, code := run(t, d, "add", "--help")
	if code != exitcode.Success {
		t.Fatalf("expected success, got %d", code)
	}
	if !strings.Contains(stdout, "tally add") {
		t.Fatalf("unexpected usage %q", stdout)
	}
}
