package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/kingrea/tally/internal/commands"
	"github.com/kingrea/tally/internal/exitcode"
)

func TestVersionFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--version"}, &out, &errOut); code != exitcode.Success {
		t.Fatalf("exit code %d", code)
	}
	if out.String() != "tally "+commands.Version+"\n" {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestHelpFlag(t *testing.T) {
	var out, errOut bytes.Buffer
	if code := run([]string{"--help"}, &out, &errOut); code != exitcode.Success {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(out.String(), "Usage:") {
		t.Fatalf("unexpected output %q", out.String())
	}
}

func TestGlobalDirReachesCommand(t *testing.T) {
	dir := t.TempDir()
	var out, errOut bytes.Buffer
	if code := run([]string{"--dir", dir, "add", "-q", "water", "plants"}, &out, &errOut); code != exitcode.Success {
		t.Fatalf("add exit code %d: %s", code, errOut.String())
	}
	out.Reset()
	if code := run([]string{"--dir", dir, "list"}, &out, &errOut); code != exitcode.Success {
		t.Fatalf("list exit code %d: %s", code, errOut.String())
	}
	if !strings.HasPrefix(out.String(), "1. [ ] water plants\n") {
		t.Fatalf("unexpected list output %q", out.String())
	}
}
