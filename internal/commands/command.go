// Package commands provides the command interface and implementations for
// the non-interactive tally CLI.
package commands

import (
	"io"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/workspace"
)

// Env is what a command runs against.
type Env struct {
	// Workspace is nil for commands whose NeedsWorkspace returns false.
	Workspace *workspace.Workspace
	Quiet     bool
}

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsWorkspace returns true if the command reads or writes the list.
	NeedsWorkspace() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command with positional args and returns the exit code.
	Run(env *Env, args []string, out, errOut io.Writer) int
}
