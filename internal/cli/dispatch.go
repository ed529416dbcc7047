package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/commands"
	"github.com/kingrea/tally/internal/config"
	"github.com/kingrea/tally/internal/exitcode"
	"github.com/kingrea/tally/internal/workspace"
)

// WorkspaceOpener opens the workspace for a resolved project directory.
// Tests swap it to use in-memory slots.
type WorkspaceOpener func(projectDir string) (*workspace.Workspace, error)

// Dispatcher handles command-line parsing and dispatch.
type Dispatcher struct {
	registry   *commands.Registry
	open       WorkspaceOpener
	defaultDir string
}

// NewDispatcher creates a dispatcher. A nil opener uses workspace.Open.
func NewDispatcher(registry *commands.Registry, open WorkspaceOpener) *Dispatcher {
	if open == nil {
		open = func(dir string) (*workspace.Workspace, error) { return workspace.Open(dir) }
	}
	return &Dispatcher{registry: registry, open: open}
}

// SetDefaultDir sets the project directory used when a command gets no --dir.
func (d *Dispatcher) SetDefaultDir(dir string) {
	d.defaultDir = dir
}

// Run looks up args[0] and runs it with the remaining args. Returns the
// exit code.
func (d *Dispatcher) Run(args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: command required (see: tally help)")
		return exitcode.UserError
	}
	name := args[0]
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	return d.dispatchCommand(cmd, args[1:], out, errOut)
}

func (d *Dispatcher) dispatchCommand(cmd commands.Command, args []string, out, errOut io.Writer) int {
	fs := pflag.NewFlagSet(cmd.Name(), pflag.ContinueOnError)
	fs.SetOutput(io.Discard)

	// Common flags
	var dir string
	var quiet bool
	fs.StringVar(&dir, "dir", "", "")
	fs.BoolVarP(&quiet, "quiet", "q", false, "")

	cmd.RegisterFlags(fs)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			fmt.Fprintf(out, "Usage: %s\n", cmd.Usage())
			return exitcode.Success
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	env := &commands.Env{Quiet: quiet}
	if cmd.NeedsWorkspace() {
		if dir == "" {
			dir = d.defaultDir
		}
		projectDir, err := config.ResolveProjectDir(dir)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		ws, err := d.open(projectDir)
		if err != nil {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.ConfigError
		}
		defer ws.Close()
		env.Workspace = ws
	}
	return cmd.Run(env, fs.Args(), out, errOut)
}
