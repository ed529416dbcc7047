package commands

import (
	"io"

	"github.com/spf13/pflag"
)

func init() {
	Register(&ToggleCmd{})
	Register(&DoneCmd{})
}

// ToggleCmd flips a task between done and not done.
type ToggleCmd struct{}

func (c *ToggleCmd) Name() string                    { return "toggle" }
func (c *ToggleCmd) Aliases() []string               { return nil }
func (c *ToggleCmd) Synopsis() string                { return "Flip a task between done and not done" }
func (c *ToggleCmd) Usage() string                   { return "tally toggle <ref>" }
func (c *ToggleCmd) NeedsWorkspace() bool            { return true }
func (c *ToggleCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ToggleCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveRef(env.Workspace.Store, args, errOut)
	if !ok {
		return code
	}
	env.Workspace.Store.Toggle(t.ID)
	state := "done"
	if t.Completed {
		state = "not done"
	}
	return save(env, out, errOut, "Marked task %s %s", t.ID, state)
}

// DoneCmd marks a task done, or not done with --undo. Unlike toggle it is
// idempotent.
type DoneCmd struct {
	undo bool
}

func (c *DoneCmd) Name() string         { return "done" }
func (c *DoneCmd) Aliases() []string    { return []string{"check"} }
func (c *DoneCmd) Synopsis() string     { return "Mark a task done" }
func (c *DoneCmd) Usage() string        { return "tally done [--undo] <ref>" }
func (c *DoneCmd) NeedsWorkspace() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.undo, "undo", "u", false, "mark the task not done instead")
}

func (c *DoneCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveRef(env.Workspace.Store, args, errOut)
	if !ok {
		return code
	}
	completed := !c.undo
	env.Workspace.Store.SetCompleted(t.ID, completed)
	state := "done"
	if !completed {
		state = "not done"
	}
	if t.Completed == completed {
		return save(env, out, errOut, "")
	}
	return save(env, out, errOut, "Marked task %s %s", t.ID, state)
}
