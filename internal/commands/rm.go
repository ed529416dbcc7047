package commands

import (
	"io"

	"github.com/spf13/pflag"
)

func init() {
	Register(&RmCmd{})
	Register(&ClearCmd{})
}

// RmCmd deletes a task.
type RmCmd struct{}

func (c *RmCmd) Name() string                    { return "rm" }
func (c *RmCmd) Aliases() []string               { return []string{"delete"} }
func (c *RmCmd) Synopsis() string                { return "Delete a task" }
func (c *RmCmd) Usage() string                   { return "tally rm <ref>" }
func (c *RmCmd) NeedsWorkspace() bool            { return true }
func (c *RmCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *RmCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveRef(env.Workspace.Store, args, errOut)
	if !ok {
		return code
	}
	env.Workspace.Store.Remove(t.ID)
	return save(env, out, errOut, "Deleted task %s: %s", t.ID, t.Text)
}

// ClearCmd deletes every completed task.
type ClearCmd struct{}

func (c *ClearCmd) Name() string                    { return "clear" }
func (c *ClearCmd) Aliases() []string               { return nil }
func (c *ClearCmd) Synopsis() string                { return "Delete all completed tasks" }
func (c *ClearCmd) Usage() string                   { return "tally clear" }
func (c *ClearCmd) NeedsWorkspace() bool            { return true }
func (c *ClearCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *ClearCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	removed := env.Workspace.Store.ClearCompleted()
	if removed == 0 {
		return save(env, out, errOut, "")
	}
	return save(env, out, errOut, "Cleared %d completed task(s)", removed)
}
