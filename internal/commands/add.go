package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/exitcode"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd appends a task.
type AddCmd struct{}

func (c *AddCmd) Name() string                    { return "add" }
func (c *AddCmd) Aliases() []string               { return []string{"new"} }
func (c *AddCmd) Synopsis() string                { return "Add a task" }
func (c *AddCmd) Usage() string                   { return "tally add <text...>" }
func (c *AddCmd) NeedsWorkspace() bool            { return true }
func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *AddCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	added, ok := env.Workspace.Store.Add(strings.Join(args, " "))
	if !ok {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	return save(env, out, errOut, "Added task %s: %s", added.ID, added.Text)
}
