package commands

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/exitcode"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd replaces a task's text.
type EditCmd struct{}

func (c *EditCmd) Name() string                    { return "edit" }
func (c *EditCmd) Aliases() []string               { return []string{"mv"} }
func (c *EditCmd) Synopsis() string                { return "Change a task's text" }
func (c *EditCmd) Usage() string                   { return "tally edit <ref> <text...>" }
func (c *EditCmd) NeedsWorkspace() bool            { return true }
func (c *EditCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *EditCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	t, code, ok := resolveRef(env.Workspace.Store, args, errOut)
	if !ok {
		return code
	}
	text := strings.Join(args[1:], " ")
	if !env.Workspace.Store.SetText(t.ID, text) {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	updated, _ := env.Workspace.Store.Get(t.ID)
	return save(env, out, errOut, "Edited task %s: %s", t.ID, updated.Text)
}
