package commands

import (
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"github.com/kingrea/tally/internal/exitcode"
	"github.com/kingrea/tally/internal/progress"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd prints the list in order with its progress line.
type ListCmd struct {
	pending bool
}

func (c *ListCmd) Name() string         { return "list" }
func (c *ListCmd) Aliases() []string    { return []string{"ls"} }
func (c *ListCmd) Synopsis() string     { return "List tasks" }
func (c *ListCmd) Usage() string        { return "tally list [--pending]" }
func (c *ListCmd) NeedsWorkspace() bool { return true }

func (c *ListCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVarP(&c.pending, "pending", "p", false, "only show tasks that are not done")
}

func (c *ListCmd) Run(env *Env, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	tasks := env.Workspace.Store.Tasks()
	if len(tasks) == 0 {
		if !env.Quiet {
			fmt.Fprintln(out, "no tasks")
		}
		return exitcode.Success
	}
	// Positions stay those of the full list so they can be passed to
	// done/edit/rm even when filtered.
	for i, t := range tasks {
		if c.pending && t.Completed {
			continue
		}
		FormatTask(out, i+1, t)
	}
	FormatProgress(out, progress.Of(tasks))
	return exitcode.Success
}
