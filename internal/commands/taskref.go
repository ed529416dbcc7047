package commands

import (
	"fmt"
	"io"

	"github.com/kingrea/tally/internal/exitcode"
	"github.com/kingrea/tally/internal/task"
)

// resolveRef looks up a task by id or 1-based position and reports a user
// error when it is missing. ok is false when the caller should return code.
func resolveRef(store *task.Store, args []string, errOut io.Writer) (t task.Task, code int, ok bool) {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return task.Task{}, exitcode.UserError, false
	}
	t, found := store.Resolve(args[0])
	if !found {
		fmt.Fprintf(errOut, "error: task not found: %s\n", args[0])
		return task.Task{}, exitcode.UserError, false
	}
	return t, exitcode.Success, true
}

// save persists the store and maps a failure to an exit code.
func save(env *Env, out, errOut io.Writer, format string, args ...any) int {
	if err := env.Workspace.Save(format, args...); err != nil {
		fmt.Fprintf(errOut, "error: storage error: %v\n", err)
		return exitcode.StorageError
	}
	if !env.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
