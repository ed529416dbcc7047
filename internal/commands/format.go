package commands

import (
	"fmt"
	"io"

	"github.com/kingrea/tally/internal/progress"
	"github.com/kingrea/tally/internal/task"
)

// FormatTask writes one task line: "<n>. [x] text".
func FormatTask(w io.Writer, pos int, t task.Task) {
	box := "[ ]"
	if t.Completed {
		box = "[x]"
	}
	fmt.Fprintf(w, "%d. %s %s\n", pos, box, t.Text)
}

// FormatProgress writes the summary line: "1/3 done (33%)".
func FormatProgress(w io.Writer, p progress.Progress) {
	fmt.Fprintf(w, "%s done (%d%%)\n", p.Counter(), p.Percent())
}
