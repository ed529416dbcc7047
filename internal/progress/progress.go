// Package progress derives the completed/total indicator from a task list.
package progress

import (
	"fmt"
	"math"

	"github.com/kingrea/tally/internal/task"
)

// Progress is a snapshot of how much of the list is done.
type Progress struct {
	Completed int
	Total     int
}

// Of counts completed tasks.
func Of(tasks []task.Task) Progress {
	p := Progress{Total: len(tasks)}
	for _, t := range tasks {
		if t.Completed {
			p.Completed++
		}
	}
	return p
}

// Counter renders "completed/total", e.g. "1/3" or "0/0".
func (p Progress) Counter() string {
	return fmt.Sprintf("%d/%d", p.Completed, p.Total)
}

// Percent is round(100*completed/total), 0 for an empty list.
func (p Progress) Percent() int {
	if p.Total == 0 {
		return 0
	}
	return int(math.Round(100 * float64(p.Completed) / float64(p.Total)))
}

// Ratio is Percent as a fraction in [0, 1], the form progress bars take.
func (p Progress) Ratio() float64 {
	return float64(p.Percent()) / 100
}
