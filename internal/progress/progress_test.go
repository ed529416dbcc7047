package progress

import (
	"testing"

	"github.com/kingrea/tally/internal/task"
)

func TestOfOneInThree(t *testing.T) {
	p := Of([]task.Task{
		{ID: "1", Text: "a", Completed: true},
		{ID: "2", Text: "b"},
		{ID: "3", Text: "c"},
	})
	if got := p.Counter(); got != "1/3" {
		t.Fatalf("counter = %q, want 1/3", got)
	}
	if got := p.Percent(); got != 33 {
		t.Fatalf("percent = %d, want 33", got)
	}
}

func TestOfEmptyList(t *testing.T) {
	p := Of(nil)
	if got := p.Counter(); got != "0/0" {
		t.Fatalf("counter = %q, want 0/0", got)
	}
	if got := p.Percent(); got != 0 {
		t.Fatalf("percent = %d, want 0", got)
	}
	if got := p.Ratio(); got != 0 {
		t.Fatalf("ratio = %v, want 0", got)
	}
}

func TestPercentRoundsHalfUp(t *testing.T) {
	p := Progress{Completed: 2, Total: 3}
	if got := p.Percent(); got != 67 {
		t.Fatalf("percent = %d, want 67", got)
	}
	p = Progress{Completed: 1, Total: 8}
	if got := p.Percent(); got != 13 {
		t.Fatalf("percent = %d, want 13", got)
	}
	p = Progress{Completed: 4, Total: 4}
	if got := p.Ratio(); got != 1 {
		t.Fatalf("ratio = %v, want 1", got)
	}
}
