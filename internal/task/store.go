// internal/task/store.go
//
// Store owns the ordered task list. Every mutation happens on the caller's
// goroutine and is followed by an explicit Persist from the caller, so the
// list on disk always matches the list the UI last rendered.

package task

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kingrea/tally/internal/storage"
)

// DefaultKey is the slot that holds the serialized list.
const DefaultKey = "tasks"

// ErrCorrupt wraps decode failures. Load has already reset the list to
// empty when it returns this.
var ErrCorrupt = errors.New("task: persisted list is corrupt")

// Task is one to-do entry.
type Task struct {
	ID        string `json:"id"`
	Text      string `json:"text"`
	Completed bool   `json:"completed"`
}

// Option customizes a Store.
type Option func(*Store)

// WithClock overrides the time source used to mint ids.
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		if now != nil {
			s.now = now
		}
	}
}

// WithKey stores the list under a different slot name.
func WithKey(key string) Option {
	return func(s *Store) {
		if key = strings.TrimSpace(key); key != "" {
			s.key = key
		}
	}
}

// Store is the in-memory task list plus its persistence slot.
type Store struct {
	slots storage.Slots
	key   string
	now   func() time.Time
	tasks []Task
}

// NewStore returns an empty store bound to slots. Call Load to read the
// persisted list.
func NewStore(slots storage.Slots, opts ...Option) *Store {
	s := &Store{
		slots: slots,
		key:   DefaultKey,
		now:   time.Now,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

// Key returns the slot name.
func (s *Store) Key() string {
	return s.key
}

// Load replaces the in-memory list with the persisted one. A missing slot
// yields an empty list and no error. Unreadable or undecodable data also
// yields an empty list; the returned error is diagnostic only.
func (s *Store) Load() error {
	s.tasks = nil
	data, err := s.slots.Get(s.key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil
		}
		return fmt.Errorf("task: load %s: %w", s.key, err)
	}
	if strings.TrimSpace(string(data)) == "" {
		return nil
	}
	var decoded []Task
	if err := json.Unmarshal(data, &decoded); err != nil {
		return fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	s.tasks = sanitize(decoded)
	return nil
}

// Persist writes the current list to the slot.
func (s *Store) Persist() error {
	list := s.tasks
	if list == nil {
		list = []Task{}
	}
	data, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("task: encode: %w", err)
	}
	if err := s.slots.Set(s.key, data); err != nil {
		return fmt.Errorf("task: persist %s: %w", s.key, err)
	}
	return nil
}

// Add appends a new incomplete task. Blank text is rejected.
func (s *Store) Add(text string) (Task, bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Task{}, false
	}
	t := Task{ID: s.nextID(), Text: text}
	s.tasks = append(s.tasks, t)
	return t, true
}

// Toggle flips the completion flag of the task with id.
func (s *Store) Toggle(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.tasks[idx].Completed = !s.tasks[idx].Completed
	return true
}

// SetCompleted sets the completion flag explicitly.
func (s *Store) SetCompleted(id string, completed bool) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.tasks[idx].Completed = completed
	return true
}

// SetText replaces a task's text. Blank text leaves the task unchanged and
// reports false.
func (s *Store) SetText(id, text string) bool {
	text = strings.TrimSpace(text)
	if text == "" {
		return false
	}
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.tasks[idx].Text = text
	return true
}

// Remove deletes the task with id, keeping the order of the rest.
func (s *Store) Remove(id string) bool {
	idx := s.index(id)
	if idx < 0 {
		return false
	}
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	return true
}

// ClearCompleted removes every completed task and returns how many went.
func (s *Store) ClearCompleted() int {
	kept := s.tasks[:0]
	removed := 0
	for _, t := range s.tasks {
		if t.Completed {
			removed++
			continue
		}
		kept = append(kept, t)
	}
	s.tasks = kept
	return removed
}

// Tasks returns a copy of the list in order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Get looks a task up by id.
func (s *Store) Get(id string) (Task, bool) {
	idx := s.index(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// At returns the task at a zero-based position.
func (s *Store) At(pos int) (Task, bool) {
	if pos < 0 || pos >= len(s.tasks) {
		return Task{}, false
	}
	return s.tasks[pos], true
}

// Resolve accepts either a task id or a 1-based position. An exact id match
// wins over a position.
func (s *Store) Resolve(ref string) (Task, bool) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return Task{}, false
	}
	if t, ok := s.Get(ref); ok {
		return t, true
	}
	n, err := strconv.Atoi(ref)
	if err != nil {
		return Task{}, false
	}
	return s.At(n - 1)
}

func (s *Store) index(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}

// nextID mints an id from the clock in milliseconds, bumping past any id
// already in the list.
func (s *Store) nextID() string {
	n := s.now().UnixMilli()
	for {
		id := strconv.FormatInt(n, 10)
		if s.index(id) < 0 {
			return id
		}
		n++
	}
}

// sanitize drops records that would break the list invariants: missing id,
// blank text, or an id seen earlier in the list.
func sanitize(in []Task) []Task {
	out := make([]Task, 0, len(in))
	seen := make(map[string]struct{}, len(in))
	for _, t := range in {
		t.ID = strings.TrimSpace(t.ID)
		t.Text = strings.TrimSpace(t.Text)
		if t.ID == "" || t.Text == "" {
			continue
		}
		if _, dup := seen[t.ID]; dup {
			continue
		}
		seen[t.ID] = struct{}{}
		out = append(out, t)
	}
	return out
}
