// internal/workspace/workspace.go
//
// A Workspace is everything one tally session needs for a project
// directory: config, the loaded task store, the diagnostic log and the
// activity journal. The TUI and the CLI both start here.

package workspace

import (
	"errors"
	"fmt"
	"time"

	"github.com/kingrea/tally/internal/config"
	"github.com/kingrea/tally/internal/logbook"
	"github.com/kingrea/tally/internal/logging"
	"github.com/kingrea/tally/internal/storage"
	"github.com/kingrea/tally/internal/task"
)

// Option customizes Open for tests and alternate runtimes.
type Option func(*options)

type options struct {
	slots storage.Slots
	clock func() time.Time
}

// WithSlots replaces the file-backed slots.
func WithSlots(slots storage.Slots) Option {
	return func(o *options) {
		if slots != nil {
			o.slots = slots
		}
	}
}

// WithClock overrides the clock the store mints ids from and the journal
// stamps entries with.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		if now != nil {
			o.clock = now
		}
	}
}

// Workspace bundles the per-project state.
type Workspace struct {
	Config  *config.Config
	Store   *task.Store
	Log     *logging.Logger
	Logbook *logbook.Logbook
}

// Open prepares .tally/ under projectDir and loads the task list. A list
// that cannot be read is reset to empty and the failure is logged; it
// never fails Open.
func Open(projectDir string, opts ...Option) (*Workspace, error) {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	if err := config.InitDir(projectDir); err != nil {
		return nil, fmt.Errorf("workspace: init %s: %w", config.Dir, err)
	}
	cfg, err := config.NewConfig(projectDir)
	if err != nil {
		return nil, err
	}
	logger, err := logging.New(cfg.LogsDir())
	if err != nil {
		return nil, err
	}
	book, err := logbook.New(cfg.ActivityLogPath(), logbook.WithClock(o.clock))
	if err != nil {
		logger.Printf("activity journal unavailable: %v", err)
		book = nil
	}
	slots := o.slots
	if slots == nil {
		fileSlots, err := storage.NewFileSlots(cfg.StateDir())
		if err != nil {
			logger.Close()
			return nil, err
		}
		slots = fileSlots
	}
	storeOpts := []task.Option{task.WithKey(cfg.StorageKey())}
	if o.clock != nil {
		storeOpts = append(storeOpts, task.WithClock(o.clock))
	}
	ws := &Workspace{
		Config:  cfg,
		Store:   task.NewStore(slots, storeOpts...),
		Log:     logger,
		Logbook: book,
	}
	ws.load()
	return ws, nil
}

func (w *Workspace) load() {
	err := w.Store.Load()
	switch {
	case err == nil:
	case errors.Is(err, task.ErrCorrupt):
		w.Log.Printf("load %s: %v; starting with an empty list", w.Store.Key(), err)
		w.Logbook.Warn("Stored list was unreadable; starting empty")
	default:
		w.Log.Printf("load %s: %v; starting with an empty list", w.Store.Key(), err)
		w.Logbook.Error("Could not read stored list: %v", err)
	}
}

// Save persists the store and records the change in the journal. The
// error is returned for callers that can report it; the TUI ignores it.
func (w *Workspace) Save(format string, args ...any) error {
	if err := w.Store.Persist(); err != nil {
		w.Log.Printf("persist: %v", err)
		w.Logbook.Error("Could not save list: %v", err)
		return err
	}
	if format != "" {
		w.Logbook.Info(format, args...)
	}
	return nil
}

// Close releases the log file.
func (w *Workspace) Close() error {
	if w == nil {
		return nil
	}
	return w.Log.Close()
}
