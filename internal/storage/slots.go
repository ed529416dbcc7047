// internal/storage/slots.go
//
// Slots is the persistence surface for tally: a flat key-value store where
// each key names one slot and each value is an opaque blob. The task store
// keeps its whole list in a single slot ("tasks").

package storage

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// ErrNotFound is returned by Get when the slot has never been written.
var ErrNotFound = errors.New("storage: slot not found")

// Slots reads and writes named values synchronously.
type Slots interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
	Delete(key string) error
}

// FileSlots stores each slot as <dir>/<key>.json.
type FileSlots struct {
	dir string
}

// NewFileSlots creates the backing directory when needed.
func NewFileSlots(dir string) (*FileSlots, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, fmt.Errorf("storage: directory is required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: ensure dir: %w", err)
	}
	return &FileSlots{dir: dir}, nil
}

// Dir returns the directory holding the slot files.
func (s *FileSlots) Dir() string {
	return s.dir
}

// Path returns the file that backs key.
func (s *FileSlots) Path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileSlots) Get(key string) ([]byte, error) {
	if err := ValidateKey(key); err != nil {
		return nil, err
	}
	data, err := os.ReadFile(s.Path(key))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("storage: read %s: %w", key, err)
	}
	return data, nil
}

// Set replaces the slot contents. The value lands in a temp file first and
// is renamed into place so a crash never leaves a half-written slot.
func (s *FileSlots) Set(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	tmp, err := os.CreateTemp(s.dir, "."+key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("storage: create temp for %s: %w", key, err)
	}
	tmpPath := tmp.Name()
	if _, err := tmp.Write(value); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("storage: write %s: %w", key, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: close %s: %w", key, err)
	}
	if err := os.Rename(tmpPath, s.Path(key)); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storage: commit %s: %w", key, err)
	}
	return nil
}

func (s *FileSlots) Delete(key string) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	if err := os.Remove(s.Path(key)); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("storage: delete %s: %w", key, err)
	}
	return nil
}

// MemorySlots keeps slots in a map. Values are copied in and out so callers
// cannot mutate stored bytes.
type MemorySlots struct {
	mu     sync.Mutex
	values map[string][]byte
}

// NewMemorySlots returns an empty in-memory store.
func NewMemorySlots() *MemorySlots {
	return &MemorySlots{values: map[string][]byte{}}
}

func (m *MemorySlots) Get(key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return nil, ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

func (m *MemorySlots) Set(key string, value []byte) error {
	if err := ValidateKey(key); err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = append([]byte(nil), value...)
	return nil
}

func (m *MemorySlots) Delete(key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}

// ValidateKey rejects keys that cannot be used as a plain file name.
func ValidateKey(key string) error {
	trimmed := strings.TrimSpace(key)
	if trimmed == "" {
		return fmt.Errorf("storage: key is required")
	}
	if trimmed != key {
		return fmt.Errorf("storage: key %q has surrounding whitespace", key)
	}
	if strings.ContainsAny(key, `/\`) || key == "." || key == ".." || strings.HasPrefix(key, ".") {
		return fmt.Errorf("storage: key %q must be a plain name", key)
	}
	return nil
}
