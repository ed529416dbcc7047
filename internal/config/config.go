// internal/config/config.go
//
// This package handles configuration and the .tally directory structure.
// Every project that keeps a list gets a .tally/ folder created in its root.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/kingrea/tally/internal/storage"
)

const (
	// Dir is the name of the directory we create in each project
	Dir = ".tally"

	// DirEnv overrides the project directory when no flag is given.
	DirEnv = "TALLY_DIR"

	defaultStorageKey    = "tasks"
	defaultTitle         = "tally"
	defaultPlaceholder   = "write your task"
	defaultProgressWidth = 40

	minProgressWidth = 10
	maxProgressWidth = 200
)

const defaultProjectConfigYAML = `# tally project configuration
version: 1

storage:
  # Slot name for the task list; stored as .tally/state/<key>.json
  key: tasks

ui:
  title: tally
  placeholder: write your task
  progress_width: 40
  # Strike through and dim completed tasks
  dim_completed: true
`

// StorageConfig selects the persistence slot.
type StorageConfig struct {
	Key string `yaml:"key"`
}

// UIConfig captures presentation preferences.
type UIConfig struct {
	Title         string `yaml:"title"`
	Placeholder   string `yaml:"placeholder"`
	ProgressWidth int    `yaml:"progress_width"`
	DimCompleted  *bool  `yaml:"dim_completed,omitempty"`
}

// ProjectConfig models .tally/config.yaml.
type ProjectConfig struct {
	Version int           `yaml:"version"`
	Storage StorageConfig `yaml:"storage"`
	UI      UIConfig      `yaml:"ui"`
}

// Config holds the runtime configuration for tally.
type Config struct {
	// ProjectDir is the directory whose list we operate on
	ProjectDir string

	// TallyDir is ProjectDir/.tally
	TallyDir string

	Project ProjectConfig
}

// InitDir creates the .tally directory structure in the given project directory.
//
// Structure created:
// .tally/
// ├── config.yaml
// ├── state/   <- persisted slots (tasks.json)
// └── logs/    <- tally.log diagnostics, activity.log journal
func InitDir(projectDir string) error {
	root := filepath.Join(projectDir, Dir)
	for _, dir := range []string{
		filepath.Join(root, "state"),
		filepath.Join(root, "logs"),
	} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return ensureProjectConfig(filepath.Join(root, "config.yaml"))
}

// ResolveProjectDir picks the project directory: an explicit value, then
// $TALLY_DIR, then the working directory.
func ResolveProjectDir(explicit string) (string, error) {
	dir := strings.TrimSpace(explicit)
	if dir == "" {
		dir = strings.TrimSpace(os.Getenv(DirEnv))
	}
	if dir == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("config: working directory: %w", err)
		}
		dir = cwd
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("config: resolve %s: %w", dir, err)
	}
	return abs, nil
}

// NewConfig creates a new Config instance populated with project settings.
func NewConfig(projectDir string) (*Config, error) {
	cfg := &Config{
		ProjectDir: projectDir,
		TallyDir:   filepath.Join(projectDir, Dir),
		Project:    defaultProjectConfig(),
	}
	if err := cfg.loadProjectConfig(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// StateDir returns the directory holding persisted slots
func (c *Config) StateDir() string {
	return filepath.Join(c.TallyDir, "state")
}

// LogsDir returns the path to the logs directory
func (c *Config) LogsDir() string {
	return filepath.Join(c.TallyDir, "logs")
}

// ActivityLogPath returns the journal file shown in the TUI log panel.
func (c *Config) ActivityLogPath() string {
	return filepath.Join(c.LogsDir(), "activity.log")
}

// ProjectConfigPath returns the on-disk location for the project config file.
func (c *Config) ProjectConfigPath() string {
	return filepath.Join(c.TallyDir, "config.yaml")
}

// StorageKey returns the slot name for the task list.
func (c *Config) StorageKey() string {
	return c.Project.Storage.Key
}

// Title returns the header shown above the list.
func (c *Config) Title() string {
	return c.Project.UI.Title
}

// Placeholder returns the hint shown in an empty new-task input.
func (c *Config) Placeholder() string {
	return c.Project.UI.Placeholder
}

// ProgressWidth returns the progress bar width in cells.
func (c *Config) ProgressWidth() int {
	return c.Project.UI.ProgressWidth
}

// DimCompleted reports whether completed rows are struck through and dimmed.
func (c *Config) DimCompleted() bool {
	if c.Project.UI.DimCompleted == nil {
		return true
	}
	return *c.Project.UI.DimCompleted
}

func (c *Config) loadProjectConfig() error {
	path := c.ProjectConfigPath()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("config: read %s: %w", path, err)
	}

	var parsed ProjectConfig
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return fmt.Errorf("config: parse %s: %w", path, err)
	}

	parsed.applyDefaults()
	parsed.normalize()
	if err := parsed.validate(); err != nil {
		return fmt.Errorf("config: %w", err)
	}

	c.Project = parsed
	return nil
}

func defaultProjectConfig() ProjectConfig {
	pc := ProjectConfig{}
	pc.applyDefaults()
	return pc
}

func (pc *ProjectConfig) applyDefaults() {
	if pc.Version == 0 {
		pc.Version = 1
	}
	if strings.TrimSpace(pc.Storage.Key) == "" {
		pc.Storage.Key = defaultStorageKey
	}
	if strings.TrimSpace(pc.UI.Title) == "" {
		pc.UI.Title = defaultTitle
	}
	if pc.UI.Placeholder == "" {
		pc.UI.Placeholder = defaultPlaceholder
	}
	if pc.UI.ProgressWidth == 0 {
		pc.UI.ProgressWidth = defaultProgressWidth
	}
}

func (pc *ProjectConfig) normalize() {
	pc.Storage.Key = strings.TrimSpace(pc.Storage.Key)
	pc.UI.Title = strings.TrimSpace(pc.UI.Title)
}

func (pc *ProjectConfig) validate() error {
	if pc.Version < 1 {
		return fmt.Errorf("config version must be >= 1")
	}
	if err := storage.ValidateKey(pc.Storage.Key); err != nil {
		return fmt.Errorf("storage.key: %w", err)
	}
	if w := pc.UI.ProgressWidth; w < minProgressWidth || w > maxProgressWidth {
		return fmt.Errorf("ui.progress_width must be between %d and %d", minProgressWidth, maxProgressWidth)
	}
	return nil
}

func ensureProjectConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return os.WriteFile(path, []byte(defaultProjectConfigYAML), 0o644)
}
