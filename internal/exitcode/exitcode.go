// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, unknown task).
	UserError = 1

	// ConfigError indicates the project config or .tally directory is unusable.
	ConfigError = 2

	// StorageError indicates the task list could not be saved.
	StorageError = 3

	// UIError indicates the interactive list could not run on this terminal.
	UIError = 4
)
