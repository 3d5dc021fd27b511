package cli

// Exit codes of a run.
const (
	// ExitOK means no diagnostic failed the run.
	ExitOK = 0
	// ExitFailed means an error diagnostic was found, or a warning with
	// warningsAsErrors set.
	ExitFailed = 1
	// ExitFatal means the run stopped before the rules ran: unreadable
	// input, a malformed document or an invalid config.
	ExitFatal = 2
)

// CommandError signals a command failure with a specific exit code.
// Commands return this after handling all output (printing errors/warnings to stderr).
// Main centralizes exit handling instead of commands calling os.Exit directly.
type CommandError struct {
	exitCode int
}

// NewCommandError creates a new CommandError with the given exit code.
func NewCommandError(exitCode int) *CommandError {
	return &CommandError{exitCode: exitCode}
}

// Error implements the error interface.
func (e *CommandError) Error() string {
	return "command failed"
}

// ExitCode returns the exit code associated with this error.
func (e *CommandError) ExitCode() int {
	return e.exitCode
}
