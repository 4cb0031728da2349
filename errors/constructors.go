package errors

import (
	"fmt"
	"os/exec"
)

// InvalidInput reports a status payload that could not be decoded.
func InvalidInput(err error) *StatusError {
	return Wrap(err, ErrCodeInvalidInput, "invalid status input")
}

// ConfigNotFound creates a configuration not found error
func ConfigNotFound(path string) *StatusError {
	return New(ErrCodeConfigNotFound, fmt.Sprintf("configuration file not found: %s", path)).
		WithDetail("path", path)
}

// ConfigInvalid creates an invalid configuration error
func ConfigInvalid(path string, err error) *StatusError {
	return Wrap(err, ErrCodeConfigInvalid, fmt.Sprintf("invalid configuration: %s", path)).
		WithDetail("path", path)
}

// CommandFailed creates a command execution failure error
func CommandFailed(cmd string, err error) *StatusError {
	statusErr := Wrap(err, ErrCodeCommandFailed, fmt.Sprintf("command failed: %s", cmd)).
		WithDetail("command", cmd)

	if exitErr, ok := err.(*exec.ExitError); ok {
		statusErr = statusErr.WithDetail("exitCode", exitErr.ExitCode())
	}

	return statusErr
}

// NotARepository reports a directory outside any git working tree.
func NotARepository(dir string) *StatusError {
	return New(ErrCodeNotARepository, fmt.Sprintf("not a git repository: %s", dir)).
		WithDetail("dir", dir)
}

// TranscriptUnreadable reports a transcript that could not be opened or scanned.
func TranscriptUnreadable(path string, err error) *StatusError {
	return Wrap(err, ErrCodeTranscriptUnreadable, fmt.Sprintf("cannot read transcript: %s", path)).
		WithDetail("path", path)
}

// CacheUnavailable reports a session cache that cannot be used.
func CacheUnavailable(reason string) *StatusError {
	return New(ErrCodeCacheUnavailable, fmt.Sprintf("session cache unavailable: %s", reason))
}
