package errors

import (
	"fmt"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusError(t *testing.T) {
	err := New(ErrCodeNotARepository, "not a repo")
	assert.Equal(t, ErrCodeNotARepository, err.Code)
	assert.Equal(t, "not a repo", err.Error())

	cause := fmt.Errorf("underlying error")
	wrapped := Wrap(cause, ErrCodeCommandFailed, "command failed")
	assert.Equal(t, cause, wrapped.Unwrap())
	assert.Equal(t, "command failed: underlying error", wrapped.Error())

	assert.True(t, Is(wrapped, ErrCodeCommandFailed))
	assert.False(t, Is(wrapped, ErrCodeInvalidInput))

	detailed := err.WithDetail("dir", "/tmp").WithDetail("attempt", 2)
	assert.Equal(t, "/tmp", detailed.Details["dir"])
	assert.Equal(t, 2, detailed.Details["attempt"])
}

func TestGetCodeThroughWrapping(t *testing.T) {
	inner := InvalidInput(fmt.Errorf("unexpected EOF"))
	outer := fmt.Errorf("run: %w", inner)

	assert.Equal(t, ErrCodeInvalidInput, GetCode(outer))
	assert.True(t, Is(outer, ErrCodeInvalidInput))
	assert.Equal(t, ErrorCode(""), GetCode(fmt.Errorf("plain")))
	assert.Equal(t, ErrorCode(""), GetCode(nil))
	assert.False(t, Is(nil, ""))
}

func TestErrorConstructors(t *testing.T) {
	err := ConfigNotFound("/etc/statusline.yml")
	assert.Equal(t, ErrCodeConfigNotFound, err.Code)
	assert.Equal(t, "/etc/statusline.yml", err.Details["path"])

	err = TranscriptUnreadable("/x.jsonl", fmt.Errorf("permission denied"))
	assert.Equal(t, ErrCodeTranscriptUnreadable, err.Code)
	assert.Contains(t, err.Error(), "permission denied")

	err = NotARepository("/home/u")
	assert.Equal(t, "/home/u", err.Details["dir"])
}

func TestCommandFailedExitCode(t *testing.T) {
	runErr := exec.Command("sh", "-c", "exit 3").Run()
	if _, ok := runErr.(*exec.ExitError); !ok {
		t.Skip("sh not available")
	}

	err := CommandFailed("sh -c exit 3", runErr)
	require.Equal(t, ErrCodeCommandFailed, err.Code)
	assert.Equal(t, 3, err.Details["exitCode"])
}
