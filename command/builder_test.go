package command

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSafeBuilder_Build(t *testing.T) {
	sb := NewSafeBuilder()
	ctx := context.Background()

	t.Run("valid command", func(t *testing.T) {
		cmd, err := sb.Build(ctx, "git", "status", "--porcelain=v2")
		require.NoError(t, err)
		assert.Equal(t, "git", cmd.name)
		assert.Equal(t, []string{"status", "--porcelain=v2"}, cmd.args)
		assert.Equal(t, "git status --porcelain=v2", cmd.String())
	})

	t.Run("empty command name", func(t *testing.T) {
		_, err := sb.Build(ctx, "")
		assert.Error(t, err)
	})

	t.Run("working directory", func(t *testing.T) {
		dir := t.TempDir()
		cmd, err := sb.Build(ctx, "pwd")
		require.NoError(t, err)
		execCmd := cmd.InDir(dir).Exec()
		assert.Equal(t, dir, execCmd.Dir)
	})
}

func TestCommandHonorsContextDeadline(t *testing.T) {
	if _, err := exec.LookPath("sleep"); err != nil {
		t.Skip("sleep not available")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	cmd, err := NewSafeBuilder().Build(ctx, "sleep", "10")
	require.NoError(t, err)

	start := time.Now()
	_, err = cmd.Output()
	duration := time.Since(start)

	assert.Error(t, err)
	assert.Less(t, duration, 2*time.Second)
}

func TestCommandOutputTrims(t *testing.T) {
	if _, err := exec.LookPath("echo"); err != nil {
		t.Skip("echo not available")
	}
	cmd, err := NewSafeBuilder().Build(context.Background(), "echo", "  hello  ")
	require.NoError(t, err)

	out, err := cmd.Output()
	require.NoError(t, err)
	assert.Equal(t, "hello", out)
}

type recordingExecutor struct {
	calls [][]string
}

func (r *recordingExecutor) CommandContext(ctx context.Context, name string, args ...string) *exec.Cmd {
	r.calls = append(r.calls, append([]string{name}, args...))
	return exec.CommandContext(ctx, "true")
}

func TestCustomExecutor(t *testing.T) {
	if _, err := exec.LookPath("true"); err != nil {
		t.Skip("true not available")
	}
	rec := &recordingExecutor{}
	sb := NewSafeBuilderWithExecutor(rec)

	cmd, err := sb.Build(context.Background(), "git", "stash", "list")
	require.NoError(t, err)
	_, err = cmd.Output()
	require.NoError(t, err)

	assert.Equal(t, [][]string{{"git", "stash", "list"}}, rec.calls)
}
