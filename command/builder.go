package command

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// SafeBuilder builds external commands through an injectable Executor.
// Commands carry no deadline of their own: a status line is a single-shot
// process and the tools it calls bound themselves. Cancel the context to stop
// a command early.
type SafeBuilder struct {
	executor Executor
}

// NewSafeBuilder creates a new SafeBuilder instance with a RealExecutor
func NewSafeBuilder() *SafeBuilder {
	return NewSafeBuilderWithExecutor(&RealExecutor{})
}

// NewSafeBuilderWithExecutor creates a new SafeBuilder with a custom Executor
func NewSafeBuilderWithExecutor(exec Executor) *SafeBuilder {
	return &SafeBuilder{executor: exec}
}

// Command represents a safe command configuration
type Command struct {
	ctx      context.Context
	name     string
	args     []string
	dir      string
	executor Executor
}

// Build creates a new command. Arguments are passed to the process as is,
// never through a shell.
func (sb *SafeBuilder) Build(ctx context.Context, name string, args ...string) (*Command, error) {
	if name == "" {
		return nil, fmt.Errorf("command name cannot be empty")
	}
	if ctx == nil {
		ctx = context.Background()
	}

	return &Command{
		ctx:      ctx,
		name:     name,
		args:     args,
		executor: sb.executor,
	}, nil
}

// InDir sets the working directory the command runs in.
func (c *Command) InDir(dir string) *Command {
	c.dir = dir
	return c
}

// String returns the command line for logs and error messages.
func (c *Command) String() string {
	return strings.TrimSpace(c.name + " " + strings.Join(c.args, " "))
}

// Exec creates and returns an exec.Cmd bound to the command's context.
func (c *Command) Exec() *exec.Cmd {
	cmd := c.executor.CommandContext(c.ctx, c.name, c.args...) //nolint:gosec // no shell involved
	if c.dir != "" {
		cmd.Dir = c.dir
	}
	return cmd
}

// Output runs the command and returns its stdout with surrounding whitespace
// trimmed. Stderr is discarded.
func (c *Command) Output() (string, error) {
	cmd := c.Exec()

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	if err := cmd.Run(); err != nil {
		return "", err
	}
	return strings.TrimSpace(stdout.String()), nil
}
