package git

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/command"
	"github.com/grovetools/statusline/errors"
	"github.com/grovetools/statusline/logging"
)

// Inspector collects the git State of a directory by running git.
type Inspector struct {
	cmdBuilder *command.SafeBuilder
	logger     *logrus.Entry
}

// NewInspector creates an inspector that runs git through cmdBuilder. A nil
// builder uses the real executor.
func NewInspector(cmdBuilder *command.SafeBuilder) *Inspector {
	if cmdBuilder == nil {
		cmdBuilder = command.NewSafeBuilder()
	}
	return &Inspector{
		cmdBuilder: cmdBuilder,
		logger:     logging.NewLogger("git"),
	}
}

// Inspect never fails: a directory outside a repository yields the zero
// State and every git call that fails contributes nothing.
func (i *Inspector) Inspect(ctx context.Context, dir string) State {
	if i.git(ctx, dir, "rev-parse", "--is-inside-work-tree") != "true" {
		i.logger.WithError(errors.NotARepository(dir)).Debug("Skipping git segment")
		return State{}
	}

	state := State{IsRepo: true}

	status := parsePorcelainV2(i.git(ctx, dir, "status", "--porcelain=v2", "--branch"))
	state.Branch = status.Branch
	state.Detached = status.Detached
	if status.Detached {
		state.Branch = i.git(ctx, dir, "rev-parse", "--short", "HEAD")
	}
	state.Ahead, state.Behind = status.Ahead, status.Behind
	state.Added = status.Added
	state.Modified = status.Modified
	state.Deleted = status.Deleted
	state.Renamed = status.Renamed
	state.Untracked = status.Untracked

	paths := strings.Split(i.git(ctx, dir, "rev-parse", "--show-toplevel", "--git-dir", "--git-common-dir"), "\n")
	if len(paths) == 3 {
		state.Root = strings.TrimSpace(paths[0])
		gitDir := resolveGitPath(dir, strings.TrimSpace(paths[1]))
		commonDir := resolveGitPath(dir, strings.TrimSpace(paths[2]))
		if isLinkedWorktree(gitDir, commonDir) {
			state.IsWorktree = true
			state.WorktreeName = filepath.Base(filepath.Clean(dir))
		}
	}

	state.LinesAdded, state.LinesDeleted = i.lineChanges(ctx, dir)
	state.HasStash = i.git(ctx, dir, "stash", "list") != ""
	state.RepoName = repoName(i.git(ctx, dir, "config", "--get", "remote.origin.url"), state.Root)

	i.logger.WithFields(logrus.Fields{
		"dir":      dir,
		"branch":   state.Branch,
		"worktree": state.IsWorktree,
		"dirty":    state.IsDirty(),
	}).Debug("Inspected repository")

	return state
}

// git runs a git subcommand in dir and returns its trimmed stdout, or "" on
// any failure.
func (i *Inspector) git(ctx context.Context, dir string, args ...string) string {
	cmd, err := i.cmdBuilder.Build(ctx, "git", args...)
	if err != nil {
		i.logger.WithError(err).Debug("Failed to build git command")
		return ""
	}
	out, err := cmd.InDir(dir).Output()
	if err != nil {
		i.logger.WithError(errors.CommandFailed(cmd.String(), err)).Debug("git command failed")
		return ""
	}
	return out
}
