package git

import (
	"os"
	"path/filepath"
	"strings"
)

// worktreeMarker appears in the git dir of every linked worktree.
const worktreeMarker = "/.git/worktrees/"

// isLinkedWorktree reports whether gitDir belongs to a linked worktree.
// gitDir and commonDir are the `rev-parse --git-dir` and
// `--git-common-dir` outputs, resolved against the same directory.
func isLinkedWorktree(gitDir, commonDir string) bool {
	if gitDir == "" {
		return false
	}
	if strings.Contains(filepath.ToSlash(gitDir), worktreeMarker) {
		return true
	}
	if commonDir == "" {
		return false
	}
	gitInfo, err := os.Stat(gitDir)
	if err != nil {
		return false
	}
	commonInfo, err := os.Stat(commonDir)
	if err != nil {
		return false
	}
	return !os.SameFile(gitInfo, commonInfo)
}

// resolveGitPath makes a path printed by rev-parse absolute. rev-parse prints
// paths relative to the directory it ran in.
func resolveGitPath(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}
