package git

import (
	"context"
	"strconv"
	"strings"
)

// lineChanges sums insertions and deletions of unstaged and staged changes.
func (i *Inspector) lineChanges(ctx context.Context, dir string) (added, deleted int) {
	unstagedAdded, unstagedDeleted := parseNumstat(i.git(ctx, dir, "diff", "--numstat"))
	stagedAdded, stagedDeleted := parseNumstat(i.git(ctx, dir, "diff", "--cached", "--numstat"))
	return unstagedAdded + stagedAdded, unstagedDeleted + stagedDeleted
}

// parseNumstat sums `git diff --numstat` output. Binary files report "-" and
// are skipped.
func parseNumstat(output string) (added, deleted int) {
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		if fields[0] != "-" {
			if a, err := strconv.Atoi(fields[0]); err == nil {
				added += a
			}
		}
		if fields[1] != "-" {
			if d, err := strconv.Atoi(fields[1]); err == nil {
				deleted += d
			}
		}
	}
	return added, deleted
}
