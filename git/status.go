package git

import (
	"strconv"
	"strings"
)

// StatusInfo is the parsed output of `git status --porcelain=v2 --branch`.
type StatusInfo struct {
	Branch   string
	Detached bool
	Ahead    int
	Behind   int

	Added     int
	Modified  int
	Deleted   int
	Renamed   int
	Untracked int
}

const detachedHead = "(detached)"

// parsePorcelainV2 parses porcelain v2 output. Unknown or malformed lines are
// skipped; every file is counted once.
func parsePorcelainV2(output string) *StatusInfo {
	status := &StatusInfo{}

	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimRight(line, "\r")
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "# ") {
			parseBranchHeader(status, strings.Fields(line))
			continue
		}

		parts := strings.Fields(line)
		switch parts[0] {
		case "?":
			status.Untracked++
		case "1":
			if len(parts) < 2 || len(parts[1]) != 2 {
				continue
			}
			classifyChange(status, parts[1])
		case "2":
			if len(parts) < 2 || len(parts[1]) != 2 {
				continue
			}
			status.Renamed++
		case "u":
			status.Modified++
		}
	}

	return status
}

func parseBranchHeader(status *StatusInfo, parts []string) {
	if len(parts) < 3 {
		return
	}
	switch parts[1] {
	case "branch.head":
		if parts[2] == detachedHead {
			status.Detached = true
			return
		}
		status.Branch = parts[2]
	case "branch.ab":
		// # branch.ab +<ahead> -<behind>
		if n, err := strconv.Atoi(strings.TrimPrefix(parts[2], "+")); err == nil {
			status.Ahead = n
		}
		if len(parts) > 3 {
			if n, err := strconv.Atoi(strings.TrimPrefix(parts[3], "-")); err == nil {
				status.Behind = n
			}
		}
	}
}

// classifyChange counts an ordinary changed entry by its XY code. Either the
// index or the worktree column may carry the change.
func classifyChange(status *StatusInfo, xy string) {
	switch {
	case strings.ContainsRune(xy, 'A'):
		status.Added++
	case strings.ContainsRune(xy, 'D'):
		status.Deleted++
	case strings.ContainsAny(xy, "RC"):
		status.Renamed++
	case strings.ContainsAny(xy, "MT"):
		status.Modified++
	}
}
