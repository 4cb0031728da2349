package git

// State is everything the status line shows about a repository. The zero
// value means "not a repository".
type State struct {
	IsRepo bool `yaml:"is_repo" json:"is_repo"`

	// Branch is the checked out branch, or the short commit hash when HEAD
	// is detached.
	Branch   string `yaml:"branch" json:"branch"`
	Detached bool   `yaml:"detached" json:"detached"`

	// Root is the top-level directory of the working tree.
	Root     string `yaml:"root" json:"root"`
	RepoName string `yaml:"repo_name" json:"repo_name"`

	IsWorktree bool `yaml:"is_worktree" json:"is_worktree"`
	// WorktreeName is the base name of the inspected directory, set only
	// inside a linked worktree.
	WorktreeName string `yaml:"worktree_name,omitempty" json:"worktree_name,omitempty"`

	Ahead  int `yaml:"ahead" json:"ahead"`
	Behind int `yaml:"behind" json:"behind"`

	Added     int `yaml:"added" json:"added"`
	Modified  int `yaml:"modified" json:"modified"`
	Deleted   int `yaml:"deleted" json:"deleted"`
	Renamed   int `yaml:"renamed" json:"renamed"`
	Untracked int `yaml:"untracked" json:"untracked"`

	LinesAdded   int `yaml:"lines_added" json:"lines_added"`
	LinesDeleted int `yaml:"lines_deleted" json:"lines_deleted"`

	HasStash bool `yaml:"has_stash" json:"has_stash"`
}

// LineDelta is insertions minus deletions across staged and unstaged changes.
func (s State) LineDelta() int {
	return s.LinesAdded - s.LinesDeleted
}

// IsDirty reports whether the working tree has any changes.
func (s State) IsDirty() bool {
	return s.Added+s.Modified+s.Deleted+s.Renamed+s.Untracked > 0
}
