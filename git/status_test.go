package git

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParsePorcelainV2(t *testing.T) {
	output := `# branch.oid 1234567890abcdef1234567890abcdef12345678
# branch.head feature/login
# branch.upstream origin/feature/login
# branch.ab +3 -1
1 .M N... 100644 100644 100644 aaa bbb src/main.go
1 M. N... 100644 100644 100644 aaa bbb src/util.go
1 A. N... 000000 100644 100644 000 bbb src/new.go
1 .D N... 100644 100644 000000 aaa 000 old.go
1 .T N... 100644 120000 120000 aaa bbb link
2 R. N... 100644 100644 100644 aaa bbb R100 renamed.go	orig.go
u UU N... 100644 100644 100644 100644 aaa bbb ccc conflict.go
? notes.txt
? tmp/
garbage line
1 broken`

	status := parsePorcelainV2(output)

	assert.Equal(t, "feature/login", status.Branch)
	assert.False(t, status.Detached)
	assert.Equal(t, 3, status.Ahead)
	assert.Equal(t, 1, status.Behind)
	assert.Equal(t, 1, status.Added)
	assert.Equal(t, 4, status.Modified, "two M, one T and one unmerged")
	assert.Equal(t, 1, status.Deleted)
	assert.Equal(t, 1, status.Renamed)
	assert.Equal(t, 2, status.Untracked)
}

func TestParsePorcelainV2Detached(t *testing.T) {
	status := parsePorcelainV2("# branch.oid abc\n# branch.head (detached)\n")

	assert.True(t, status.Detached)
	assert.Empty(t, status.Branch)
}

func TestParsePorcelainV2Empty(t *testing.T) {
	assert.Equal(t, &StatusInfo{}, parsePorcelainV2(""))
}

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name        string
		output      string
		wantAdded   int
		wantDeleted int
	}{
		{"empty", "", 0, 0},
		{"single file", "10\t2\tmain.go", 10, 2},
		{"multiple files", "10\t2\tmain.go\n3\t7\tutil.go\n", 13, 9},
		{"binary skipped", "-\t-\timage.png\n4\t0\tREADME.md", 4, 0},
		{"garbage skipped", "nonsense\nx\ty\tz\n1\t1\tok.go", 1, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			added, deleted := parseNumstat(tt.output)
			assert.Equal(t, tt.wantAdded, added)
			assert.Equal(t, tt.wantDeleted, deleted)
		})
	}
}

func TestIsLinkedWorktree(t *testing.T) {
	assert.True(t, isLinkedWorktree("/repo/.git/worktrees/feature", "/repo/.git"))
	assert.False(t, isLinkedWorktree("", ""))
	assert.False(t, isLinkedWorktree("/repo/.git", ""))

	root := t.TempDir()
	common := filepath.Join(root, "repo", ".git")
	separate := filepath.Join(root, "gitdirs", "feature")
	require.NoError(t, os.MkdirAll(common, 0755))
	require.NoError(t, os.MkdirAll(separate, 0755))

	assert.False(t, isLinkedWorktree(common, common))
	assert.False(t, isLinkedWorktree(common, common+"/"))
	assert.True(t, isLinkedWorktree(separate, common))
	assert.False(t, isLinkedWorktree(filepath.Join(root, "missing"), common))
}

func TestResolveGitPath(t *testing.T) {
	assert.Equal(t, "/repo/.git", resolveGitPath("/repo", ".git"))
	assert.Equal(t, "/abs/.git", resolveGitPath("/repo", "/abs/.git"))
	assert.Equal(t, "", resolveGitPath("/repo", ""))
}

func TestStateHelpers(t *testing.T) {
	s := State{LinesAdded: 3, LinesDeleted: 10}
	assert.Equal(t, -7, s.LineDelta())
	assert.False(t, s.IsDirty())

	s.Untracked = 1
	assert.True(t, s.IsDirty())
}
