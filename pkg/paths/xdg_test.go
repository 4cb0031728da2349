package paths

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPortableRootWins(t *testing.T) {
	root := t.TempDir()
	t.Setenv("STATUSLINE_HOME", root)
	t.Setenv("XDG_CONFIG_HOME", "/ignored")

	assert.Equal(t, filepath.Join(root, "config"), ConfigDir())
	assert.Equal(t, filepath.Join(root, "state"), StateDir())
	assert.Equal(t, filepath.Join(root, "cache"), CacheDir())
	assert.Equal(t, filepath.Join(root, "state", "logs"), LogsDir())
	assert.Equal(t, filepath.Join(root, "cache", "sessions"), SessionCacheDir())
}

func TestXDGVariables(t *testing.T) {
	t.Setenv("STATUSLINE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")
	t.Setenv("XDG_CACHE_HOME", "/xdg/cache")

	assert.Equal(t, "/xdg/config/cc-statusline", ConfigDir())
	assert.Equal(t, "/xdg/state/cc-statusline", StateDir())
	assert.Equal(t, "/xdg/cache/cc-statusline", CacheDir())
}

func TestHomeFallback(t *testing.T) {
	t.Setenv("STATUSLINE_HOME", "")
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	t.Setenv("XDG_CACHE_HOME", "")
	t.Setenv("HOME", "/home/u")

	assert.Equal(t, "/home/u/.config/cc-statusline", ConfigDir())
	assert.Equal(t, "/home/u/.local/state/cc-statusline", StateDir())
	assert.Equal(t, "/home/u/.cache/cc-statusline", CacheDir())
	assert.Equal(t, "/home/u", HomeDir())
}
