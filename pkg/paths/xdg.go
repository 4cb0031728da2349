// Package paths provides XDG-compliant path resolution for the status line.
//
// Resolution order:
// 1. STATUSLINE_HOME (portable root) → $STATUSLINE_HOME/{config,state,cache}
// 2. XDG env vars → $XDG_*_HOME/cc-statusline
// 3. Platform defaults → ~/.config/cc-statusline, ~/.local/state/cc-statusline, etc.
package paths

import (
	"os"
	"path/filepath"
)

// AppName is the directory name used beneath each XDG base directory.
const AppName = "cc-statusline"

// homeEnv names the portable-root override.
const homeEnv = "STATUSLINE_HOME"

// baseDir resolves one XDG base directory. sub is the directory used under
// STATUSLINE_HOME, xdgVar the XDG variable and fallback the path under $HOME.
func baseDir(sub, xdgVar string, fallback ...string) string {
	if root := os.Getenv(homeEnv); root != "" {
		return filepath.Join(root, sub)
	}
	if dir := os.Getenv(xdgVar); dir != "" {
		return filepath.Join(dir, AppName)
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	parts := append([]string{homeDir}, fallback...)
	return filepath.Join(append(parts, AppName)...)
}

// ConfigDir returns the configuration directory holding config.yml / config.toml.
func ConfigDir() string {
	return baseDir("config", "XDG_CONFIG_HOME", ".config")
}

// StateDir returns the state directory. Used for logs.
func StateDir() string {
	return baseDir("state", "XDG_STATE_HOME", ".local", "state")
}

// CacheDir returns the cache directory. Used for regenerable per-session data.
func CacheDir() string {
	return baseDir("cache", "XDG_CACHE_HOME", ".cache")
}

// LogsDir returns the directory for rotated log files.
func LogsDir() string {
	state := StateDir()
	if state == "" {
		return ""
	}
	return filepath.Join(state, "logs")
}

// SessionCacheDir returns the directory holding per-session cache files.
func SessionCacheDir() string {
	cache := CacheDir()
	if cache == "" {
		return ""
	}
	return filepath.Join(cache, "sessions")
}

// HomeDir returns $HOME, falling back to the OS user home and finally "/".
func HomeDir() string {
	if home := os.Getenv("HOME"); home != "" {
		return home
	}
	if home, err := os.UserHomeDir(); err == nil {
		return home
	}
	return "/"
}
