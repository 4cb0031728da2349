package git

import (
	"path/filepath"
	"strings"
)

// extractRepoName extracts the repository name from a remote URL.
func extractRepoName(url string) string {
	url = strings.TrimSpace(url)
	url = strings.TrimSuffix(strings.TrimSuffix(url, "/"), ".git")

	// git@github.com:user/repo
	if strings.HasPrefix(url, "git@") {
		if _, path, ok := strings.Cut(url, ":"); ok {
			url = path
		}
	}

	parts := strings.Split(url, "/")
	name := parts[len(parts)-1]
	if name == "" {
		return ""
	}
	return name
}

// repoName returns the remote's repository name, or the base name of the
// top-level directory when there is no usable origin.
func repoName(remoteURL, root string) string {
	if name := extractRepoName(remoteURL); name != "" {
		return name
	}
	if root == "" {
		return ""
	}
	return filepath.Base(root)
}
