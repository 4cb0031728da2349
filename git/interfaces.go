package git

import "context"

// StateProvider reports the git state of a directory.
type StateProvider interface {
	Inspect(ctx context.Context, dir string) State
}

var _ StateProvider = (*Inspector)(nil)
