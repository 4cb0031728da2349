package cache

import (
	"context"

	"github.com/sirupsen/logrus"

	"github.com/grovetools/statusline/git"
	"github.com/grovetools/statusline/logging"
)

// CachedInspector serves git state from a session's cache entry while it is
// fresh and falls back to the wrapped provider otherwise.
type CachedInspector struct {
	inner     git.StateProvider
	store     *Store
	sessionID string
	logger    *logrus.Entry
}

var _ git.StateProvider = (*CachedInspector)(nil)

// NewCachedInspector wraps inner with the cache of one session.
func NewCachedInspector(inner git.StateProvider, store *Store, sessionID string) *CachedInspector {
	return &CachedInspector{
		inner:     inner,
		store:     store,
		sessionID: sessionID,
		logger:    logging.NewLogger("cache"),
	}
}

// Inspect returns the cached state of dir, inspecting and caching it on a miss.
// Cache failures are logged and otherwise ignored.
func (c *CachedInspector) Inspect(ctx context.Context, dir string) git.State {
	if state, ok := c.store.Lookup(c.sessionID, dir); ok {
		c.logger.WithField("dir", dir).Debug("Using cached git state")
		return state
	}

	state := c.inner.Inspect(ctx, dir)
	if err := c.store.Put(c.sessionID, dir, state); err != nil {
		c.logger.WithError(err).Debug("Failed to write git cache")
	}
	return state
}
