package logging

import (
	"io"
	"sync"
)

// globalWriter delegates to a writer that can be swapped at runtime.
type globalWriter struct {
	mu sync.RWMutex
	w  io.Writer
}

func (gw *globalWriter) Write(p []byte) (n int, err error) {
	gw.mu.RLock()
	defer gw.mu.RUnlock()
	return gw.w.Write(p)
}

func (gw *globalWriter) Set(w io.Writer) {
	gw.mu.Lock()
	defer gw.mu.Unlock()
	gw.w = w
}

// Logs go nowhere until Configure installs a sink. Stdout is reserved for
// the status line and never used.
var defaultGlobalWriter = &globalWriter{w: io.Discard}

// SetGlobalOutput redirects every logger created by NewLogger.
func SetGlobalOutput(w io.Writer) {
	defaultGlobalWriter.Set(w)
}

// GetGlobalOutput returns the shared writer all loggers write to.
func GetGlobalOutput() io.Writer {
	return defaultGlobalWriter
}
