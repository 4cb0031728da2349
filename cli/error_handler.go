package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/grovetools/statusline/errors"
)

// ErrorHandler reports a failed run as a single diagnostic line.
type ErrorHandler struct {
	Name    string
	Out     io.Writer
	Verbose bool
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(name string, out io.Writer, verbose bool) *ErrorHandler {
	return &ErrorHandler{
		Name:    name,
		Out:     out,
		Verbose: verbose,
	}
}

// Handle writes exactly one line describing err and returns err unchanged.
func (h *ErrorHandler) Handle(err error) error {
	if err == nil {
		return nil
	}

	code := errors.GetCode(err)
	msg := err.Error()
	if code == errors.ErrCodeInvalidInput && !h.Verbose {
		msg = "invalid input: expected a JSON object on stdin"
	}
	if h.Verbose && code != "" {
		msg = fmt.Sprintf("%s [%s]", msg, code)
	}

	// Causes may carry newlines (e.g. schema validation output).
	msg = strings.Join(strings.Fields(msg), " ")
	fmt.Fprintf(h.Out, "%s: %s\n", h.Name, msg)
	return err
}
