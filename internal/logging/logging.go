// Package logging builds the leveled terminal logger used by the commands.
package logging

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/benedoc-inc/pdfsplit/types"
)

// New returns a logger writing to w at the given level
// ("debug", "info", "warn" or "error").
func New(w io.Writer, level string) (*log.Logger, error) {
	lvl, err := log.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil {
		return nil, types.WrapError(types.ErrCodeInvalidInput, "parsing log level", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "pdfsplit",
	}), nil
}

// Discard returns a logger that drops everything
func Discard() *log.Logger {
	return log.New(io.Discard)
}
