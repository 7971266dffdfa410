// Package logging provides per-component logrus loggers sharing one
// process-wide configuration.
package logging

import (
	"io"
	"os"
	"sync"

	"github.com/mattn/go-isatty"
	"github.com/sirupsen/logrus"
)

// Formats accepted by Options.Format.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// Options configures the shared logger.
type Options struct {
	// Level is the minimum level ("debug", "info", "warn", "error").
	Level string
	// Format is "text" (default) or "json".
	Format string
	// Output defaults to os.Stderr.
	Output io.Writer
}

var (
	base      = logrus.New()
	loggers   = make(map[string]*logrus.Entry)
	loggersMu sync.Mutex
)

func init() {
	Configure(Options{})
}

// Configure applies opts to every logger created by NewLogger, including
// the ones handed out before the call.
func Configure(opts Options) {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	base.SetOutput(out)

	level, err := logrus.ParseLevel(opts.Level)
	if err != nil {
		level = logrus.InfoLevel
	}

	base.SetLevel(level)

	switch opts.Format {
	case FormatJSON:
		base.SetFormatter(&logrus.JSONFormatter{})
	default:
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:    !isTerminal(out),
			DisableTimestamp: true,
		})
	}
}

// NewLogger returns the logger of a component. Entries are cached per
// component and carry a "component" field.
func NewLogger(component string) *logrus.Entry {
	loggersMu.Lock()
	defer loggersMu.Unlock()

	if logger, exists := loggers[component]; exists {
		return logger
	}

	entry := base.WithField("component", component)
	loggers[component] = entry

	return entry
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
