// Package logging configures the process logger.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/xcpp-labs/xcpp/internal/branding"
)

// DefaultLevel is used when neither a flag nor the environment sets a level.
const DefaultLevel = logrus.WarnLevel

// Options selects the logger level and destination.
type Options struct {
	Verbose bool // info and above
	Debug   bool // debug and above; wins over Verbose
	Output  io.Writer
}

// New returns a text logger writing to opts.Output (stderr if nil). Flags take
// precedence over the XCPP_LOG environment variable.
func New(opts Options) (*logrus.Logger, error) {
	level, err := resolveLevel(opts)
	if err != nil {
		return nil, err
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetLevel(level)
	logger.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true,
		PadLevelText:     true,
	})
	return logger, nil
}

// Discard returns a logger that drops everything. Handy in tests.
func Discard() *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return logger
}

func resolveLevel(opts Options) (logrus.Level, error) {
	switch {
	case opts.Debug:
		return logrus.DebugLevel, nil
	case opts.Verbose:
		return logrus.InfoLevel, nil
	}

	env := branding.EnvVar("LOG")
	v := strings.TrimSpace(os.Getenv(env))
	if v == "" {
		return DefaultLevel, nil
	}
	level, err := logrus.ParseLevel(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", env, v, err)
	}
	return level, nil
}
