package logger

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

const maxVerbosity = 2

func SetupLogging() {
	zerolog.LevelFieldName = "level_name"
	zerolog.TimestampFieldName = "timestamp"
}

// Options configure the process logger. They are set once at start-up.
type Options struct {
	// Verbosity is the number of -v flags; values above 2 are capped.
	Verbosity int
	// LogFile enables an append-only file sink when non-empty.
	LogFile string
	// Console overrides stderr, mostly for tests.
	Console io.Writer
}

// LevelFor maps a verbosity count to a level: warn, info, debug.
func LevelFor(verbosity int) zerolog.Level {
	if verbosity > maxVerbosity {
		verbosity = maxVerbosity
	}

	switch verbosity {
	case 2:
		return zerolog.DebugLevel
	case 1:
		return zerolog.InfoLevel
	default:
		return zerolog.WarnLevel
	}
}

// New builds the root logger. The returned closer releases the log file and
// must be called before exit.
func New(opts Options) (zerolog.Logger, io.Closer, error) {
	console := opts.Console
	if console == nil {
		console = os.Stderr
	}

	var out io.Writer = console
	var closer io.Closer = nopCloser{}
	if opts.LogFile != "" {
		f, err := os.OpenFile(opts.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return zerolog.Nop(), closer, err
		}
		out = zerolog.MultiLevelWriter(console, f)
		closer = f
	}

	log := zerolog.New(out).
		With().
		Timestamp().
		Logger().
		Level(LevelFor(opts.Verbosity))

	return log, closer, nil
}

// Component derives a logger tagged with the component name.
func Component(base zerolog.Logger, component string) zerolog.Logger {
	return base.With().Str("component", component).Logger()
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
