package log

import (
	"io"
	"os"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

// Discard is a [Logger] that produces no output.
var Discard = New(WithLevel(Silent), WithWriter(io.Discard))

// New creates a [Logger] configured with the provided options.
// By default messages go to standard error, so that program output on
// standard output stays machine-readable.
func New(ops ...Option) *Logger {
	defaults := []Option{
		WithLogger(&Logger{zerolog.New(nil).
			With().Timestamp().Logger(),
		}),
		WithWriter(os.Stderr),
		WithLevel(Info),
	}

	var l Logger
	for _, op := range slices.Concat(defaults, ops) {
		op(&l)
	}
	return &l
}

func WithLogger(l *Logger) Option {
	return func(ll *Logger) {
		ll.log = l.log
	}
}

func WithFields(f Fields) Option {
	return func(l *Logger) {
		l.log = l.log.With().Fields(f).Logger()
	}
}

func WithLevel(level Level) Option {
	return func(l *Logger) {
		l.log = l.log.Level(makeZerologLevel(level))
	}
}

func WithWriter(w io.Writer) Option {
	return func(l *Logger) {
		out := w
		if isTerminal(w) {
			out = zerolog.NewConsoleWriter(func(w *zerolog.ConsoleWriter) {
				w.TimeFormat = time.DateTime
				w.Out = out
			})
		}
		l.log = l.log.Output(out)
	}
}

func isTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return true
	}
	return false
}

type Option func(*Logger)

type Fields map[string]any

type Logger struct {
	log zerolog.Logger
}

// Fatal logs an error message and terminates the program with a non-zero exit status.
func (l *Logger) Fatal(msg string, err error) {
	l.logEntry(zerolog.FatalLevel, msg, nil, err)
	os.Exit(1)
}

func (l *Logger) Error(msg string, err error) {
	l.logEntry(makeZerologLevel(Error), msg, nil, err)
}

func (l *Logger) Info(msg string, f Fields) {
	l.logEntry(makeZerologLevel(Info), msg, f, nil)
}

func (l *Logger) Verbose(msg string, f Fields) {
	l.logEntry(makeZerologLevel(Verbose), msg, f, nil)
}

func (l *Logger) logEntry(level zerolog.Level, msg string, f Fields, err error) {
	entry := l.log.WithLevel(level)
	if err != nil {
		entry = entry.Err(err)
	}

	entry.Fields(map[string]any(f)).
		Msg(msg)
}
