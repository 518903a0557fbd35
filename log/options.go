package log

import (
	"github.com/jonboulle/clockwork"
)

type Option func(l *defaultLogger)

func WithColoring() Option {
	return func(l *defaultLogger) {
		l.coloring = true
	}
}

func WithMinLevel(level Level) Option {
	return func(l *defaultLogger) {
		l.minLevel = level
	}
}

func WithClock(clock clockwork.Clock) Option {
	return func(l *defaultLogger) {
		l.clock = clock
	}
}
