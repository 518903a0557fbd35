package log

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/jonboulle/clockwork"
)

const (
	dateLayout = "2006-01-02 15:04:05.000"
)

type Logger interface {
	// Log logs the message with specified options and fields.
	// Implementations must not in any way use slice of fields after Log returns.
	Log(ctx context.Context, msg string, fields ...Field)
}

var _ Logger = (*defaultLogger)(nil)

// Default returns a text logger writing one line per record into w.
func Default(w io.Writer, opts ...Option) *defaultLogger {
	l := &defaultLogger{
		minLevel: INFO,
		clock:    clockwork.NewRealClock(),
		w:        w,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(l)
		}
	}

	return l
}

type defaultLogger struct {
	coloring bool
	minLevel Level
	clock    clockwork.Clock
	w        io.Writer
}

func (l *defaultLogger) Log(ctx context.Context, msg string, fields ...Field) {
	lvl := LevelFromContext(ctx)
	if lvl < l.minLevel {
		return
	}

	_, _ = io.WriteString(l.w, l.format(NamesFromContext(ctx), msg, lvl, fields)+"\n")
}

func (l *defaultLogger) format(namespace []string, msg string, lvl Level, fields []Field) string {
	var b strings.Builder
	if l.coloring {
		b.WriteString(lvl.Color())
	}
	b.WriteString(l.clock.Now().Format(dateLayout))
	b.WriteByte(' ')
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(lvl.BoldColor())
	}
	b.WriteString(lvl.String())
	if l.coloring {
		b.WriteString(colorReset)
		b.WriteString(lvl.Color())
	}
	b.WriteString(" '")
	b.WriteString(strings.Join(namespace, "."))
	b.WriteString("' => ")
	b.WriteString(msg)
	if len(fields) > 0 {
		b.WriteString(" {")
		for i := range fields {
			if i != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Quote(fields[i].Key()))
			b.WriteByte(':')
			b.WriteString(strconv.Quote(fields[i].String()))
		}
		b.WriteByte('}')
	}
	if l.coloring {
		b.WriteString(colorReset)
	}

	return b.String()
}
