package log

import "strings"

type Level int

const (
	TRACE = Level(iota)
	DEBUG
	INFO
	WARN
	ERROR
	FATAL

	QUIET
)

const (
	colorReset = "\033[0m"
)

var levels = [...]struct {
	label     string
	color     string
	boldColor string
}{
	TRACE: {"TRACE", "\033[38m", "\033[47m"},
	DEBUG: {"DEBUG", "\033[37m", "\033[100m"},
	INFO:  {"INFO", "\033[36m", "\033[106m"},
	WARN:  {"WARN", "\033[33m", "\u001B[30m\033[103m"},
	ERROR: {"ERROR", "\033[31m", "\033[101m"},
	FATAL: {"FATAL", "\033[41m", "\033[101m"},
	QUIET: {"QUIET", colorReset, ""},
}

func (l Level) valid() Level {
	if l < TRACE || l > QUIET {
		return QUIET
	}

	return l
}

func (l Level) String() string {
	return levels[l.valid()].label
}

func (l Level) Color() string {
	return levels[l.valid()].color
}

func (l Level) BoldColor() string {
	return levels[l.valid()].boldColor
}

// FromString parses a level name case-insensitively; unknown names mean QUIET.
func FromString(s string) Level {
	s = strings.ToUpper(s)
	for l := TRACE; l < QUIET; l++ {
		if levels[l].label == s {
			return l
		}
	}

	return QUIET
}
