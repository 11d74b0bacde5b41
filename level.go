package eventlog

import (
	"strings"
)

// ConsoleLevel is the console verbosity threshold. A level permits printing
// of any log whose severity is at least the threshold; silent permits
// nothing.
type ConsoleLevel int

const (
	LevelInfo ConsoleLevel = iota
	LevelWarning
	LevelError
	LevelSilent
)

func (l ConsoleLevel) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelSilent:
		return "silent"
	default:
		return "unknown"
	}
}

// ParseConsoleLevel maps a level name to its ConsoleLevel. Unrecognized
// names map to silent so they never permit printing.
func ParseConsoleLevel(s string) ConsoleLevel {
	switch strings.ToLower(s) {
	case "info":
		return LevelInfo
	case "warn", "warning":
		return LevelWarning
	case "error":
		return LevelError
	default:
		return LevelSilent
	}
}

// Kind is the type of an individual log call.
type Kind int

const (
	KindInfo Kind = iota
	KindWarning
	KindError
	KindUncaughtError
	KindMetric
)

func (k Kind) String() string {
	switch k {
	case KindInfo:
		return "info"
	case KindWarning:
		return "warning"
	case KindError:
		return "error"
	case KindUncaughtError:
		return "uncaught_error"
	case KindMetric:
		return "metric"
	default:
		return "unknown"
	}
}

// severity places a kind on the ConsoleLevel scale. Metrics print at the
// info severity.
func (k Kind) severity() ConsoleLevel {
	switch k {
	case KindWarning:
		return LevelWarning
	case KindError, KindUncaughtError:
		return LevelError
	default:
		return LevelInfo
	}
}
