package ports

import "fmt"

// LogLevel is the minimum severity a Logger emits.
type LogLevel int

const (
	// LevelDebug covers per-frame and per-negotiation detail.
	LevelDebug LogLevel = iota
	// LevelInfo covers run progress.
	LevelInfo
	// LevelWarn covers rejected caps and skipped inputs.
	LevelWarn
	// LevelError covers failures that abort a run.
	LevelError
	// LevelQuiet suppresses all output.
	LevelQuiet
)

// String returns the flag spelling of the level.
func (l LogLevel) String() string {
	switch l {
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelQuiet:
		return "quiet"
	default:
		return "unknown"
	}
}

// ParseLogLevel parses a level name. Unknown names map to LevelInfo.
func ParseLogLevel(s string) LogLevel {
	switch s {
	case "debug":
		return LevelDebug
	case "warn":
		return LevelWarn
	case "error":
		return LevelError
	case "quiet":
		return LevelQuiet
	default:
		return LevelInfo
	}
}

// LogFormat selects how log lines are rendered.
type LogFormat string

const (
	// FormatConsole renders translated, optionally coloured lines.
	FormatConsole LogFormat = "console"
	// FormatJSON renders one JSON object per line.
	FormatJSON LogFormat = "json"
)

// ParseLogFormat validates a log format name.
func ParseLogFormat(s string) (LogFormat, error) {
	switch LogFormat(s) {
	case FormatConsole, "":
		return FormatConsole, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown log format %q", s)
	}
}

// Logger is the logging handle injected into the element, every stage and
// the orchestrator. msg is a printf-style message key that adapters may
// translate before formatting.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})

	// WithComponent returns a Logger tagging every line with component.
	WithComponent(component string) Logger
}
