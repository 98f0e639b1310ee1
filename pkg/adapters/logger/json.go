package logger

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/user/rgb2gray/pkg/ports"
)

// JSONLogger writes one JSON object per line through logrus. Messages are
// kept untranslated so log processors see stable keys.
type JSONLogger struct {
	entry *logrus.Entry
}

// NewJSON creates a JSON logger writing to w.
func NewJSON(level ports.LogLevel, w io.Writer) *JSONLogger {
	l := logrus.New()
	l.SetFormatter(&logrus.JSONFormatter{TimestampFormat: time.RFC3339Nano})
	l.SetOutput(w)
	switch level {
	case ports.LevelDebug:
		l.SetLevel(logrus.DebugLevel)
	case ports.LevelWarn:
		l.SetLevel(logrus.WarnLevel)
	case ports.LevelError:
		l.SetLevel(logrus.ErrorLevel)
	case ports.LevelQuiet:
		l.SetOutput(io.Discard)
	default:
		l.SetLevel(logrus.InfoLevel)
	}
	return &JSONLogger{entry: logrus.NewEntry(l)}
}

func (l *JSONLogger) Debug(msg string, args ...interface{}) { l.entry.Debugf(msg, args...) }
func (l *JSONLogger) Info(msg string, args ...interface{})  { l.entry.Infof(msg, args...) }
func (l *JSONLogger) Warn(msg string, args ...interface{})  { l.entry.Warnf(msg, args...) }
func (l *JSONLogger) Error(msg string, args ...interface{}) { l.entry.Errorf(msg, args...) }

// WithComponent returns a logger carrying a "component" field.
func (l *JSONLogger) WithComponent(component string) ports.Logger {
	return &JSONLogger{entry: l.entry.WithField("component", component)}
}

var _ ports.Logger = (*JSONLogger)(nil)
