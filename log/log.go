// Package log wraps logrus with context-aware helpers (Infof, Errorf, ...)
// that tag every line with the request ID found in the context.
package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"runtime"
	"sort"
	"strings"

	"github.com/sirupsen/logrus"

	tpcontext "github.com/va6996/tourplanner/context"
)

// Logger is the global logger instance
var Logger = logrus.New()

const requestIDField = "request_id"

// Formatter renders entries as [<time>] [LEVEL] [file:line] <message> [req:<id>] k=v...
type Formatter struct {
	TimestampFormat string
}

// Format implements logrus.Formatter.
func (f *Formatter) Format(entry *logrus.Entry) ([]byte, error) {
	b := entry.Buffer
	if b == nil {
		b = &bytes.Buffer{}
	}

	fmt.Fprintf(b, "[%s] ", entry.Time.Format(f.TimestampFormat))
	fmt.Fprintf(b, "[%s] ", strings.ToUpper(entry.Level.String()))

	if file, line := callerOutsideLogging(); file != "" {
		fmt.Fprintf(b, "[%s:%d] ", file, line)
	}

	b.WriteString(entry.Message)

	if requestID, ok := entry.Data[requestIDField].(string); ok && requestID != "" {
		fmt.Fprintf(b, " [req:%s]", requestID)
	}

	keys := make([]string, 0, len(entry.Data))
	for key := range entry.Data {
		if key != requestIDField {
			keys = append(keys, key)
		}
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Fprintf(b, " %s=%v", key, entry.Data[key])
	}

	b.WriteByte('\n')
	return b.Bytes(), nil
}

// callerOutsideLogging walks the stack past logrus and this package and
// returns the base file name and line of the first real caller.
func callerOutsideLogging() (string, int) {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(3, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	for {
		frame, more := frames.Next()
		skip := strings.Contains(frame.File, "github.com/sirupsen/logrus") ||
			strings.HasSuffix(frame.File, "log/log.go") ||
			strings.Contains(frame.File, "runtime/")
		if !skip {
			parts := strings.Split(frame.File, "/")
			return parts[len(parts)-1], frame.Line
		}
		if !more {
			return "", 0
		}
	}
}

func entryFor(ctx context.Context) *logrus.Entry {
	return Logger.WithField(requestIDField, tpcontext.RequestIDFromContext(ctx))
}

// Infof logs formatted message at info level
func Infof(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Infof(format, args...)
}

// Debugf logs formatted message at debug level
func Debugf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Debugf(format, args...)
}

// Warnf logs formatted message at warning level
func Warnf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Warnf(format, args...)
}

// Errorf logs formatted message at error level
func Errorf(ctx context.Context, format string, args ...interface{}) {
	entryFor(ctx).Errorf(format, args...)
}

// SetOutput sets the global log output
func SetOutput(out io.Writer) {
	Logger.SetOutput(out)
}

// Init installs the formatter and sets the level by name ("debug", "info", ...).
func Init(level string) error {
	Logger.SetFormatter(&Formatter{
		TimestampFormat: "2006-01-02 15:04:05",
	})
	if level == "" {
		level = "info"
	}
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}
	Logger.SetLevel(lvl)
	return nil
}

// WithField creates a logger entry carrying the context's request ID and one extra field.
func WithField(ctx context.Context, key string, value interface{}) *logrus.Entry {
	return entryFor(ctx).WithField(key, value)
}
