// Package applog writes application events as one JSON object per line.
package applog

import (
	"encoding/json"
	"io"
	"os"
	"sync"
	"time"
)

// Logger writes JSON log lines stamped in a fixed time zone.
type Logger struct {
	mu  sync.Mutex
	w   io.Writer
	loc *time.Location
}

// New returns a Logger writing to w. A nil loc means UTC.
func New(w io.Writer, loc *time.Location) *Logger {
	if loc == nil {
		loc = time.UTC
	}
	return &Logger{w: w, loc: loc}
}

var std = New(os.Stdout, time.UTC)

// Default returns the process-wide logger.
func Default() *Logger { return std }

// SetDefault replaces the process-wide logger.
func SetDefault(l *Logger) { std = l }

// Info logs data at info level.
func (l *Logger) Info(data map[string]any) { l.write("info", data) }

// Error logs data at error level.
func (l *Logger) Error(data map[string]any) { l.write("error", data) }

func (l *Logger) write(level string, data map[string]any) {
	entry := make(map[string]any, len(data)+2)
	for k, v := range data {
		entry[k] = v
	}
	entry["ts"] = time.Now().In(l.loc).Format(time.RFC3339Nano)
	if _, ok := entry["level"]; !ok {
		entry["level"] = level
	}

	b, err := json.Marshal(entry)
	if err != nil {
		b, _ = json.Marshal(map[string]any{
			"ts":    entry["ts"],
			"level": "error",
			"msg":   "log_marshal_failed",
			"error": err.Error(),
		})
	}
	b = append(b, '\n')

	l.mu.Lock()
	defer l.mu.Unlock()
	_, _ = l.w.Write(b)
}
