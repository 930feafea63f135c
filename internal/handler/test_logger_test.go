package handler

import (
	"fmt"
	"strings"
	"sync"
)

// RecordingLogger keeps every log line so tests can assert on server-side diagnostics.
type RecordingLogger struct {
	mu    sync.Mutex
	lines []string
}

func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{}
}

func (l *RecordingLogger) record(level, msg string, fields ...interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	line := level + ": " + msg
	for i := 0; i+1 < len(fields); i += 2 {
		line += fmt.Sprintf(" %v=%v", fields[i], fields[i+1])
	}
	l.lines = append(l.lines, line)
}

func (l *RecordingLogger) Info(msg string, fields ...interface{})  { l.record("INFO", msg, fields...) }
func (l *RecordingLogger) Debug(msg string, fields ...interface{}) { l.record("DEBUG", msg, fields...) }
func (l *RecordingLogger) Warn(msg string, fields ...interface{})  { l.record("WARN", msg, fields...) }
func (l *RecordingLogger) Error(msg string, err error, fields ...interface{}) {
	l.record("ERROR", msg, append([]interface{}{"error", err}, fields...)...)
}

// Find returns the first line with the given level prefix that contains all substrings.
func (l *RecordingLogger) Find(level string, substrings ...string) (string, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
next:
	for _, line := range l.lines {
		if !strings.HasPrefix(line, level+": ") {
			continue
		}
		for _, s := range substrings {
			if !strings.Contains(line, s) {
				continue next
			}
		}
		return line, true
	}
	return "", false
}
