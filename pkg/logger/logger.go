// Package logger writes structured JSON log lines for the roster report.
//
// Each line is one LogEntry. Loggers derived with With share the parent's
// output and lock. Logs go to stderr by default so stdout carries only
// report text.
package logger

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"sync"
	"time"
)

// ════════════════════════════════════════════════════════════════════════════
// LEVELS
// ════════════════════════════════════════════════════════════════════════════

// Level is the severity of a log line.
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

// String returns the name written to the "level" key.
func (l Level) String() string {
	switch l {
	case LevelDebug:
		return "DEBUG"
	case LevelInfo:
		return "INFO"
	case LevelWarn:
		return "WARN"
	case LevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

// ParseLevel maps a LOG_LEVEL value to a Level. Unknown values mean info.
func ParseLevel(s string) Level {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "DEBUG":
		return LevelDebug
	case "WARN", "WARNING":
		return LevelWarn
	case "ERROR":
		return LevelError
	default:
		return LevelInfo
	}
}

// ════════════════════════════════════════════════════════════════════════════
// FIELDS
// ════════════════════════════════════════════════════════════════════════════

// Field is one key of the "fields" object.
type Field struct {
	Key   string
	Value any
}

func String(key, value string) Field  { return Field{Key: key, Value: value} }
func Int(key string, value int) Field { return Field{Key: key, Value: value} }

// Err stores the error text under "error". A nil error is written as null.
func Err(err error) Field {
	if err == nil {
		return Field{Key: "error", Value: nil}
	}
	return Field{Key: "error", Value: err.Error()}
}

// Duration stores d in its String form, e.g. "1.5ms".
func Duration(key string, d time.Duration) Field {
	return Field{Key: key, Value: d.String()}
}

// Roster field keys.
const (
	ReportIDKey      = "report_id"
	EngineerIDKey    = "engineer_id"
	EngineerKindKey  = "engineer_kind"
	EngineerCountKey = "engineer_count"
	GroupCountKey    = "group_count"
	InvalidFieldKey  = "invalid_field"
	ComponentKey     = "component"
	SectionKey       = "section"
	LatencyKey       = "latency"
)

func EngineerID(id string) Field     { return String(EngineerIDKey, id) }
func EngineerKind(kind string) Field { return String(EngineerKindKey, kind) }
func EngineerCount(n int) Field      { return Int(EngineerCountKey, n) }
func GroupCount(n int) Field         { return Int(GroupCountKey, n) }
func InvalidField(name string) Field { return String(InvalidFieldKey, name) }
func Component(name string) Field    { return String(ComponentKey, name) }
func Section(name string) Field      { return String(SectionKey, name) }
func Latency(d time.Duration) Field  { return Duration(LatencyKey, d) }

// ════════════════════════════════════════════════════════════════════════════
// LOGGER
// ════════════════════════════════════════════════════════════════════════════

// LogEntry is the JSON shape of one log line.
type LogEntry struct {
	Timestamp string         `json:"timestamp"`
	Level     string         `json:"level"`
	Message   string         `json:"message"`
	Caller    string         `json:"caller,omitempty"`
	Fields    map[string]any `json:"fields,omitempty"`
}

// sink is the output shared by a logger and everything derived from it.
type sink struct {
	mu  sync.Mutex
	out io.Writer
}

func (s *sink) write(line []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.out.Write(line)
}

// Logger writes leveled entries with a fixed set of base fields.
type Logger struct {
	sink      *sink
	level     Level
	addCaller bool
	fields    []Field
}

// Options configures New. A nil Output means stderr.
type Options struct {
	Output    io.Writer
	Level     Level
	AddCaller bool
}

// New creates a logger from opts.
func New(opts Options) *Logger {
	if opts.Output == nil {
		opts.Output = os.Stderr
	}
	return &Logger{
		sink:      &sink{out: opts.Output},
		level:     opts.Level,
		addCaller: opts.AddCaller,
	}
}

// Default is an info-level logger on stderr.
func Default() *Logger {
	return New(Options{Level: LevelInfo})
}

// With returns a logger that adds fields to every entry.
func (l *Logger) With(fields ...Field) *Logger {
	merged := make([]Field, 0, len(l.fields)+len(fields))
	merged = append(merged, l.fields...)
	merged = append(merged, fields...)
	return &Logger{
		sink:      l.sink,
		level:     l.level,
		addCaller: l.addCaller,
		fields:    merged,
	}
}

// WithReportID tags every entry with the run's report ID.
func (l *Logger) WithReportID(reportID string) *Logger {
	return l.With(String(ReportIDKey, reportID))
}

func (l *Logger) Debug(msg string, fields ...Field) { l.log(LevelDebug, msg, fields) }
func (l *Logger) Info(msg string, fields ...Field)  { l.log(LevelInfo, msg, fields) }
func (l *Logger) Warn(msg string, fields ...Field)  { l.log(LevelWarn, msg, fields) }
func (l *Logger) Error(msg string, fields ...Field) { l.log(LevelError, msg, fields) }

// log must be called directly from a level method so the caller skip holds.
func (l *Logger) log(level Level, msg string, fields []Field) {
	if level < l.level {
		return
	}

	entry := LogEntry{
		Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
		Level:     level.String(),
		Message:   msg,
	}

	if l.addCaller {
		if _, file, line, ok := runtime.Caller(2); ok {
			entry.Caller = fmt.Sprintf("%s:%d", file[strings.LastIndex(file, "/")+1:], line)
		}
	}

	if n := len(l.fields) + len(fields); n > 0 {
		entry.Fields = make(map[string]any, n)
		for _, f := range l.fields {
			entry.Fields[f.Key] = f.Value
		}
		// Call-site fields win over base fields with the same key.
		for _, f := range fields {
			entry.Fields[f.Key] = f.Value
		}
	}

	data, err := json.Marshal(entry)
	if err != nil {
		data = []byte(fmt.Sprintf("%s [%s] %s", entry.Timestamp, entry.Level, msg))
	}
	l.sink.write(append(data, '\n'))
}

// ════════════════════════════════════════════════════════════════════════════
// CONTEXT
// ════════════════════════════════════════════════════════════════════════════

type ctxKey struct{}

// WithContext attaches l to ctx.
func WithContext(ctx context.Context, l *Logger) context.Context {
	return context.WithValue(ctx, ctxKey{}, l)
}

// FromContext returns the logger attached to ctx, or Default.
func FromContext(ctx context.Context) *Logger {
	if l, ok := ctx.Value(ctxKey{}).(*Logger); ok {
		return l
	}
	return Default()
}
