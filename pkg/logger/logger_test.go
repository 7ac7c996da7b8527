package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LevelDebug, ParseLevel("debug"))
	assert.Equal(t, LevelWarn, ParseLevel(" WARNING "))
	assert.Equal(t, LevelError, ParseLevel("error"))
	assert.Equal(t, LevelInfo, ParseLevel("bogus"))
	assert.Equal(t, "UNKNOWN", Level(42).String())
}

func TestLogger_WritesJSONWithFields(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelInfo}).
		WithReportID("r-1").
		With(Component("report"))

	log.Info("roster built", EngineerCount(8), Err(errors.New("boom")))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "INFO", entry.Level)
	assert.Equal(t, "roster built", entry.Message)
	assert.Equal(t, "r-1", entry.Fields[ReportIDKey])
	assert.Equal(t, "report", entry.Fields["component"])
	assert.Equal(t, float64(8), entry.Fields["engineer_count"])
	assert.Equal(t, "boom", entry.Fields["error"])
	assert.Empty(t, entry.Caller)
}

func TestLogger_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelWarn})

	log.Debug("hidden")
	log.Info("hidden")
	log.Warn("shown")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)
	assert.Contains(t, lines[0], `"message":"shown"`)
}

func TestLogger_Context(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, Level: LevelDebug})

	ctx := WithContext(context.Background(), log)
	assert.Same(t, log, FromContext(ctx))
	assert.NotNil(t, FromContext(context.Background()))
}

func TestLogger_DerivedLoggersShareOutput(t *testing.T) {
	var buf bytes.Buffer
	root := New(Options{Output: &buf, Level: LevelDebug})
	seed := root.With(Component("seed"))

	seed.Debug("engineer added", EngineerID("e-1"), EngineerKind("software"))
	root.Info("roster built")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var first LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &first))
	assert.Equal(t, "DEBUG", first.Level)
	assert.Equal(t, "seed", first.Fields[ComponentKey])
	assert.Equal(t, "e-1", first.Fields[EngineerIDKey])
	assert.Equal(t, "software", first.Fields[EngineerKindKey])

	var second LogEntry
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &second))
	assert.NotContains(t, second.Fields, ComponentKey)
}

func TestLogger_CallSiteFieldWins(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf}).With(Section("roster"))

	log.Info("section written", Section("totals"), Latency(1500*time.Microsecond))

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "totals", entry.Fields[SectionKey])
	assert.Equal(t, "1.5ms", entry.Fields[LatencyKey])
}

func TestLogger_AddCaller(t *testing.T) {
	var buf bytes.Buffer
	log := New(Options{Output: &buf, AddCaller: true})

	log.Warn("with caller")

	var entry LogEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.True(t, strings.HasPrefix(entry.Caller, "logger_test.go:"), entry.Caller)
}
