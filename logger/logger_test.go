package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"strings"
	"testing"
	"time"
)

func jsonLogger(level string, buf *bytes.Buffer) *Logger {
	return NewWithWriter(&Config{Level: level, Format: "json"}, "test", buf)
}

func TestNewDefault(t *testing.T) {
	l := NewDefault("test-svc")
	if l == nil {
		t.Fatal("expected non-nil logger")
	}
	if l.service != "test-svc" {
		t.Errorf("expected service 'test-svc', got %q", l.service)
	}
}

func TestNewInvalidLevel(t *testing.T) {
	cfg := &Config{Level: "invalid-level", Format: "json", Output: "stdout"}
	l := New(cfg, "test")
	if l == nil {
		t.Fatal("expected logger to be created even with invalid level")
	}
	if l.DebugEnabled() {
		t.Error("invalid level should fall back to info")
	}
}

func TestNewFromEnv(t *testing.T) {
	os.Setenv("LOG_LEVEL", "debug")
	os.Setenv("LOG_FORMAT", "json")
	defer os.Unsetenv("LOG_LEVEL")
	defer os.Unsetenv("LOG_FORMAT")

	l := NewFromEnv("env-svc")
	if !l.DebugEnabled() {
		t.Error("expected debug level from LOG_LEVEL")
	}
}

func TestNewWithWriter_JSON(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("debug", &buf)
	l.Debug("terminal completed", Fields(FieldOperation, "to_list", FieldItems, 3))

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", buf.String(), err)
	}
	if entry["message"] != "terminal completed" {
		t.Errorf("unexpected message: %v", entry["message"])
	}
	if entry[FieldOperation] != "to_list" {
		t.Errorf("expected operation field, got %v", entry[FieldOperation])
	}
	if entry[FieldItems] != float64(3) {
		t.Errorf("expected items=3, got %v", entry[FieldItems])
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("warn", &buf)
	l.Debug("hidden")
	l.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("expected no output below warn, got %q", buf.String())
	}
	l.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("expected warn output, got %q", buf.String())
	}
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error("nothing")
	if l.DebugEnabled() {
		t.Error("nop logger should not report debug as enabled")
	}
}

func TestWithComponentAndFields(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("info", &buf).
		WithComponent("pipeline").
		WithFields(map[string]interface{}{FieldPipelineID: "abc"})
	l.Info("hello")

	out := buf.String()
	if !strings.Contains(out, `"component":"pipeline"`) {
		t.Errorf("expected component field, got %q", out)
	}
	if !strings.Contains(out, `"pipeline_id":"abc"`) {
		t.Errorf("expected pipeline_id field, got %q", out)
	}
}

func TestWithError(t *testing.T) {
	var buf bytes.Buffer
	jsonLogger("info", &buf).WithError(errors.New("boom")).Error("failed")
	if !strings.Contains(buf.String(), `"error":"boom"`) {
		t.Errorf("expected error field, got %q", buf.String())
	}
}

func TestConsoleFormat(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&Config{Level: "info", Format: "console", NoColor: true}, "seqkit", &buf)
	l.Info("console line")
	out := buf.String()
	if !strings.Contains(out, "[SEQ][INF]") {
		t.Errorf("expected service tag and level, got %q", out)
	}
	if !strings.Contains(out, "console line") {
		t.Errorf("expected message, got %q", out)
	}
}

func TestGlobalLoggerDefaultsToNop(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	globalLogger = nil
	if GetGlobalLogger() == nil {
		t.Fatal("expected non-nil global logger")
	}
	Debug("x")
	Info("x")
	Warn("x")
	Error("x")
}

func TestInit(t *testing.T) {
	prev := globalLogger
	defer SetGlobalLogger(prev)

	Init(Config{Level: "debug", Format: "json"})
	if !GetGlobalLogger().DebugEnabled() {
		t.Error("expected Init to apply debug level")
	}
}

func TestRegisterAndGet(t *testing.T) {
	var buf bytes.Buffer
	l := jsonLogger("info", &buf)
	Register("chunk", l)
	defer Unregister("chunk")

	if Get("chunk") != l {
		t.Error("expected registered logger")
	}
	if Get("unregistered") == nil {
		t.Error("expected fallback logger for unregistered name")
	}
}

func TestConfigApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.ApplyDefaults()
	if cfg.Level != "info" || cfg.Format != "console" || cfg.Output != "stdout" {
		t.Errorf("unexpected defaults: %+v", cfg)
	}
	if !cfg.Timestamp {
		t.Error("expected timestamp enabled by default")
	}
}

func TestFields(t *testing.T) {
	f := Fields("a", 1, "b", "two", 3, "ignored", "dangling")
	if f["a"] != 1 || f["b"] != "two" {
		t.Errorf("unexpected fields: %v", f)
	}
	if len(f) != 2 {
		t.Errorf("expected 2 fields, got %d", len(f))
	}
}

func TestErrorAndDurationFields(t *testing.T) {
	ef := ErrorFields("single", errors.New("bad"))
	if ef[FieldOperation] != "single" || ef[FieldError] != "bad" {
		t.Errorf("unexpected error fields: %v", ef)
	}
	df := DurationFields("count", 1500*time.Millisecond)
	if df[FieldDuration] != int64(1500) {
		t.Errorf("expected 1500ms, got %v", df[FieldDuration])
	}
	merged := MergeWithError(nil, errors.New("x"))
	if merged[FieldError] != "x" {
		t.Errorf("expected merged error, got %v", merged)
	}
}
