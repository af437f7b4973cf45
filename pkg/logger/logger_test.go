package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		m := map[string]any{}
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			t.Fatalf("invalid json line %q: %v", line, err)
		}
		out = append(out, m)
	}
	return out
}

func TestLoggerInit(t *testing.T) {
	if err := Init(); err != nil {
		t.Fatalf("failed to initialize logger: %v", err)
	}
	if Get() == nil {
		t.Fatal("logger is nil after initialization")
	}
	if Named("test") == nil {
		t.Fatal("named logger is nil")
	}
}

func TestLoggerJSONFields(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithFormat("JSON"), WithLevel(slog.LevelDebug))

	ctx := context.Background()
	l.Info(ctx, "pipeline finished",
		String("sport", "nba"),
		Int("teams", 30),
		Bool("fallback", false),
		Duration("took", 1500*time.Millisecond),
		Error(errors.New("boom")),
	)

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	got := lines[0]
	if got["msg"] != "pipeline finished" || got["sport"] != "nba" || got["teams"] != float64(30) {
		t.Fatalf("unexpected record: %v", got)
	}
	if got["error"] != "boom" {
		t.Fatalf("error field not rendered: %v", got["error"])
	}
	src, _ := got["source"].(string)
	if !strings.Contains(src, "logger_test.go:") {
		t.Fatalf("source should point at the caller, got %q", src)
	}
}

func TestLoggerLevelsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithFormat(FormatJSON), WithLevel(slog.LevelWarn), WithSource(false))

	ctx := context.Background()
	l.Debug(ctx, "hidden")
	l.Info(ctx, "hidden")
	l.Named("espn").With(String("endpoint", "scoreboard")).Warn(ctx, "slow", Int("status", 200))

	lines := decodeLines(t, &buf)
	if len(lines) != 1 {
		t.Fatalf("expected only the warning, got %d lines", len(lines))
	}
	group, ok := lines[0]["espn"].(map[string]any)
	if !ok {
		t.Fatalf("expected espn group, got %v", lines[0])
	}
	if group["endpoint"] != "scoreboard" || group["status"] != float64(200) {
		t.Fatalf("unexpected group fields: %v", group)
	}
	if _, ok := lines[0]["source"]; ok {
		t.Fatal("source should be disabled")
	}
}

func TestLoggerFatalExits(t *testing.T) {
	var buf bytes.Buffer
	l := New(WithWriter(&buf), WithSource(false)).(*slogLogger)
	code := -1
	l.exit = func(c int) { code = c }

	l.Fatal(context.Background(), "cannot start")

	if code != 1 {
		t.Fatalf("expected exit code 1, got %d", code)
	}
	if !strings.Contains(buf.String(), "cannot start") {
		t.Fatalf("fatal message not logged: %q", buf.String())
	}
}

func TestSetLevelString(t *testing.T) {
	for _, in := range []string{"debug", "INFO", "", "warning", "error"} {
		if err := SetLevelString(in); err != nil {
			t.Errorf("SetLevelString(%q) returned %v", in, err)
		}
	}
	if err := SetLevelString("verbose"); !errors.Is(err, ErrUnknownLevel) {
		t.Errorf("expected ErrUnknownLevel, got %v", err)
	}
	SetLevel(slog.LevelInfo)
}

func TestNop(t *testing.T) {
	l := Nop()
	l.Error(context.Background(), "discarded")
	l.Named("x").With(Any("k", 1)).Warn(context.Background(), "discarded")
}
