package logging_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/lkho/lrc-maker/internal/config"
	"github.com/lkho/lrc-maker/internal/logging"
)

func newFileLogger(t *testing.T, format, level string) (*slog.Logger, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "logs", "lrcmaker.log")
	logger, err := logging.New(logging.Options{Format: format, Level: level, OutputPaths: []string{path}})
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return logger, path
}

func readLog(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	return string(content)
}

func TestConsoleLoggerFormatsComponentAndFields(t *testing.T) {
	logger, path := newFileLogger(t, "console", "info")

	logging.NewComponentLogger(logger, "drafts").Info("draft saved",
		logging.String(logging.FieldDraftID, "abc"),
		logging.Int(logging.FieldLines, 3),
		logging.String("name", "two words"),
	)

	got := readLog(t, path)
	for _, want := range []string{"INFO [drafts] draft saved", "draft_id=abc", "lines=3", `name="two words"`} {
		if !strings.Contains(got, want) {
			t.Fatalf("expected %q in %q", want, got)
		}
	}
	if strings.Contains(got, "\x1b[") {
		t.Fatalf("file output must not be coloured: %q", got)
	}
	if strings.Contains(got, ".go:") {
		t.Fatalf("expected no caller information in info logs, got %q", got)
	}
}

func TestConsoleLoggerRespectsLevel(t *testing.T) {
	logger, path := newFileLogger(t, "console", "warn")
	logger.Info("hidden")
	logger.Warn("shown", logging.Error(errors.New("boom")))

	got := readLog(t, path)
	if strings.Contains(got, "hidden") {
		t.Fatalf("info line should be filtered: %q", got)
	}
	if !strings.Contains(got, "WARN shown error=boom") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestConsoleLoggerIncludesCallerForDebug(t *testing.T) {
	logger, path := newFileLogger(t, "console", "debug")
	logger.Debug("with caller")
	if got := readLog(t, path); !strings.Contains(got, "logger_test.go:") {
		t.Fatalf("expected caller information, got %q", got)
	}
}

func TestJSONLogger(t *testing.T) {
	logger, path := newFileLogger(t, "json", "info")
	logger.Info("parsed", logging.String(logging.FieldFile, "song.lrc"))

	var entry map[string]any
	if err := json.Unmarshal([]byte(strings.TrimSpace(readLog(t, path))), &entry); err != nil {
		t.Fatalf("decode json log: %v", err)
	}
	if entry["msg"] != "parsed" || entry["level"] != "info" || entry["file"] != "song.lrc" {
		t.Fatalf("unexpected entry %v", entry)
	}
	if _, ok := entry["ts"]; !ok {
		t.Fatalf("expected ts key in %v", entry)
	}
}

func TestNewRejectsUnknownFormat(t *testing.T) {
	if _, err := logging.New(logging.Options{Format: "xml"}); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestNewFromConfig(t *testing.T) {
	cfg := config.Default()
	logger, err := logging.NewFromConfig(&cfg)
	if err != nil || logger == nil {
		t.Fatalf("NewFromConfig: %v", err)
	}
	if logger.Enabled(t.Context(), slog.LevelInfo) {
		t.Fatal("default config should log warnings and above only")
	}
}

func TestNopLogger(t *testing.T) {
	logger := logging.NewComponentLogger(nil, "x")
	if logger.Enabled(t.Context(), slog.LevelError) {
		t.Fatal("nop logger should be disabled")
	}
}
