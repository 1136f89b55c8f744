package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitLogsClearsOldFiles(t *testing.T) {
	dir := t.TempDir()
	stale := filepath.Join(dir, "old.json")
	if err := os.WriteFile(stale, []byte("{}"), 0o644); err != nil {
		t.Fatalf("seed stale file: %v", err)
	}
	keep := filepath.Join(dir, "keep.txt")
	if err := os.WriteFile(keep, []byte("x"), 0o644); err != nil {
		t.Fatalf("seed keep file: %v", err)
	}

	if err := InitLogs(dir); err != nil {
		t.Fatalf("InitLogs: %v", err)
	}
	if _, err := os.Stat(stale); !os.IsNotExist(err) {
		t.Error("expected stale .json file to be removed")
	}
	if _, err := os.Stat(keep); err != nil {
		t.Error("expected non-json file to survive")
	}
}

func TestInitLogsCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "logs")
	if err := InitLogs(dir); err != nil {
		t.Fatalf("InitLogs: %v", err)
	}
	if _, err := os.Stat(dir); err != nil {
		t.Errorf("expected directory to exist: %v", err)
	}
}

func TestLogJSON(t *testing.T) {
	dir := t.TempDir()
	v := map[string]any{"term": "食べる", "stars": 5}
	if err := LogJSON(dir, "query-1", v); err != nil {
		t.Fatalf("LogJSON: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "query-1.json"))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(b), "食べる") {
		t.Errorf("log file missing payload: %s", b)
	}
	// no leftover temp file
	if _, err := os.Stat(filepath.Join(dir, "query-1.json.tmp")); !os.IsNotExist(err) {
		t.Error("temp file was not cleaned up")
	}
}

func TestLogJSONStripsPath(t *testing.T) {
	dir := t.TempDir()
	if err := LogJSON(dir, "../escape", "x"); err != nil {
		t.Fatalf("LogJSON: %v", err)
	}
	if _, err := os.Stat(filepath.Join(dir, "escape.json")); err != nil {
		t.Errorf("expected name to be flattened into dir: %v", err)
	}
}

func TestLogErrorAppends(t *testing.T) {
	dir := t.TempDir()
	if err := LogError(dir, "first"); err != nil {
		t.Fatalf("LogError: %v", err)
	}
	if err := LogError(dir, "second"); err != nil {
		t.Fatalf("LogError: %v", err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "errors.log"))
	if err != nil {
		t.Fatalf("read errors.log: %v", err)
	}
	s := string(b)
	if !strings.Contains(s, "first") || !strings.Contains(s, "second") {
		t.Errorf("expected both messages, got %q", s)
	}
	if strings.Count(s, "\n") != 2 {
		t.Errorf("expected two lines, got %q", s)
	}
}
