package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
)

func TestLoad_File(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	data := "version: 1\nlog_level: debug\nhttp_addr: \":9191\"\nfix_path: false\ntray:\n  title: Scripts\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvLogLevel, "")

	res, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	cfg := res.Config
	if cfg.Version != 1 {
		t.Errorf("Version = %d, want 1", cfg.Version)
	}
	if cfg.LogLevel() != zerolog.DebugLevel {
		t.Errorf("LogLevel = %v, want debug", cfg.LogLevel())
	}
	if cfg.HTTPAddr != ":9191" {
		t.Errorf("HTTPAddr = %q, want %q", cfg.HTTPAddr, ":9191")
	}
	if cfg.FixPath() {
		t.Error("FixPath = true, want false")
	}
	if cfg.Title() != "Scripts" {
		t.Errorf("Title = %q, want %q", cfg.Title(), "Scripts")
	}
	if cfg.Tooltip() != DefaultTooltip {
		t.Errorf("Tooltip = %q, want default", cfg.Tooltip())
	}
}

func TestLoad_Missing(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	t.Setenv(EnvLogLevel, "")

	res, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.Path != path {
		t.Errorf("Path = %q, want %q", res.Path, path)
	}
	if res.Config.LogLevel() != DefaultLogLevel {
		t.Errorf("LogLevel = %v, want default", res.Config.LogLevel())
	}
	if !res.Config.FixPath() {
		t.Error("FixPath = false, want default true")
	}
	if res.EnvFile != "" {
		t.Errorf("EnvFile = %q, want empty", res.EnvFile)
	}
}

func TestLoad_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte("tray: [unclosed\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestLoad_EnvFile(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "shellbar.env"), []byte("SHELLBAR_TEST_VAR=from-file\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("SHELLBAR_TEST_VAR", "")
	os.Unsetenv("SHELLBAR_TEST_VAR")

	res, err := Load(filepath.Join(dir, "config.yaml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if res.EnvFile == "" {
		t.Error("EnvFile is empty, want shellbar.env path")
	}
	if got := os.Getenv("SHELLBAR_TEST_VAR"); got != "from-file" {
		t.Errorf("SHELLBAR_TEST_VAR = %q, want %q", got, "from-file")
	}
}

func TestLogLevel_EnvOverride(t *testing.T) {
	t.Setenv(EnvLogLevel, "WARN")
	cfg := &Config{RawLogLevel: "debug"}
	if cfg.LogLevel() != zerolog.WarnLevel {
		t.Errorf("LogLevel = %v, want warn", cfg.LogLevel())
	}
}
