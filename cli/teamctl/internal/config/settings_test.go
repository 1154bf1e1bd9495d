package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_Defaults(t *testing.T) {
	t.Setenv("DEVTEAM_CONFIG", filepath.Join(t.TempDir(), "absent.toml"))
	for _, k := range []string{"DEVTEAM_ROOT", "DEVTEAM_ENV", "DEVTEAM_DEBUG", "DEVTEAM_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.Env != "dev" || s.LogLevel != "info" || s.Debug {
		t.Fatalf("settings=%+v", s)
	}
}

func TestLoadSettings_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	data := "root = \"/srv/devteam\"\nenv = \"prod\"\nlog_level = \"debug\"\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEVTEAM_CONFIG", path)
	t.Setenv("DEVTEAM_ENV", "dev")
	for _, k := range []string{"DEVTEAM_ROOT", "DEVTEAM_DEBUG", "DEVTEAM_LOG_LEVEL"} {
		t.Setenv(k, "")
		os.Unsetenv(k)
	}
	s, err := LoadSettings()
	if err != nil {
		t.Fatalf("LoadSettings error: %v", err)
	}
	if s.Root != "/srv/devteam" {
		t.Fatalf("root=%q", s.Root)
	}
	if s.Env != "dev" {
		t.Fatalf("env override lost: %q", s.Env)
	}
	if s.LogLevel != "debug" {
		t.Fatalf("log_level=%q", s.LogLevel)
	}
}

func TestLoadSettings_BadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	if err := os.WriteFile(path, []byte("root = ["), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv("DEVTEAM_CONFIG", path)
	if _, err := LoadSettings(); err == nil {
		t.Fatal("expected decode error")
	}
}
