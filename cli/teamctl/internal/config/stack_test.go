package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestReadStack_Missing(t *testing.T) {
	cfg, err := ReadStack(t.TempDir())
	if err != nil {
		t.Fatalf("ReadStack error: %v", err)
	}
	if cfg.Services.Backend != "backend" || cfg.Services.Database != "db" {
		t.Fatalf("services=%+v", cfg.Services)
	}
	if cfg.Database.User != "devteam" || cfg.Database.Name != "devteam" {
		t.Fatalf("database=%+v", cfg.Database)
	}
	if cfg.Migrate.Command != "alembic upgrade head" {
		t.Fatalf("migrate=%q", cfg.Migrate.Command)
	}
}

func TestReadStack_FromYaml(t *testing.T) {
	dir := t.TempDir()
	yaml := "" +
		"services:\n  backend: api\n  database: postgres\n" +
		"database:\n  user: app\n" +
		"schema:\n  output: frontend/src/schema.graphql\n" +
		"env:\n  COMPOSE_PROJECT_NAME: devteam\n" +
		"tasks:\n  lint:\n    run: ruff check .\n    service: api\n    description: lint the backend\n" +
		"  psql:\n    run: psql\n    service: postgres\n    interactive: true\n"
	if err := os.WriteFile(filepath.Join(dir, StackFile), []byte(yaml), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := ReadStack(dir)
	if err != nil {
		t.Fatalf("ReadStack error: %v", err)
	}
	if cfg.Services.Backend != "api" {
		t.Fatalf("backend=%q", cfg.Services.Backend)
	}
	if cfg.Services.Frontend != "frontend" {
		t.Fatalf("frontend default lost: %q", cfg.Services.Frontend)
	}
	if cfg.Database.User != "app" || cfg.Database.Name != "devteam" {
		t.Fatalf("database=%+v", cfg.Database)
	}
	if cfg.Schema.Output != "frontend/src/schema.graphql" {
		t.Fatalf("schema output=%q", cfg.Schema.Output)
	}
	if cfg.Env["COMPOSE_PROJECT_NAME"] != "devteam" {
		t.Fatalf("env=%v", cfg.Env)
	}
	task, ok := cfg.Tasks["lint"]
	if !ok || task.Run != "ruff check ." || task.Service != "api" {
		t.Fatalf("task=%+v ok=%v", task, ok)
	}
	if !cfg.Tasks["psql"].Interactive {
		t.Fatalf("psql task=%+v", cfg.Tasks["psql"])
	}
}

func TestReadStack_BadYaml(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, StackFile), []byte("services: ["), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := ReadStack(dir); err == nil {
		t.Fatal("expected parse error")
	}
}
