package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// StackFile is the project configuration read from the checkout root.
const StackFile = "devteam.yaml"

type Services struct {
	Backend  string `yaml:"backend"`
	Frontend string `yaml:"frontend"`
	Database string `yaml:"database"`
}

type Database struct {
	User string `yaml:"user"`
	Name string `yaml:"name"`
}

type Migrate struct {
	// Command is the shell line run inside the backend service.
	Command string `yaml:"command"`
}

type Schema struct {
	// Command prints the schema SDL on stdout inside the backend service.
	Command string `yaml:"command"`
	// Output is the host path (relative to the root) the SDL is written to.
	Output string `yaml:"output"`
}

type Types struct {
	// Command is the shell line run inside the frontend service.
	Command string `yaml:"command"`
}

// Task is a user-defined named shortcut. When Service is empty the command
// runs on the host, otherwise inside the named compose service. Interactive
// tasks run without the default command timeout, for watchers and shells.
type Task struct {
	Run         string `yaml:"run"`
	Service     string `yaml:"service"`
	Interactive bool   `yaml:"interactive"`
	Description string `yaml:"description"`
}

type Stack struct {
	Services Services          `yaml:"services"`
	Database Database          `yaml:"database"`
	Migrate  Migrate           `yaml:"migrate"`
	Schema   Schema            `yaml:"schema"`
	Types    Types             `yaml:"types"`
	Env      map[string]string `yaml:"env"`
	Tasks    map[string]Task   `yaml:"tasks"`
}

// ReadStack parses <root>/devteam.yaml. A missing file yields the defaults so
// the CLI works in a fresh checkout.
func ReadStack(root string) (Stack, error) {
	var out Stack
	data, err := os.ReadFile(filepath.Join(root, StackFile))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			applyDefaults(&out)
			return out, nil
		}
		return out, err
	}
	if err := yaml.Unmarshal(data, &out); err != nil {
		return out, fmt.Errorf("parse %s: %w", StackFile, err)
	}
	applyDefaults(&out)
	return out, nil
}

func applyDefaults(s *Stack) {
	if strings.TrimSpace(s.Services.Backend) == "" {
		s.Services.Backend = "backend"
	}
	if strings.TrimSpace(s.Services.Frontend) == "" {
		s.Services.Frontend = "frontend"
	}
	if strings.TrimSpace(s.Services.Database) == "" {
		s.Services.Database = "db"
	}
	if strings.TrimSpace(s.Database.User) == "" {
		s.Database.User = "devteam"
	}
	if strings.TrimSpace(s.Database.Name) == "" {
		s.Database.Name = "devteam"
	}
	if strings.TrimSpace(s.Migrate.Command) == "" {
		s.Migrate.Command = "alembic upgrade head"
	}
	if strings.TrimSpace(s.Schema.Command) == "" {
		s.Schema.Command = "strawberry export-schema devteam.api.schema"
	}
	if strings.TrimSpace(s.Schema.Output) == "" {
		s.Schema.Output = "schema.graphql"
	}
	if strings.TrimSpace(s.Types.Command) == "" {
		s.Types.Command = "npm run generate-types"
	}
	if s.Env == nil {
		s.Env = map[string]string{}
	}
	if s.Tasks == nil {
		s.Tasks = map[string]Task{}
	}
}
