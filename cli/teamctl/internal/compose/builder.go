package compose

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Envs supported by the stack. Each one maps to deploy/compose.<env>.yml.
const (
	EnvDev  = "dev"
	EnvProd = "prod"
)

type Paths struct {
	// Root is the project checkout containing devteam.yaml.
	Root string
	// Deploy holds the compose files (Root/deploy).
	Deploy string
}

// DetectPaths resolves paths from the configured root or, failing that, from
// the binary location. The binary is expected under <root>/bin/teamctl.
func DetectPaths(root, exePath string) Paths {
	root = strings.TrimSpace(root)
	if root == "" {
		binDir := filepath.Dir(exePath)
		root = filepath.Join(binDir, "..")
	}
	root = filepath.Clean(root)
	return Paths{Root: root, Deploy: filepath.Join(root, "deploy")}
}

// ValidEnv reports whether env names a known compose file set.
func ValidEnv(env string) bool {
	return env == EnvDev || env == EnvProd
}

// Files builds docker compose -f arguments for the given environment:
// the base file, the per-env file, and an optional root-level override.
func Files(p Paths, env string) ([]string, error) {
	if !ValidEnv(env) {
		return nil, fmt.Errorf("unknown environment: %s (expected %s or %s)", env, EnvDev, EnvProd)
	}
	args := []string{"-f", filepath.Join(p.Deploy, "compose.yml")}
	args = append(args, "-f", filepath.Join(p.Deploy, fmt.Sprintf("compose.%s.yml", env)))
	if override := filepath.Join(p.Root, "compose.override.yml"); fileExists(override) {
		args = append(args, "-f", override)
	}
	return args, nil
}

func fileExists(path string) bool {
	st, err := os.Stat(path)
	return err == nil && !st.IsDir()
}
