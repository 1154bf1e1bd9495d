// Package codegen implements the schema export and frontend type generation
// commands. Both delegate to tools inside the stack; the only host-side work
// is writing the exported schema file.
package codegen

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/config"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/runner"
)

// Register adds generate-schema and generate-types to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("generate-schema", handleSchema)
	r.Register("generate-types", handleTypes)
}

// exportArgs builds the compose exec invocation that prints the schema SDL
// on stdout. -T keeps stdout clean of TTY control sequences.
func exportArgs(stack config.Stack) []string {
	return []string{"exec", "-T", stack.Services.Backend, "bash", "-lc", stack.Schema.Command}
}

// typesArgs builds the compose exec invocation for the frontend codegen
// script. -T so the command also works without a TTY attached.
func typesArgs(stack config.Stack) []string {
	return []string{"exec", "-T", stack.Services.Frontend, "bash", "-lc", stack.Types.Command}
}

// outputPath resolves the schema output location against the project root.
func outputPath(root, configured, override string) string {
	out := strings.TrimSpace(override)
	if out == "" {
		out = configured
	}
	if !filepath.IsAbs(out) {
		out = filepath.Join(root, out)
	}
	return filepath.Clean(out)
}

func handleSchema(ctx *cmdregistry.Context) error {
	override := ""
	for i := 0; i < len(ctx.Args); i++ {
		if ctx.Args[i] == "--output" && i+1 < len(ctx.Args) {
			override = ctx.Args[i+1]
			i++
		}
	}
	out, res := runner.ComposeCapture(ctx.DryRun, ctx.Files, exportArgs(ctx.Stack)...)
	if res.Code != 0 {
		return fmt.Errorf("schema export failed (exit %d)", res.Code)
	}
	if ctx.DryRun {
		return nil
	}
	if strings.TrimSpace(out) == "" {
		return fmt.Errorf("schema export produced no output")
	}
	dest := outputPath(ctx.Paths.Root, ctx.Stack.Schema.Output, override)
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}
	if err := os.WriteFile(dest, []byte(out), 0o644); err != nil {
		return err
	}
	log.Infof("wrote %s (%d bytes)", dest, len(out))
	return nil
}

func handleTypes(ctx *cmdregistry.Context) error {
	runner.Compose(ctx.DryRun, ctx.Files, typesArgs(ctx.Stack)...)
	return nil
}
