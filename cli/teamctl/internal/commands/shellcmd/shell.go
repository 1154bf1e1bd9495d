// Package shellcmd implements the interactive container shells.
package shellcmd

import (
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/runner"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/shellx"
)

// Register adds backend-shell and frontend-shell to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("backend-shell", func(ctx *cmdregistry.Context) error {
		return handle(ctx, ctx.Stack.Services.Backend)
	})
	r.Register("frontend-shell", func(ctx *cmdregistry.Context) error {
		return handle(ctx, ctx.Stack.Services.Frontend)
	})
}

// execArgs builds the compose exec invocation: a login shell by default, or
// `bash -lc <args>` when a command is given.
func execArgs(service string, args []string) []string {
	if len(args) == 0 {
		return []string{"exec", service, "bash", "-l"}
	}
	line := shellx.Line(args[0], args[1:]...)
	return []string{"exec", service, "bash", "-lc", line}
}

func handle(ctx *cmdregistry.Context, service string) error {
	runner.ComposeInteractive(ctx.DryRun, ctx.Files, execArgs(service, ctx.Args)...)
	return nil
}
