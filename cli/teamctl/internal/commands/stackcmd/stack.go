package stackcmd

import (
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/compose"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/runner"
)

// Register adds stack lifecycle commands to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("dev", func(ctx *cmdregistry.Context) error { return handleUp(ctx, compose.EnvDev) })
	r.Register("prod", func(ctx *cmdregistry.Context) error { return handleUp(ctx, compose.EnvProd) })
	r.Register("stop", handleStop)
	r.Register("restart", handleRestart)
	r.Register("status", handleStatus)
	r.Register("logs", handleLogs)
}

// upArgs builds the compose subcommand for bringing a stack up. Extra args
// are forwarded unchanged so `teamctl dev backend` starts a single service.
func upArgs(build bool, services []string) []string {
	args := []string{"up", "-d"}
	if build {
		args = append(args, "--build")
	}
	return append(args, services...)
}

func handleUp(ctx *cmdregistry.Context, env string) error {
	files, err := compose.Files(ctx.Paths, env)
	if err != nil {
		return err
	}
	runner.Compose(ctx.DryRun, files, upArgs(ctx.Build, ctx.Args)...)
	return nil
}

func handleStop(ctx *cmdregistry.Context) error {
	runner.Compose(ctx.DryRun, ctx.Files, "down")
	return nil
}

func handleRestart(ctx *cmdregistry.Context) error {
	args := append([]string{"restart"}, ctx.Args...)
	runner.Compose(ctx.DryRun, ctx.Files, args...)
	return nil
}

func handleStatus(ctx *cmdregistry.Context) error {
	runner.Compose(ctx.DryRun, ctx.Files, "ps")
	return nil
}

func handleLogs(ctx *cmdregistry.Context) error {
	args := append([]string{"logs"}, ctx.Args...)
	// Log tailing with -f is long-lived, so skip the batch timeout.
	runner.ComposeInteractive(ctx.DryRun, ctx.Files, args...)
	return nil
}
