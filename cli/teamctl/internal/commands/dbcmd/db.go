// Package dbcmd implements database commands: running migrations inside the
// backend service and opening a psql shell.
package dbcmd

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/config"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/runner"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/shellx"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/waitfor"
)

const dbReadyTimeout = 60 * time.Second

// Register adds migrate and db-shell to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("migrate", handleMigrate)
	r.Register("db-shell", handleShell)
}

// migrateArgs builds the compose exec invocation for the migration tool.
// Extra CLI args are appended quoted, so `teamctl migrate downgrade -1`
// still reaches the tool as two arguments.
func migrateArgs(stack config.Stack, extra []string) []string {
	line := shellx.Line(stack.Migrate.Command, extra...)
	return []string{"exec", "-T", stack.Services.Backend, "bash", "-lc", line}
}

// readyArgs builds the in-network readiness probe. Probing through compose
// exec works in every environment, including ones that never publish the
// database port on the host.
func readyArgs(stack config.Stack) []string {
	return []string{
		"exec", "-T", stack.Services.Database,
		"pg_isready", "-q", "-U", stack.Database.User, "-d", stack.Database.Name,
	}
}

// shellArgs builds the interactive psql invocation for the database service.
func shellArgs(stack config.Stack) []string {
	return []string{"exec", stack.Services.Database, "psql", "-U", stack.Database.User, stack.Database.Name}
}

func handleMigrate(ctx *cmdregistry.Context) error {
	if !ctx.DryRun {
		log.Debugf("waiting for database service %q", ctx.Stack.Services.Database)
		wctx, cancel := context.WithTimeout(context.Background(), dbReadyTimeout)
		defer cancel()
		probe := func(context.Context) error {
			if _, res := runner.ComposeCapture(false, ctx.Files, readyArgs(ctx.Stack)...); res.Code != 0 {
				return fmt.Errorf("pg_isready exited %d", res.Code)
			}
			return nil
		}
		if err := waitfor.Poll(wctx, "database", 2*time.Second, probe); err != nil {
			return fmt.Errorf("database not ready: %w", err)
		}
	}
	runner.Compose(ctx.DryRun, ctx.Files, migrateArgs(ctx.Stack, ctx.Args)...)
	return nil
}

func handleShell(ctx *cmdregistry.Context) error {
	runner.ComposeInteractive(ctx.DryRun, ctx.Files, shellArgs(ctx.Stack)...)
	return nil
}
