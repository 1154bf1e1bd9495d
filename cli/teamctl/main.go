package main

import (
	"fmt"
	"os"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/codegen"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/dbcmd"
	preflightcmd "github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/preflight"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/shellcmd"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/stackcmd"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/commands/taskcmd"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/compose"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/config"
)

func usage(stack config.Stack) {
	fmt.Fprintf(os.Stderr, `teamctl — dev tasks for the DevTeam stack
Usage: teamctl [-e <env>] [--dry-run] <command> [args]

Commands:
  dev [--build] [svc...]     start the development stack
  prod [--build] [svc...]    start the production stack
  stop                       stop the stack
  restart [svc...], status, logs [svc...]
  migrate [args...]          run database migrations in the backend
  generate-schema [--output PATH]
                             export the GraphQL schema to a host file
  generate-types             run the frontend type-generation script
  backend-shell [cmd...]     interactive shell in the backend container
  frontend-shell [cmd...]    interactive shell in the frontend container
  db-shell                   psql in the database container
  task <name> [args...]      run a task defined in %s
  tasks                      list defined tasks
  preflight                  host checks: docker, compose files, config

Flags:
  -e, --env    compose environment: dev or prod (default: dev)
  --build      rebuild images on dev/prod
  --dry-run    print commands instead of executing

Environment:
  DEVTEAM_ROOT    project root (default: derived from the binary path)
  DEVTEAM_DEBUG=1 print executed commands
`, config.StackFile)
	if len(stack.Tasks) == 0 {
		return
	}
	names := make([]string, 0, len(stack.Tasks))
	for n := range stack.Tasks {
		names = append(names, n)
	}
	sort.Strings(names)
	fmt.Fprintf(os.Stderr, "\nTasks (%s):\n", config.StackFile)
	for _, n := range names {
		fmt.Fprintf(os.Stderr, "  %-14s %s\n", n, stack.Tasks[n].Description)
	}
}

func main() {
	settings, err := config.LoadSettings()
	if err != nil {
		die(err.Error())
	}
	if settings.Debug {
		_ = os.Setenv("DEVTEAM_DEBUG", "1")
	}
	if lvl, err := log.ParseLevel(settings.LogLevel); err == nil {
		log.SetLevel(lvl)
	}

	env := settings.Env
	var dryRun bool
	var build bool
	var wantHelp bool

	// rudimentary -e/--env parsing before subcmd
	args := os.Args[1:]
	out := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		switch a := args[i]; a {
		case "-e", "--env":
			if i+1 >= len(args) {
				fmt.Fprintln(os.Stderr, "-e requires value")
				os.Exit(2)
			}
			env = args[i+1]
			i++
		case "--dry-run":
			dryRun = true
		case "--build":
			build = true
		case "-h", "--help", "help":
			wantHelp = true
		default:
			out = append(out, a)
		}
	}
	args = out

	exe, _ := os.Executable()
	paths := compose.DetectPaths(settings.Root, exe)
	stack, err := config.ReadStack(paths.Root)
	if err != nil {
		die(err.Error())
	}
	// Export stack env so docker compose can substitute in its files.
	for k, v := range stack.Env {
		_ = os.Setenv(k, v)
	}

	// The bare invocation is the task list, not an error.
	if wantHelp || len(args) == 0 {
		usage(stack)
		return
	}

	if !compose.ValidEnv(env) {
		die(fmt.Sprintf("unknown environment: %s (expected %s or %s)", env, compose.EnvDev, compose.EnvProd))
	}
	files, err := compose.Files(paths, env)
	if err != nil {
		die(err.Error())
	}

	registry := cmdregistry.New()
	stackcmd.Register(registry)
	dbcmd.Register(registry)
	codegen.Register(registry)
	shellcmd.Register(registry)
	taskcmd.Register(registry)
	preflightcmd.Register(registry)

	cmd := args[0]
	handler, ok := registry.Lookup(cmd)
	if !ok {
		fmt.Fprintf(os.Stderr, "unknown command: %s\n\n", cmd)
		usage(stack)
		os.Exit(2)
	}
	ctx := &cmdregistry.Context{
		DryRun: dryRun,
		Env:    env,
		Build:  build,
		Args:   args[1:],
		Files:  files,
		Paths:  paths,
		Stack:  stack,
	}
	if err := handler(ctx); err != nil {
		die(err.Error())
	}
}

func die(msg string) { fmt.Fprintln(os.Stderr, msg); os.Exit(2) }
