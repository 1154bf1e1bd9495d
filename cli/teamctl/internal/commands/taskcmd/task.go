// Package taskcmd runs the user-defined named shortcuts declared under
// tasks: in devteam.yaml. Each task is one shell command line, executed on
// the host or inside a compose service.
package taskcmd

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"text/tabwriter"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/cmdregistry"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/config"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/runner"
	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/shellx"
)

// Register adds task and tasks to the registry.
func Register(r *cmdregistry.Registry) {
	r.Register("task", handleRun)
	r.Register("tasks", handleList)
}

// resolve finds a task by name and returns an error naming the known tasks
// when it is missing.
func resolve(tasks map[string]config.Task, name string) (config.Task, error) {
	t, ok := tasks[name]
	if !ok {
		if len(tasks) == 0 {
			return t, fmt.Errorf("unknown task %q (no tasks defined in %s)", name, config.StackFile)
		}
		return t, fmt.Errorf("unknown task %q (known: %s)", name, strings.Join(names(tasks), ", "))
	}
	if strings.TrimSpace(t.Run) == "" {
		return t, fmt.Errorf("task %q has no run command", name)
	}
	return t, nil
}

func names(tasks map[string]config.Task) []string {
	out := make([]string, 0, len(tasks))
	for n := range tasks {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

func handleRun(ctx *cmdregistry.Context) error {
	if len(ctx.Args) == 0 {
		return fmt.Errorf("usage: task <name> [args...]")
	}
	t, err := resolve(ctx.Stack.Tasks, ctx.Args[0])
	if err != nil {
		return err
	}
	line := shellx.Line(t.Run, ctx.Args[1:]...)
	if strings.TrimSpace(t.Service) == "" {
		// Interactive tasks (watchers, REPLs) must outlive the default
		// command timeout.
		if t.Interactive {
			runner.HostInteractive(ctx.DryRun, "bash", "-lc", line)
		} else {
			runner.Host(ctx.DryRun, "bash", "-lc", line)
		}
		return nil
	}
	if t.Interactive {
		runner.ComposeInteractive(ctx.DryRun, ctx.Files, "exec", t.Service, "bash", "-lc", line)
		return nil
	}
	runner.Compose(ctx.DryRun, ctx.Files, "exec", t.Service, "bash", "-lc", line)
	return nil
}

func handleList(ctx *cmdregistry.Context) error {
	if len(ctx.Stack.Tasks) == 0 {
		fmt.Printf("No tasks defined in %s\n", config.StackFile)
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	for _, n := range names(ctx.Stack.Tasks) {
		t := ctx.Stack.Tasks[n]
		where := "host"
		if strings.TrimSpace(t.Service) != "" {
			where = t.Service
		}
		fmt.Fprintf(w, "%s\t[%s]\t%s\n", n, where, t.Description)
	}
	return w.Flush()
}
