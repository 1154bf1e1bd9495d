package execx

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

type Result struct {
	Code int
	Err  error
}

func Run(name string, args ...string) Result {
	return RunCtx(context.Background(), name, args...)
}

func RunCtx(ctx context.Context, name string, args ...string) Result {
	echo(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return result(ctx, cmd.Run())
}

// Capture runs a command and returns its stdout as a string plus the exit
// result. Stderr streams through to the host so tool errors stay visible.
func Capture(ctx context.Context, name string, args ...string) (string, Result) {
	echo(name, args)
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stderr = os.Stderr
	out, err := cmd.Output()
	return string(out), result(ctx, err)
}

func WithTimeout(d time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.Background(), d)
}

func echo(name string, args []string) {
	if os.Getenv("DEVTEAM_DEBUG") == "1" {
		fmt.Fprintf(os.Stderr, "+ %s\n", strings.Join(append([]string{name}, args...), " "))
	}
}

func result(ctx context.Context, err error) Result {
	code := 0
	if err != nil {
		// A deadline kills the child, so its ExitError reports -1. Check the
		// context first to keep the timeout code stable.
		if ctx.Err() == context.DeadlineExceeded {
			code = 124
		} else if ee, ok := err.(*exec.ExitError); ok {
			code = ee.ExitCode()
		} else {
			code = 1
		}
	}
	return Result{Code: code, Err: err}
}
