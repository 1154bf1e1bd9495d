package runner

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/MitchellMarkGeorge/DevTeam/cli/teamctl/internal/execx"
)

// ComposeArgs prepends the compose subcommand and -f file arguments to args,
// producing the full docker argv.
func ComposeArgs(fileArgs []string, args ...string) []string {
	return append([]string{"compose"}, append(append([]string{}, fileArgs...), args...)...)
}

// Compose runs `docker compose` with the provided -f arguments and subcommand.
// When dry is true it only prints the command to stderr.
func Compose(dry bool, fileArgs []string, args ...string) {
	ctx, cancel := execx.WithTimeout(10 * time.Minute)
	defer cancel()
	all := ComposeArgs(fileArgs, args...)
	if dry {
		fmt.Fprintln(os.Stderr, "+ docker "+strings.Join(all, " "))
		return
	}
	res := execx.RunCtx(ctx, "docker", all...)
	if res.Code != 0 {
		os.Exit(res.Code)
	}
}

// ComposeInteractive executes docker compose without a timeout for
// interactive usage (shells, log tailing).
func ComposeInteractive(dry bool, fileArgs []string, args ...string) {
	all := ComposeArgs(fileArgs, args...)
	if dry {
		fmt.Fprintln(os.Stderr, "+ docker "+strings.Join(all, " "))
		return
	}
	res := execx.Run("docker", all...)
	if res.Code != 0 {
		os.Exit(res.Code)
	}
}

// ComposeCapture runs docker compose and returns captured stdout. Unlike
// Compose it reports failure to the caller instead of exiting, so callers
// that post-process the output can skip their side effects.
func ComposeCapture(dry bool, fileArgs []string, args ...string) (string, execx.Result) {
	ctx, cancel := execx.WithTimeout(10 * time.Minute)
	defer cancel()
	all := ComposeArgs(fileArgs, args...)
	if dry {
		fmt.Fprintln(os.Stderr, "+ docker "+strings.Join(all, " "))
		return "", execx.Result{}
	}
	return execx.Capture(ctx, "docker", all...)
}

// Host executes a host binary with a default 10 minute timeout.
func Host(dry bool, name string, args ...string) {
	ctx, cancel := execx.WithTimeout(10 * time.Minute)
	defer cancel()
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return
	}
	res := execx.RunCtx(ctx, name, args...)
	if res.Code != 0 {
		os.Exit(res.Code)
	}
}

// HostInteractive runs a host command without a timeout.
func HostInteractive(dry bool, name string, args ...string) {
	if dry {
		fmt.Fprintln(os.Stderr, "+ "+name+" "+strings.Join(args, " "))
		return
	}
	res := execx.Run(name, args...)
	if res.Code != 0 {
		os.Exit(res.Code)
	}
}
