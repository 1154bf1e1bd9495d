// Package runner centralizes helpers that execute host and docker-compose
// commands.
//
// The wrappers keep consistent timeout, dry-run logging, and exit-handling
// semantics across the CLI: a failing child process terminates teamctl with
// the child's exit code, which is the only failure signal the task layer
// adds on top of the tools it delegates to.
package runner
