// Package shellx holds small helpers for building `bash -lc` command lines.
package shellx

import "strings"

// SingleQuote wraps s in single quotes and escapes any embedded single quotes
// for POSIX shells.
func SingleQuote(s string) string {
	if s == "" {
		return "''"
	}
	return "'" + strings.ReplaceAll(s, "'", "'\"'\"'") + "'"
}

// Line appends extra arguments to a configured command line, quoting each one
// so the result stays a single shell command.
func Line(command string, extra ...string) string {
	parts := []string{strings.TrimSpace(command)}
	for _, a := range extra {
		parts = append(parts, SingleQuote(a))
	}
	return strings.Join(parts, " ")
}
