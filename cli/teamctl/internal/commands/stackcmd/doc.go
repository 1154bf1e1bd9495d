// Package stackcmd implements compose lifecycle commands: bringing the dev
// or prod stack up, stopping it, and inspecting it.
package stackcmd
