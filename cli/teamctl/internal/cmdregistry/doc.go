// Package cmdregistry maps task names to handler functions that receive a
// shared Context payload (environment, compose file set, stack config).
// Command implementations live in the internal/commands packages while
// main.go stays focused on flag parsing and dispatch.
package cmdregistry
