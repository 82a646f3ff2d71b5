// Package daemon runs the background service: it enforces single-instance
// execution with a lock file and exposes the local HTTP API over tools,
// jobs, the agent, and history.
package daemon
