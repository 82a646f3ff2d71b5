// Package main hosts the FileVora CLI entrypoint and command graph.
//
// The Cobra-based command tree covers remote conversions against the
// processing backend, the text agent that routes a request to a tool,
// local canvas editing, cloud imports, conversion history, and
// configuration scaffolding. Configuration resolution happens once per
// invocation through commandContext so subcommands can focus on user
// experience instead of wiring.
//
// Keep this package lean: add new functionality by extending the
// internal packages first, then surface it through dedicated commands
// or flags here.
package main
