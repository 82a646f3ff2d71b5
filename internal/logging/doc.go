// Package logging builds the application's slog loggers with console and
// JSON handlers and re-exports the attribute constructors used throughout
// the codebase.
package logging
