// Package session tracks the lifecycle of a single tool interaction: file
// selection, job submission, cosmetic progress, and the terminal success or
// error state. Stale completions from superseded runs are discarded.
package session
