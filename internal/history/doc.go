// Package history persists conversion records, newsletter subscribers, and
// contact messages in SQLite.
package history
