// Package services provides shared error classification and context
// annotation helpers used across the job client, session, and daemon layers.
package services
