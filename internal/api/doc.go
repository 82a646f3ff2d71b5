// Package api defines the transport-facing view types shared by the daemon
// HTTP surface and the CLI, plus converters from internal models.
package api
