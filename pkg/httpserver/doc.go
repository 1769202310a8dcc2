// Package httpserver wraps net/http's Server with functional options,
// env-tagged configuration, and graceful shutdown on context cancellation or
// SIGINT/SIGTERM.
package httpserver
