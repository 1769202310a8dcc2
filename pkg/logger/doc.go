// Package logger provides a small factory around log/slog with functional
// options for level, format, output destination and static attributes, plus
// an env-tagged Config for services that configure logging from the
// environment.
package logger
