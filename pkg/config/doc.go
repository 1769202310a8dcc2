// Package config loads application configuration from environment variables
// into tagged structs, with optional .env file support for local development.
//
// Configuration structs declare their sources with `env` tags as understood
// by github.com/caarlos0/env; Load fills them in, MustLoad panics when a
// required variable is missing.
package config
