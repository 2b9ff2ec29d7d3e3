// Package config layers runtime configuration for the sleuth CLI:
// built-in defaults, a project sleuth.toml, SLEUTH_-prefixed
// environment variables, and Cobra flags, in increasing priority.
package config

import "github.com/sleuth-query/sleuth/internal/domain"

// RuntimeConfig is the fully resolved configuration for one CLI
// invocation, assembled by Provider.
type RuntimeConfig struct {
	ProjectRoot    string
	LogLevel       string
	Debug          bool
	NonInteractive bool
	JSON           bool

	// Presets are REGISTER statements folded into every compilation's
	// source registry ahead of the program's own REGISTER statements,
	// sourced from sleuth.toml's [[presets]] table.
	Presets []domain.RegisterQuery
}
