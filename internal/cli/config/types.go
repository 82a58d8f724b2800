// Package config provides configuration management for the Teller CLI.
//
// Configuration is layered, highest priority last: built-in defaults, a
// teller.yaml file, TELLER_* environment variables, then explicitly set
// command-line flags.
package config

// Config holds all CLI configuration options.
type Config struct {
	// Debug surfaces the raw token and statement sequences of every chunk
	// before execution. TELLER_DEBUG=1 is the environment form.
	Debug bool `koanf:"debug"`
	// Verbose lowers the log level to debug.
	Verbose bool `koanf:"verbose"`
	// Format selects how account listings are rendered: table, json, plain.
	Format string `koanf:"format"`
	// Prompt is the REPL prompt.
	Prompt string `koanf:"prompt"`
	// HistoryFile is the REPL history location.
	HistoryFile string `koanf:"history_file"`
}

// Default configuration values.
const (
	DefaultFormat      = "table"
	DefaultPrompt      = "teller> "
	DefaultHistoryFile = ".teller_history"
)
