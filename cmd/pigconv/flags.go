package main

import (
	"flag"
	"fmt"
	"os"
)

// CLIConfig holds command-line configuration
type CLIConfig struct {
	ConfigPath  string
	InputPath   string
	OutputPath  string
	ItemType    string
	Direction   string
	Validate    bool
	LogLevel    string
	LogFormat   string
	ShowVersion bool
	ShowHelp    bool
}

func parseFlags() *CLIConfig {
	cfg := &CLIConfig{}

	// Define flags with environment variable fallback
	flag.StringVar(&cfg.ConfigPath, "config",
		getEnv("PIGCONV_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: PIGCONV_CONFIG)")

	flag.StringVar(&cfg.ConfigPath, "c",
		getEnv("PIGCONV_CONFIG", ""),
		"Path to configuration file, empty for defaults (env: PIGCONV_CONFIG)")

	flag.StringVar(&cfg.InputPath, "in", "-",
		"Input document, - for stdin")

	flag.StringVar(&cfg.OutputPath, "out", "-",
		"Output document, - for stdout")

	flag.StringVar(&cfg.ItemType, "type",
		getEnv("PIGCONV_TYPE", "pig:anEntity"),
		"Item type tag of the document (env: PIGCONV_TYPE)")

	flag.StringVar(&cfg.Direction, "direction",
		getEnv("PIGCONV_DIRECTION", "from-jsonld"),
		"Conversion direction: from-jsonld, to-jsonld (env: PIGCONV_DIRECTION)")

	flag.StringVar(&cfg.LogLevel, "log-level",
		getEnv("PIGCONV_LOG_LEVEL", "warn"),
		"Log level: debug, info, warn, error (env: PIGCONV_LOG_LEVEL)")

	flag.StringVar(&cfg.LogFormat, "log-format",
		getEnv("PIGCONV_LOG_FORMAT", "text"),
		"Log format: json, text (env: PIGCONV_LOG_FORMAT)")

	flag.BoolVar(&cfg.Validate, "validate", false, "Validate the input and report the status without writing output")
	flag.BoolVar(&cfg.ShowVersion, "version", false, "Show version information")
	flag.BoolVar(&cfg.ShowVersion, "v", false, "Show version information")
	flag.BoolVar(&cfg.ShowHelp, "help", false, "Show help information")
	flag.BoolVar(&cfg.ShowHelp, "h", false, "Show help information")

	flag.Usage = func() {
		printDetailedHelp()
	}

	flag.Parse()

	return cfg
}

func validateFlags(cfg *CLIConfig) error {
	if cfg.ShowVersion || cfg.ShowHelp {
		return nil
	}

	if cfg.ConfigPath != "" {
		if _, err := os.Stat(cfg.ConfigPath); err != nil {
			return fmt.Errorf("config file not found: %s", cfg.ConfigPath)
		}
	}

	validDirections := []string{"from-jsonld", "to-jsonld"}
	if !contains(validDirections, cfg.Direction) {
		return fmt.Errorf("invalid direction: %s", cfg.Direction)
	}

	validLevels := []string{"debug", "info", "warn", "error"}
	if !contains(validLevels, cfg.LogLevel) {
		return fmt.Errorf("invalid log level: %s", cfg.LogLevel)
	}

	validFormats := []string{"json", "text"}
	if !contains(validFormats, cfg.LogFormat) {
		return fmt.Errorf("invalid log format: %s", cfg.LogFormat)
	}

	return nil
}

func printDetailedHelp() {
	_, _ = fmt.Fprintf(os.Stderr, `%s - Product Information Graph document converter

Usage: %s [options]

Options:
`, appName, os.Args[0])
	flag.PrintDefaults()
	_, _ = fmt.Fprintf(os.Stderr, `
Examples:
  # Convert a JSON-LD entity document to internal form
  %s --type=pig:anEntity --in=entity.jsonld --out=entity.json

  # Convert internal form back to JSON-LD
  %s --direction=to-jsonld --in=entity.json

  # Validate only, with a project configuration
  %s --config=pig.yaml --validate --in=entity.jsonld

Version: %s
`, os.Args[0], os.Args[0], os.Args[0], Version)
}

// Environment variable helper functions
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Utility function to check if slice contains string
func contains(slice []string, item string) bool {
	for _, s := range slice {
		if s == item {
			return true
		}
	}
	return false
}
