// Package config provides file-based configuration for the PIG reference
// implementation: the catalog language, project namespace prefixes, the
// JSON-LD context URI and the id-key set of the interchange transforms.
//
// Configuration is read once at startup from YAML (JSON is a subset) and
// applied explicitly; nothing in this package holds mutable global state.
package config

import (
	"fmt"
	"os"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/errors"
	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

// Config is the complete application configuration.
type Config struct {
	// Version is the semantic version of the configuration document.
	Version string `yaml:"version" json:"version"`

	// Language selects the status catalog language (IETF tag, default en).
	Language string `yaml:"language,omitempty" json:"language,omitempty"`

	// Context is the JSON-LD context URI emitted under "@context".
	Context string `yaml:"context,omitempty" json:"context,omitempty"`

	// IDKeys overrides the keys treated as id keys by the JSON-LD
	// transforms. Empty means the default ("id", "@id").
	IDKeys []string `yaml:"idKeys,omitempty" json:"idKeys,omitempty"`

	// Namespaces maps additional prefix registrations for the id grammar
	// (prefix → namespace IRI).
	Namespaces map[string]string `yaml:"namespaces,omitempty" json:"namespaces,omitempty"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Version:  "1.0.0",
		Language: "en",
	}
}

// Load reads and validates a configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "config", "Load", "read file")
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.WrapData(err, "config", "Load", "parse file")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks the configuration for consistency.
func (c *Config) Validate() error {
	if c.Language != "" {
		if _, err := language.Parse(c.Language); err != nil {
			return errors.WrapData(errors.ErrInvalidConfig, "config", "Validate",
				fmt.Sprintf("language %q is not a valid IETF tag", c.Language))
		}
	}
	for prefix, iri := range c.Namespaces {
		if prefix == "" || iri == "" {
			return errors.WrapData(errors.ErrInvalidConfig, "config", "Validate",
				"namespace registrations need both prefix and IRI")
		}
	}
	if c.Context != "" && !vocabulary.IsIRI(c.Context) {
		return errors.WrapData(errors.ErrInvalidConfig, "config", "Validate",
			fmt.Sprintf("context %q is not an IRI", c.Context))
	}
	return nil
}

// Tag returns the configured catalog language as a parsed tag.
func (c *Config) Tag() language.Tag {
	if c.Language == "" {
		return language.English
	}
	tag, err := language.Parse(c.Language)
	if err != nil {
		return language.English
	}
	return tag
}

// Apply registers the configured namespaces with the vocabulary registry.
// Call once at startup after Load.
func (c *Config) Apply() {
	for prefix, iri := range c.Namespaces {
		vocabulary.RegisterNamespace(prefix, iri)
	}
}
