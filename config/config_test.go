package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"

	"github.com/GfSE/CASCaDE-Reference-Implementation-sub002/vocabulary"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	assert.Equal(t, "en", cfg.Language)
	assert.Equal(t, language.English, cfg.Tag())
	require.NoError(t, cfg.Validate())
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
version: "1.2.0"
language: de
context: "https://example.org/context.jsonld"
namespaces:
  req: "https://example.org/requirements#"
`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "1.2.0", cfg.Version)
	assert.Equal(t, language.German, cfg.Tag())
	assert.Equal(t, "https://example.org/context.jsonld", cfg.Context)
}

func TestLoadRejectsBadLanguage(t *testing.T) {
	path := writeConfig(t, `language: "not a tag!"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsBadContext(t *testing.T) {
	path := writeConfig(t, `context: "not-an-iri"`)
	_, err := Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestApplyRegistersNamespaces(t *testing.T) {
	t.Cleanup(vocabulary.ResetNamespaces)

	cfg := Default()
	cfg.Namespaces = map[string]string{"req": "https://example.org/requirements#"}
	cfg.Apply()

	assert.True(t, vocabulary.IsRegisteredPrefix("req"))
}

func TestTagFallsBackToEnglish(t *testing.T) {
	cfg := &Config{}
	assert.Equal(t, language.English, cfg.Tag())
}
