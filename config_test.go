package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSiteConfigMissingFileUsesDefaults(t *testing.T) {
	cfg, err := loadSiteConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)
	assert.Equal(t, defaultSiteConfig(), cfg)
}

func TestLoadSiteConfigOverlaysDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	data := "name: Someone Else\nemail: someone@example.com\n"
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := loadSiteConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Someone Else", cfg.Name)
	assert.Equal(t, "someone@example.com", cfg.Email)
	// Untouched fields keep their defaults.
	assert.Equal(t, defaultSiteConfig().GitHubUser, cfg.GitHubUser)
}

func TestLoadSiteConfigRejectsInvalidValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("email: not-an-email\n"), 0o644))

	_, err := loadSiteConfig(path)
	assert.Error(t, err)
}

func TestLoadSiteConfigRejectsMalformedYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "site.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: [unclosed\n"), 0o644))

	_, err := loadSiteConfig(path)
	assert.Error(t, err)
}
