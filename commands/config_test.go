package commands

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")
	toml := `workdir = "/tmp/grant-tracker"

[spreadsheet]
url = "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms"

[credentials]
file = "/tmp/grant-tracker/credentials.json"

[share]
email = "grants@example.com"
role = "reader"
`

	require.NoError(t, os.WriteFile(file, []byte(toml), 0644))

	config, err := loadConfig(file)

	require.NoError(t, err)
	assert.Equal(t, "/tmp/grant-tracker", config.Workdir)
	assert.Equal(t, "https://docs.google.com/spreadsheets/d/1BxiMVs0XRA5nFMdKvBdBZjgmUUqptlbs74OgvE2upms", config.URL)
	assert.Equal(t, "/tmp/grant-tracker/credentials.json", config.Credentials)
	assert.Equal(t, "grants@example.com", config.ShareEmail)
	assert.Equal(t, "reader", config.ShareRole)
}

func TestLoadConfigWithMissingFile(t *testing.T) {
	config, err := loadConfig(filepath.Join(t.TempDir(), "missing.toml"))

	require.NoError(t, err)
	assert.Equal(t, "", config.Workdir)
	assert.Equal(t, "writer", config.ShareRole)
}

func TestLoadConfigWithInvalidFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "config.toml")

	require.NoError(t, os.WriteFile(file, []byte("not valid toml ==="), 0644))

	if _, err := loadConfig(file); err == nil {
		t.Fatalf("Expected error return for invalid configuration file, got %v", err)
	}
}
