package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidate_EmptyConfig(t *testing.T) {
	// Both paths are optional
	err := Validate(&Config{})
	assert.NoError(t, err)
}

func TestValidate_MissingFile(t *testing.T) {
	cfg := &Config{
		DesignsFile: filepath.Join(t.TempDir(), "does_not_exist.txt"),
	}

	err := Validate(cfg)
	assert.Error(t, err)
}

func TestLoadFromPath_ValidConfig(t *testing.T) {
	dir := t.TempDir()
	designs := writeTempFile(t, dir, "designs.txt", "AL10a30\n")
	stock := writeTempFile(t, dir, "stock.txt", "aL\n")

	configPath := writeTempFile(t, dir, "bouquetry_config.yaml",
		"designsFile: "+designs+"\nstockFile: "+stock+"\n")

	cfg, err := LoadFromPath(configPath)
	require.NoError(t, err)
	assert.Equal(t, designs, cfg.DesignsFile)
	assert.Equal(t, stock, cfg.StockFile)
}

func TestLoadFromPath_InvalidYAML(t *testing.T) {
	configPath := writeTempFile(t, t.TempDir(), "bouquetry_config.yaml",
		"designsFile: [not\n")

	_, err := LoadFromPath(configPath)
	assert.Error(t, err)
}

func TestLoadFromPath_MissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
