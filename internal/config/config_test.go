package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Host)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "./roles.json", cfg.RolesPath)
	assert.Empty(t, cfg.InvestigativeGroups)
}

func TestLoadConfig_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	data := `{
		"host": "127.0.0.1",
		"port": 9000,
		"log_level": "debug",
		"roles_path": "https://example.com/roles.json",
		"investigator_id": 53,
		"investigative_groups": [[1, 2, 3], [4, 5]]
	}`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1", cfg.Host)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "https://example.com/roles.json", cfg.RolesPath)
	assert.Equal(t, 53, cfg.InvestigatorID)
	assert.Equal(t, [][]int{{1, 2, 3}, {4, 5}}, cfg.InvestigativeGroups)
}

func TestLoadConfig_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app_config.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"port": 9000}`), 0o644))

	t.Setenv("LMM_PORT", "9100")
	t.Setenv("LMM_LOG_LEVEL", "warn")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Port)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestLoadConfig_Errors(t *testing.T) {
	dir := t.TempDir()

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"port":`), 0o644))
	_, err := LoadConfig(broken)
	assert.Error(t, err)

	badPort := filepath.Join(dir, "port.json")
	require.NoError(t, os.WriteFile(badPort, []byte(`{"port": 70000}`), 0o644))
	_, err = LoadConfig(badPort)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid port 70000")
}
