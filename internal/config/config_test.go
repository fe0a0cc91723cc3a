package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	cwd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(cwd) })
}

func clearEnv(t *testing.T) {
	for _, k := range []string{
		"SHELF_SOURCE", "SHELF_PUBLICATIONS_FILE", "SHELF_CLIENTS_FILE", "SHELF_COMMANDS_FILE",
		"DB_DSN", "SHELF_LOG_LEVEL", "SHELF_LOG_FORMAT", "SHELF_HASH_BUCKETS",
	} {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_Precedence(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	clearEnv(t)

	file := filepath.Join(dir, "shelf.yaml")
	require.NoError(t, os.WriteFile(file, []byte("publicationsFile: from_yaml.txt\nclientsFile: yaml_clients.txt\nhashBuckets: 7\n"), 0o644))
	t.Setenv("SHELF_PUBLICATIONS_FILE", "from_env.txt")

	cfg, err := Load(file)
	require.NoError(t, err)
	assert.Equal(t, "from_env.txt", cfg.PublicationsFile)
	assert.Equal(t, "yaml_clients.txt", cfg.ClientsFile)
	assert.Equal(t, 7, cfg.HashBuckets)
	assert.Equal(t, "data4commands.txt", cfg.CommandsFile)
}

func TestLoadEnvFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("DB_DSN=from_file\nSHELF_LOG_LEVEL=debug\n"), 0o644))
	t.Setenv("DB_DSN", "from_env")
	t.Setenv("SHELF_LOG_LEVEL", "")
	require.NoError(t, os.Unsetenv("SHELF_LOG_LEVEL"))

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "from_env", cfg.DSN)
	assert.Equal(t, "debug", cfg.LogLevel)
}

func TestLoad_Errors(t *testing.T) {
	chdir(t, t.TempDir())

	_, err := Load("missing.yaml")
	assert.Error(t, err)

	require.NoError(t, os.WriteFile("bad.yaml", []byte("hashBuckets: [1"), 0o644))
	_, err = Load("bad.yaml")
	assert.Error(t, err)

	t.Setenv("SHELF_HASH_BUCKETS", "many")
	_, err = Load("")
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	cfg := Default()
	cfg.Source = "ftp"
	cfg.HashBuckets = 0
	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Source")
	assert.Contains(t, err.Error(), "HashBuckets")

	cfg = Default()
	cfg.PublicationsFile = ""
	assert.Error(t, cfg.Validate())

	cfg.Source = SourcePostgres
	assert.NoError(t, cfg.Validate(), "files are not needed for postgres")

	cfg.DSN = ""
	assert.Error(t, cfg.Validate())
}
