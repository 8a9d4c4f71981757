package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_ParsesFields(t *testing.T) {
	path := writeConfigFile(t, `{
		"database_url": "postgres://localhost/matches",
		"port": 8080,
		"semantic_blend": 0.6,
		"cache_ttl_minutes": 30
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost/matches", cfg.DatabaseURL)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, 0.6, cfg.SemanticBlend)
	assert.Equal(t, 30*time.Minute, cfg.CacheTTL())
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{not json`)
	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestValidate_AcceptsDefaults(t *testing.T) {
	cfg := &Config{}
	assert.NoError(t, cfg.Validate())
}

func TestValidate_RejectsBadPort(t *testing.T) {
	cfg := &Config{Port: 70000}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsBlendOutOfRange(t *testing.T) {
	cfg := &Config{SemanticBlend: 1.5}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsNegativeWeight(t *testing.T) {
	cfg := &Config{SkillWeight: -0.1}
	assert.Error(t, cfg.Validate())
}

func TestValidate_RejectsMissingDictionary(t *testing.T) {
	cfg := &Config{DictionaryPath: filepath.Join(t.TempDir(), "missing.json")}
	assert.Error(t, cfg.Validate())
}

func TestMergeWithDefaults_FillsZeroFields(t *testing.T) {
	cfg := &Config{Port: 9090}
	merged := cfg.MergeWithDefaults(Config{
		DatabaseURL: "postgres://localhost/matches",
		Port:        8080,
		APIKey:      "key-from-defaults",
	})

	assert.Equal(t, 9090, merged.Port)
	assert.Equal(t, "postgres://localhost/matches", merged.DatabaseURL)
	assert.Equal(t, "key-from-defaults", merged.APIKey)
}
