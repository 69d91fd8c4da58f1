package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(writeConfig(t, "env: development\n"))
	require.NoError(t, err)

	assert.Equal(t, 3353, cfg.Port)
	assert.True(t, cfg.IsDev())
	assert.Equal(t, "dongne_wiki", cfg.Database.Name)
	assert.Contains(t, cfg.NaverMap.Endpoint, "map-geocode")
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(writeConfig(t, "prot: 8080\n"))
	assert.Error(t, err)
}

func TestLoadValidatesPort(t *testing.T) {
	_, err := Load(writeConfig(t, "port: 70000\n"))
	assert.Error(t, err)
}

func TestLoadAIProviders(t *testing.T) {
	cfg, err := Load(writeConfig(t, `
env: production
ai:
  providers:
    - id: openai
      name: OpenAI
      type: OpenAI
      api_key: sk-test
      default_model: gpt-4o-mini
      enabled: true
  hashtag_model:
    provider_id: openai
    model: gpt-4o-mini
`))
	require.NoError(t, err)

	assert.False(t, cfg.IsDev())
	require.Len(t, cfg.AI.Providers, 1)
	assert.Equal(t, "openai", cfg.AI.Providers[0].ID)
	require.NotNil(t, cfg.AI.HashtagModel)
	assert.Equal(t, "openai", cfg.AI.HashtagModel.ProviderID)
}

func TestDSNValue(t *testing.T) {
	dsn := DatabaseConfig{
		Host:      "db.local",
		Port:      3307,
		User:      "wiki",
		Password:  "secret",
		Name:      "dongne",
		Charset:   "utf8mb4",
		ParseTime: true,
		Loc:       "Local",
	}.DSNValue()
	assert.Contains(t, dsn, "wiki:secret@tcp(db.local:3307)/dongne?")
	assert.Contains(t, dsn, "parseTime=true")

	explicit := DatabaseConfig{DSN: "user@tcp(h:3306)/db"}.DSNValue()
	assert.Equal(t, "user@tcp(h:3306)/db", explicit)
}

func TestRedisURLValue(t *testing.T) {
	assert.Equal(t, "redis://localhost:6379/0", RedisConfig{}.URLValue())
	assert.Equal(t, "redis://existing:6379/1", RedisConfig{URL: "redis://existing:6379/1"}.URLValue())
	assert.Equal(t, "redis://bare-host:6379", RedisConfig{URL: "bare-host:6379"}.URLValue())

	url := RedisConfig{Host: "cache.local", Port: 6380, Password: "pw", DB: 2, TLS: true}.URLValue()
	assert.Contains(t, url, "rediss://")
	assert.Contains(t, url, "cache.local:6380")
	assert.Contains(t, url, "/2")
}
