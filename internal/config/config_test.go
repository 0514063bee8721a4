package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "gpt-4o-mini", cfg.ContentModel)
	assert.Equal(t, 20*time.Second, cfg.ContentTimeout)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.False(t, cfg.LogJSON)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9999")
	t.Setenv("CONTENT_API_URL", "http://localhost:1234/v1/chat/completions")
	t.Setenv("CONTENT_TIMEOUT", "5s")
	t.Setenv("LOG_JSON", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9999", cfg.Addr)
	assert.Equal(t, "http://localhost:1234/v1/chat/completions", cfg.ContentAPIURL)
	assert.Equal(t, 5*time.Second, cfg.ContentTimeout)
	assert.True(t, cfg.LogJSON)
}
