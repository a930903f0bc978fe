package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.Telegram.BotToken)
	assert.Equal(t, 60, cfg.Telegram.UpdateTimeout)
	assert.Equal(t, "giankybot.db", cfg.SQLitePath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Empty(t, cfg.Redis.Addr)
	assert.Equal(t, 24*time.Hour, cfg.Redis.ConversationTTL)
	assert.Empty(t, cfg.HTTP.Addr)
	assert.Equal(t, "*", cfg.HTTP.FrontendURL)
	assert.False(t, cfg.Debug)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_ID", "777")
	t.Setenv("WEBAPP_URL", "https://wheel.example.com")
	t.Setenv("REDIS_ADDR", "redis:6379")
	t.Setenv("CONVERSATION_TTL", "30m")
	t.Setenv("HTTP_ADDR", ":8080")
	t.Setenv("DEBUG", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, int64(777), cfg.Telegram.AdminID)
	assert.Equal(t, "https://wheel.example.com", cfg.WebAppURL)
	assert.Equal(t, "redis:6379", cfg.Redis.Addr)
	assert.Equal(t, 30*time.Minute, cfg.Redis.ConversationTTL)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.True(t, cfg.Debug)
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_BadTimeout(t *testing.T) {
	t.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	t.Setenv("TELEGRAM_UPDATE_TIMEOUT", "0")

	_, err := Load()
	assert.Error(t, err)
}
