package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

type Config struct {
	Debug bool `env:"DEBUG" envDefault:"false"`

	Telegram struct {
		BotToken      string `env:"TELEGRAM_BOT_TOKEN,required,notEmpty"`
		Debug         bool   `env:"TELEGRAM_DEBUG" envDefault:"false"`
		UpdateTimeout int    `env:"TELEGRAM_UPDATE_TIMEOUT" envDefault:"60"`
		AdminID       int64  `env:"ADMIN_ID" envDefault:"0"`
	}

	// Mini App with the wheel, opened from the main menu
	WebAppURL string `env:"WEBAPP_URL"`

	SQLitePath string `env:"SQLITE_PATH" envDefault:"giankybot.db"`

	// Legacy ORM schema connection, disabled when empty
	DatabaseURL string `env:"DATABASE_URL"`

	Redis struct {
		Addr            string        `env:"REDIS_ADDR"`
		Password        string        `env:"REDIS_PASSWORD" envDefault:""`
		DB              int           `env:"REDIS_DB" envDefault:"0"`
		ConversationTTL time.Duration `env:"CONVERSATION_TTL" envDefault:"24h"`
	}

	HTTP struct {
		Addr        string        `env:"HTTP_ADDR"`
		FrontendURL string        `env:"FRONTEND_URL" envDefault:"*"`
		InitDataTTL time.Duration `env:"INIT_DATA_TTL" envDefault:"24h"`
	}
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	// .env is optional, production sets the variables directly
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error parse config: %w", err)
	}

	if cfg.Telegram.UpdateTimeout <= 0 {
		return nil, fmt.Errorf("TELEGRAM_UPDATE_TIMEOUT must be positive, got %d", cfg.Telegram.UpdateTimeout)
	}

	return cfg, nil
}
