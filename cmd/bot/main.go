package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/entoni-coder/telegrambot/internal/api"
	"github.com/entoni-coder/telegrambot/internal/config"
	"github.com/entoni-coder/telegrambot/internal/handler"
	"github.com/entoni-coder/telegrambot/internal/logger"
	"github.com/entoni-coder/telegrambot/internal/orm"
	"github.com/entoni-coder/telegrambot/internal/repo"
	"github.com/entoni-coder/telegrambot/internal/service"
	"github.com/entoni-coder/telegrambot/internal/state"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logger.Init("giankybot", false)
		logger.Fatal().Err(err).Msg("failed to load config")
	}
	logger.Init("giankybot", cfg.Debug)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := repo.Open(ctx, cfg.SQLitePath)
	if err != nil {
		logger.Fatal().Err(err).Str("path", cfg.SQLitePath).Msg("failed to open sqlite")
	}
	defer db.Close()

	r := repo.New(db)
	if err := r.Migrate(ctx); err != nil {
		logger.Fatal().Err(err).Msg("failed to create schema")
	}
	logger.Info().Str("path", cfg.SQLitePath).Msg("database ready")

	var states state.Store = state.NewMemory()
	if cfg.Redis.Addr != "" {
		rs, err := state.NewRedis(ctx, &redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		}, cfg.Redis.ConversationTTL)
		if err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Redis.Addr).Msg("failed to connect to redis")
		}
		defer rs.Close()
		states = rs
		logger.Info().Str("addr", cfg.Redis.Addr).Msg("conversation state in redis")
	}

	if cfg.DatabaseURL != "" {
		legacy, err := orm.Open(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to open ORM database")
		}
		defer legacy.Close()
		logger.Info().Msg("ORM schema migrated")
	}

	bot, err := tgbotapi.NewBotAPI(cfg.Telegram.BotToken)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to create bot")
	}
	bot.Debug = cfg.Telegram.Debug
	logger.Info().Str("username", bot.Self.UserName).Msg("authorized on telegram")

	svc := service.New(r)

	if cfg.HTTP.Addr != "" {
		apiHandler := api.New(svc)
		srv := &http.Server{
			Addr: cfg.HTTP.Addr,
			Handler: api.NewRouter(apiHandler, api.RouterConfig{
				FrontendURL: cfg.HTTP.FrontendURL,
				BotToken:    cfg.Telegram.BotToken,
				InitDataTTL: cfg.HTTP.InitDataTTL,
			}),
			ReadHeaderTimeout: 10 * time.Second,
		}

		go func() {
			logger.Info().Str("addr", cfg.HTTP.Addr).Msg("mini app API listening")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logger.Error().Err(err).Msg("mini app API stopped")
				stop()
			}
		}()

		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			if err := srv.Shutdown(shutdownCtx); err != nil {
				logger.Error().Err(err).Msg("failed to shut down mini app API")
			}
		}()
	}

	h := handler.New(bot, svc, states, cfg.WebAppURL, cfg.Telegram.AdminID)

	u := tgbotapi.NewUpdate(0)
	u.Timeout = cfg.Telegram.UpdateTimeout
	updates := bot.GetUpdatesChan(u)

	go func() {
		<-ctx.Done()
		bot.StopReceivingUpdates()
	}()

	logger.Info().Msg("bot started")
	if err := h.Start(ctx, updates); err != nil {
		logger.Error().Err(err).Msg("bot stopped with error")
	}
	logger.Info().Msg("bot stopped")
}
