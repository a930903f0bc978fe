package api

import (
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type RouterConfig struct {
	FrontendURL string
	BotToken    string
	InitDataTTL time.Duration
}

func NewRouter(h Handler, cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	corsCfg := cors.Config{
		AllowMethods:  []string{"GET"},
		AllowHeaders:  []string{"Origin", "Content-Type", initDataHeader},
		ExposeHeaders: []string{"Content-Length"},
		MaxAge:        12 * time.Hour,
	}
	if cfg.FrontendURL == "" || cfg.FrontendURL == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = strings.Split(cfg.FrontendURL, ",")
		corsCfg.AllowCredentials = true
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", h.Health)

	api := r.Group("/api")
	api.GET("/wheel", h.Wheel)
	api.GET("/packages", h.Packages)
	api.GET("/me", InitData(cfg.BotToken, cfg.InitDataTTL), h.Me)

	return r
}
