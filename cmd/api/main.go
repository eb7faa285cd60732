package main

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/craftfolio/booking-engine/internal/config"
	"github.com/craftfolio/booking-engine/internal/logger"
	"github.com/craftfolio/booking-engine/internal/middleware"
	"github.com/craftfolio/booking-engine/internal/notify"
	"github.com/craftfolio/booking-engine/internal/routes"
	"github.com/craftfolio/booking-engine/internal/store"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	kv, err := store.NewRedis(cfg.RedisURL)
	if err != nil {
		logger.Error("failed to connect to redis", "url", cfg.RedisURL, "err", err.Error())
		os.Exit(1)
	}

	var mailer notify.Service
	if ms, err := notify.NewMailerSend(cfg.MailerAPIKey, cfg.MailerFromName, cfg.MailerFromEmail); err == nil {
		mailer = ms
	} else {
		logger.Warn("mail disabled, using dev mailer", "reason", err.Error())
		mailer = notify.DevMailer{}
	}
	notifier := notify.NewDispatcher(mailer)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, kv, notifier)

	logger.Info("server running", "addr", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		logger.Error("failed to start server", "err", err.Error())
		os.Exit(1)
	}
}
