package main

import (
	"log"

	"stockroom/internal/config"
	"stockroom/internal/email"
	"stockroom/internal/handlers"
	"stockroom/internal/logger"
	"stockroom/internal/middleware"
	"stockroom/internal/store"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := config.Load()
	logger.Initialize(logger.ParseLevel(cfg.LogLevel))

	if cfg.SecretGenerated {
		logger.Warn("JWT_SECRET is not set; using a random ephemeral secret. " +
			"All tokens become invalid on restart. Set JWT_SECRET in production.")
	}

	st := store.New()

	emailService := email.NewService(cfg)
	if emailService.IsEnabled() {
		logger.Info("Email service enabled with Mailgun")
	} else {
		logger.Info("Email service disabled - Mailgun not configured")
	}

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	r.Use(middleware.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.CORS())
	r.Use(middleware.RateLimit(cfg))

	handlers.SetupRoutes(r, st, emailService, cfg)

	logger.Info("Server starting", "port", cfg.Port)
	log.Fatal(r.Run(":" + cfg.Port))
}
