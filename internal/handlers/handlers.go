package handlers

import (
	"stockroom/internal/config"
	"stockroom/internal/email"
	"stockroom/internal/middleware"
	"stockroom/internal/store"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, st *store.Store, emailService *email.Service, cfg *config.Config) {
	r.Use(middleware.LogRequests())
	r.Use(addStoreContext(st))
	r.Use(addConfigContext(cfg))
	r.Use(addEmailServiceContext(emailService))

	api := r.Group("/api")
	{
		api.POST("/register", handleRegister)
		api.POST("/login", handleLogin)

		protected := api.Group("/")
		protected.Use(middleware.AuthRequired([]byte(cfg.SecretKey)))
		{
			protected.POST("/items", handleCreateItem)
			protected.GET("/items", handleListItems)
			protected.GET("/items/:id", handleGetItem)
			protected.PUT("/items/:id", handleUpdateItem)
			protected.DELETE("/items/:id", handleDeleteItem)
		}
	}
}

func addStoreContext(st *store.Store) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("store", st)
		c.Next()
	}
}

func addConfigContext(cfg *config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("config", cfg)
		c.Next()
	}
}

func addEmailServiceContext(emailService *email.Service) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("email_service", emailService)
		c.Next()
	}
}
