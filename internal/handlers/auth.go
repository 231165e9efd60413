package handlers

import (
	"errors"
	"net/http"

	"stockroom/internal/auth"
	"stockroom/internal/config"
	emailService "stockroom/internal/email"
	"stockroom/internal/logger"
	"stockroom/internal/models"
	"stockroom/internal/store"
	"stockroom/internal/validation"

	"github.com/gin-gonic/gin"
)

func handleRegister(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validation.ValidateRegistration(req); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	st := c.MustGet("store").(*store.Store)

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		logger.Error("Failed to hash password", "username", req.Username, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	user, err := st.CreateUser(req.Username, hash, req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUsernameTaken) {
			respondError(c, http.StatusBadRequest, "Username already exists")
			return
		}
		logger.Error("Failed to create user", "username", req.Username, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	emailSvc, _ := c.Get("email_service")
	if service, ok := emailSvc.(*emailService.Service); ok && service.IsEnabled() && user.Email != "" {
		go func(u models.User) {
			if err := service.SendWelcomeEmail(&u); err != nil {
				logger.Warn("Failed to send welcome email",
					"user_id", u.ID,
					"error", err)
			}
		}(*user)
	}

	logger.Info("User registered", "user_id", user.ID, "username", user.Username)
	respondOK(c, http.StatusCreated, gin.H{"user": user})
}

func handleLogin(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if msg := validation.ValidateLogin(req); msg != "" {
		respondError(c, http.StatusBadRequest, msg)
		return
	}

	st := c.MustGet("store").(*store.Store)
	cfg := c.MustGet("config").(*config.Config)

	user, err := st.FindUserByUsername(req.Username)
	if err != nil || !auth.CheckPassword(req.Password, user.PasswordHash) {
		respondError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	token, err := auth.GenerateToken(user.ID, user.Username, []byte(cfg.SecretKey), cfg.TokenValidity)
	if err != nil {
		logger.Error("Failed to sign token", "user_id", user.ID, "error", err)
		respondError(c, http.StatusInternalServerError, "Internal server error")
		return
	}

	logger.Info("User logged in", "user_id", user.ID, "username", user.Username)
	respondOK(c, http.StatusOK, gin.H{
		"message": "Login successful",
		"token":   token,
		"user": gin.H{
			"id":       user.ID,
			"username": user.Username,
		},
	})
}
