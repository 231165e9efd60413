package config

import (
	"crypto/rand"
	"encoding/hex"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	SecretKey       string
	SecretGenerated bool
	TokenValidity   time.Duration
	RateLimitMax    int
	RateLimitWindow time.Duration
	LogLevel        string

	MailgunDomain      string
	MailgunAPIKey      string
	MailgunSenderEmail string
	MailgunSenderName  string
}

func Load() *Config {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getEnv("PORT", "3000"),
		SecretKey:       os.Getenv("JWT_SECRET"),
		TokenValidity:   getDurationEnv("TOKEN_VALIDITY", time.Hour),
		RateLimitMax:    getIntEnv("RATE_LIMIT_MAX", 200),
		RateLimitWindow: getDurationEnv("RATE_LIMIT_WINDOW", 15*time.Minute),
		LogLevel:        getEnv("LOG_LEVEL", "INFO"),

		MailgunDomain:      os.Getenv("MAILGUN_DOMAIN"),
		MailgunAPIKey:      os.Getenv("MAILGUN_API_KEY"),
		MailgunSenderEmail: getEnv("MAILGUN_SENDER_EMAIL", "no-reply@stockroom.local"),
		MailgunSenderName:  getEnv("MAILGUN_SENDER_NAME", "Stockroom"),
	}

	// Auth is never silently disabled: without a configured secret the server
	// runs on a random ephemeral one, which invalidates all tokens on restart.
	if cfg.SecretKey == "" {
		cfg.SecretKey = generateEphemeralSecret()
		cfg.SecretGenerated = true
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntEnv(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return defaultValue
}

func generateEphemeralSecret() string {
	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		panic("failed to generate ephemeral secret: " + err.Error())
	}
	return hex.EncodeToString(bytes)
}
