package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	FrontendURL string
	// SMTP Configuration
	EmailHost     string
	EmailPort     string
	EmailUser     string
	EmailPassword string
	// Recipient for all form submission emails
	RecipientEmail string
	// Upper bound on a single outbound SMTP session (dial + send)
	EmailSendTimeout time.Duration
}

func LoadConfig() (*Config, error) {
	// Load .env file (effective locally, ignored in production when absent)
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		EmailHost:        getEnv("EMAIL_HOST", "smtp.gmail.com"),
		EmailPort:        getEnv("EMAIL_PORT", "587"),
		EmailUser:        getEnv("EMAIL_USER", ""),
		EmailPassword:    getEnv("EMAIL_PASSWORD", ""),
		RecipientEmail:   getEnv("RECIPIENT_EMAIL", getEnv("EMAIL_USER", "info@autogamma.in")),
		EmailSendTimeout: time.Duration(getEnvInt("EMAIL_SEND_TIMEOUT_SECONDS", 15)) * time.Second,
	}

	if cfg.EmailUser == "" || cfg.EmailPassword == "" {
		log.Println("WARNING: EMAIL_USER/EMAIL_PASSWORD not configured. Form emails will be logged, not delivered.")
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
