package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port string
	// SMTP relay settings
	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SenderEmail  string // falls back to SMTPUser when unset
	// Destination for company notifications
	ReceiverEmail string
	// Allowed browser origin for CORS
	ClientOrigin string
	// Directory with the static contact form (served when it exists)
	WebDir string
}

func LoadConfig() (*Config, error) {
	// Load .env if present; ignored in production where env comes from the host
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		SMTPHost:      getEnv("SMTP_HOST", ""),
		SMTPPort:      getEnvInt("SMTP_PORT", 587),
		SMTPUser:      getEnv("SMTP_USER", ""),
		SMTPPassword:  getEnv("SMTP_PASSWORD", ""),
		SenderEmail:   getEnv("SENDER_EMAIL", ""),
		ReceiverEmail: getEnv("RECEIVER_EMAIL", ""),
		ClientOrigin:  strings.TrimRight(getEnv("CLIENT_ORIGIN", "http://localhost:5173"), "/"),
		WebDir:        getEnv("WEB_DIR", "./web"),
	}

	if cfg.SenderEmail == "" {
		cfg.SenderEmail = cfg.SMTPUser
	}

	if cfg.SMTPHost == "" || cfg.SMTPUser == "" || cfg.SMTPPassword == "" {
		log.Println("WARNING: SMTP configuration is incomplete. Set SMTP_HOST, SMTP_PORT, SMTP_USER, and SMTP_PASSWORD.")
	}
	if cfg.ReceiverEmail == "" {
		log.Println("WARNING: RECEIVER_EMAIL is not set. Contact form submissions will be rejected.")
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
