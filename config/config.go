package config

import (
	"os"
	"strconv"
)

// Config holds every recognized environment option.
type Config struct {
	MongoURI   string
	Port       string
	JWTSecret  string
	SMTPHost   string
	SMTPPort   int
	SMTPUser   string
	SMTPPass   string
	AdminEmail string
	UploadDir  string
	BackupDir  string
}

// Load reads configuration from the environment, applying defaults for
// everything that is safe to default.
func Load() *Config {
	return &Config{
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:27017"),
		Port:       getEnv("PORT", "5000"),
		JWTSecret:  os.Getenv("JWT_SECRET"),
		SMTPHost:   getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:   getEnvInt("SMTP_PORT", 587),
		SMTPUser:   os.Getenv("SMTP_USER"),
		SMTPPass:   os.Getenv("SMTP_PASS"),
		AdminEmail: getEnv("ADMIN_EMAIL", os.Getenv("SMTP_USER")),
		UploadDir:  getEnv("UPLOAD_DIR", "uploads"),
		BackupDir:  getEnv("BACKUP_DIR", "backup/uploads"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}
