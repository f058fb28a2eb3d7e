package config

import (
	"os"
	"strconv"
)

// Helper function to get environment variable with fallback default value
func GetEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// Helper function to get environment variable as integer with fallback
func GetEnvAsInt(key string, fallback int) int {
	valueStr := GetEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}

// AppConfig menampung seluruh konfigurasi aplikasi dari environment.
// Ada 2 level kredensial database: akun biasa (scoped) dan akun service
// untuk operasi admin (lihat internal/database/privileged.go).
type AppConfig struct {
	Port      string
	JWTSecret string
	TokenTTL  int // jam

	DBUser            string
	DBPassword        string
	DBHost            string
	DBPort            string
	DBName            string
	DBServiceUser     string
	DBServicePassword string

	UploadDir string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	MailFrom     string
}

func Load() AppConfig {
	return AppConfig{
		Port:      GetEnv("PORT", "3000"),
		JWTSecret: GetEnv("JWT_SECRET", "rahasia_kantor"),
		TokenTTL:  GetEnvAsInt("TOKEN_TTL_HOURS", 24),

		DBUser:            GetEnv("DB_USER", "root"),
		DBPassword:        GetEnv("DB_PASSWORD", ""),
		DBHost:            GetEnv("DB_HOST", "127.0.0.1"),
		DBPort:            GetEnv("DB_PORT", "3306"),
		DBName:            GetEnv("DB_NAME", "sistem_pengajuan"),
		DBServiceUser:     GetEnv("DB_SERVICE_USER", GetEnv("DB_USER", "root")),
		DBServicePassword: GetEnv("DB_SERVICE_PASSWORD", GetEnv("DB_PASSWORD", "")),

		UploadDir: GetEnv("UPLOAD_DIR", "./uploads"),

		SMTPHost:     GetEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:     GetEnvAsInt("SMTP_PORT", 587),
		SMTPUser:     GetEnv("SMTP_USER", ""),
		SMTPPassword: GetEnv("SMTP_PASSWORD", ""),
		MailFrom:     GetEnv("MAIL_FROM", "no-reply@kantor.local"),
	}
}
