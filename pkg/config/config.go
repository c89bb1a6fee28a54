package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	RedisURL      string
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int

	AdminUsername string
	AdminPassword string
	AdminEmail    string
	OwnerName     string

	UploadDir     string
	MaxUploadMB   int
	PublicBaseURL string
	CORSOrigins   string

	EmailJSServiceID  string
	EmailJSTemplateID string
	EmailJSPublicKey  string
	EmailJSBaseURL    string
}

// Load reads environment variables, optionally from a .env file if present.
// An empty DATABASE_URL or REDIS_URL selects the in-memory implementations.
func Load() Config {
	// Try to load .env if it exists; ignore error if file not found
	_ = godotenv.Load()

	cfg := Config{
		Port:          getEnv("PORT", "8080"),
		DatabaseURL:   os.Getenv("DATABASE_URL"),
		RedisURL:      os.Getenv("REDIS_URL"),
		JWTSecret:     getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:     getEnv("JWT_ISSUER", "portfolio"),
		JWTTTLMinutes: getEnvInt("JWT_TTL_MINUTES", 24*60),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		AdminEmail:    getEnv("ADMIN_EMAIL", "admin@example.com"),
		OwnerName:     os.Getenv("OWNER_NAME"),

		UploadDir:     getEnv("UPLOAD_DIR", "uploads"),
		MaxUploadMB:   getEnvInt("MAX_UPLOAD_MB", 5),
		PublicBaseURL: strings.TrimRight(os.Getenv("PUBLIC_BASE_URL"), "/"),
		CORSOrigins:   getEnv("CORS_ORIGINS", "*"),

		EmailJSServiceID:  os.Getenv("EMAILJS_SERVICE_ID"),
		EmailJSTemplateID: os.Getenv("EMAILJS_TEMPLATE_ID"),
		EmailJSPublicKey:  os.Getenv("EMAILJS_PUBLIC_KEY"),
		EmailJSBaseURL:    os.Getenv("EMAILJS_BASE_URL"),
	}
	if cfg.MaxUploadMB <= 0 {
		cfg.MaxUploadMB = 5
	}
	return cfg
}

// MaxUploadBytes is the upload size limit in bytes.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
