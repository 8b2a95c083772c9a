package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App     AppConfig
	Editor  EditorConfig
	Auth    AuthConfig
	Tracing TracingConfig
}

type AppConfig struct {
	Port               string
	Environment        string
	LogFilePath        string
	WsLogFilePath      string
	CorsAllowedOrigins string
	RedisURL           string // empty disables cross-instance fan-out
}

type EditorConfig struct {
	SessionTTL   time.Duration
	HistoryLimit int    // 0 keeps every snapshot
	ChangesTopic string // watermill topic for document changes
}

type AuthConfig struct {
	JwtSecret string
}

type TracingConfig struct {
	Enabled  bool
	Endpoint string // OTLP HTTP collector, e.g. Jaeger on 4318
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	return &Config{
		App: AppConfig{
			Port:               getEnv("APP_PORT", "3000"),
			Environment:        getEnv("GO_ENV", "development"),
			LogFilePath:        getEnv("LOG_FILE_PATH", "logs/app.log"),
			WsLogFilePath:      getEnv("WS_LOG_FILE_PATH", "logs/live.log"),
			CorsAllowedOrigins: getEnv("CORS_ALLOWED_ORIGINS", "http://localhost:5173"),
			RedisURL:           getEnv("REDIS_URL", ""),
		},
		Editor: EditorConfig{
			SessionTTL:   time.Duration(getEnvAsInt("SESSION_TTL_MINUTES", 60)) * time.Minute,
			HistoryLimit: getEnvAsInt("HISTORY_LIMIT", 200),
			ChangesTopic: getEnv("DOCUMENT_CHANGES_TOPIC", "document.changed"),
		},
		Auth: AuthConfig{
			JwtSecret: getEnv("JWT_SECRET", "mockup-editor-dev-secret"),
		},
		Tracing: TracingConfig{
			Enabled:  getEnv("OTEL_ENABLED", "false") == "true",
			Endpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4318"),
		},
	}
}

func (c *Config) IsProduction() bool {
	return c.App.Environment == "production"
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}
