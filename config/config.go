package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig holds runtime settings sourced from the environment.
type AppConfig struct {
	Port     string
	DBDriver string
	DBPath   string
	MySQLDSN string

	JWTSecret string

	MidtransBaseURL   string
	MidtransServerKey string
	GatewayTimeout    time.Duration

	RedisAddr string
	RedisDB   int

	SyncRateLimit  int
	SyncRateWindow time.Duration

	CORSOrigins []string
}

var App AppConfig

// LoadConfig reads the environment into App. Call after godotenv.Load.
func LoadConfig() {
	App = AppConfig{
		Port:              getEnv("PORT", "8080"),
		DBDriver:          getEnv("DB_DRIVER", "sqlite"),
		DBPath:            getEnv("DB_PATH", "kurniasari.db"),
		MySQLDSN:          getEnv("MYSQL_DSN", ""),
		JWTSecret:         getEnv("JWT_SECRET", "dev-secret-change-me"),
		MidtransBaseURL:   getEnv("MIDTRANS_BASE_URL", "https://api.sandbox.midtrans.com"),
		MidtransServerKey: getEnv("MIDTRANS_SERVER_KEY", ""),
		GatewayTimeout:    getEnvDuration("GATEWAY_TIMEOUT_SEC", 10*time.Second),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisDB:           getEnvInt("REDIS_DB", 0),
		SyncRateLimit:     getEnvInt("SYNC_RATE_LIMIT", 10),
		SyncRateWindow:    getEnvDuration("SYNC_RATE_WINDOW_SEC", time.Minute),
		CORSOrigins:       splitCSV(getEnv("CORS_ORIGINS", "http://localhost:3000")),
	}
}

func getEnv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func getEnvInt(key string, fallback int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	sec := getEnvInt(key, 0)
	if sec <= 0 {
		return fallback
	}
	return time.Duration(sec) * time.Second
}

func splitCSV(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
