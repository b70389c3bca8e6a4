package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"oasis-backend/booking"
)

// AppConfig holds the process-level settings read from the environment.
type AppConfig struct {
	Port        string
	GinMode     string
	LogMode     string
	CorsOrigins []string

	// SessionTTL is how long an untouched date selection survives.
	SessionTTL time.Duration
	// BookingWindowYears is how far ahead guests may pick dates.
	BookingWindowYears int
}

func LoadApp() AppConfig {
	return AppConfig{
		Port:               envOrDefault("PORT", "8080"),
		GinMode:            envOrDefault("GIN_MODE", ""),
		LogMode:            envOrDefault("LOG_MODE", "production"),
		CorsOrigins:        parseList(os.Getenv("CORS_ORIGINS"), []string{"*"}),
		SessionTTL:         getDurationEnv("SELECTION_TTL", 2*time.Hour),
		BookingWindowYears: getIntEnv("BOOKING_WINDOW_YEARS", booking.DefaultWindowYears),
	}
}

// Addr is the listen address for http.Server.
func (c AppConfig) Addr() string {
	if strings.HasPrefix(c.Port, ":") {
		return c.Port
	}
	return ":" + c.Port
}

func parseList(raw string, def []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return def
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return def
	}
	return out
}

func getIntEnv(key string, def int) int {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func getDurationEnv(key string, def time.Duration) time.Duration {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		if d, err := time.ParseDuration(value); err == nil && d > 0 {
			return d
		}
	}
	return def
}
