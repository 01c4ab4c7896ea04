package main

import (
	"os"

	"github.com/quentinrf/berlin-clock/pkg/tlsconfig"
)

// Config holds application configuration
type Config struct {
	Port        string
	ClockSource string // "system" | "fixed"
	FixedTime   string // HH:mm:ss reported by the fixed clock
	Timezone    string // IANA zone of the system clock, "Local" for the host zone
	LogLevel    string
	LogFormat   string // "console" | "json"
	TLS         tlsconfig.Files
}

// loadConfig reads configuration from environment variables
func loadConfig() Config {
	return Config{
		Port:        getenv("PORT", "50051"),
		ClockSource: getenv("CLOCK_SOURCE", "system"),
		FixedTime:   getenv("FIXED_TIME", "12:00:00"),
		Timezone:    getenv("TIMEZONE", "Local"),
		LogLevel:    getenv("LOG_LEVEL", "info"),
		LogFormat:   getenv("LOG_FORMAT", "console"),
		TLS: tlsconfig.Files{
			Cert: os.Getenv("TLS_CERT"),
			Key:  os.Getenv("TLS_KEY"),
			CA:   os.Getenv("TLS_CA"),
		},
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
