package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings of the VAT calculator service.
type Config struct {
	ServiceName string
	Port        string
	GinMode     string
	LogFile     string
	LogLevel    string
	CORSOrigins []string
}

var defaultCORSOrigins = []string{"http://localhost:5173", "http://127.0.0.1:5173", "http://localhost:5174"}

// Load reads configs/.env when present, then the process environment.
func Load() Config {
	if err := godotenv.Load("configs/.env"); err != nil {
		log.Println("No configs/.env file found or error loading it")
	}
	return FromEnv()
}

// FromEnv builds a Config from environment variables only, falling back to development defaults.
func FromEnv() Config {
	cfg := Config{
		ServiceName: getEnv("SERVICE_NAME", "vat-api"),
		Port:        getEnv("PORT", "8080"),
		GinMode:     os.Getenv("GIN_MODE"),
		LogFile:     getEnv("LOG_FILE", "./logs/app.log"),
		LogLevel:    strings.ToLower(getEnv("LOG_LEVEL", "info")),
		CORSOrigins: defaultCORSOrigins,
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		origins := make([]string, 0)
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		if len(origins) > 0 {
			cfg.CORSOrigins = origins
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
