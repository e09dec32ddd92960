package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port             string
	CRMAPIURL        string
	CRMAPIKey        string
	StaticDir        string
	CORSAllowOrigins []string
}

func Load() *Config {
	godotenv.Load()

	cfg := &Config{
		Port:             getEnv("PORT", "8080"),
		CRMAPIURL:        getEnv("CRM_API_URL", ""),
		CRMAPIKey:        getEnv("CRM_API_KEY", ""),
		StaticDir:        getEnv("STATIC_DIR", "./public"),
		CORSAllowOrigins: getEnvList("CORS_ALLOW_ORIGINS", []string{"*"}),
	}

	// A missing CRM credential is not fatal here: dashboard requests
	// report it as a configuration error instead of the process dying.
	if cfg.CRMAPIKey == "" {
		log.Println("CRM_API_KEY is not set, dashboard requests will fail until it is configured")
	}
	if cfg.CRMAPIURL == "" {
		log.Println("CRM_API_URL is not set, dashboard requests will fail until it is configured")
	}

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvList(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var items []string
	for _, item := range strings.Split(value, ",") {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			items = append(items, trimmed)
		}
	}

	if len(items) == 0 {
		return defaultValue
	}
	return items
}
