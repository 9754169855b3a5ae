package config

import (
	"os"
)

// Config holds the application configuration. Every value can be set
// through an environment variable and has a default suitable for local
// development.
type Config struct {
	Port             string
	DBPath           string
	CORSAllowOrigins string
	EnablePprof      bool
}

// Load reads the configuration from the environment.
func Load() *Config {
	return &Config{
		Port:             getEnv("PORT", "5000"),
		DBPath:           getEnv("DB_PATH", "data/budgetbook.db"),
		CORSAllowOrigins: getEnv("CORS_ALLOW_ORIGINS", ""),
		EnablePprof:      getEnv("ENABLE_PPROF", "") == "true",
	}
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
