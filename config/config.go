package config

import "os"

type Config struct {
	Port     string
	GinMode  string
	DBDriver string
	DBDSN    string
}

// Load reads the service configuration from the environment. main loads the
// .env file beforehand, so plain env vars and .env entries look the same
// from here.
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		GinMode:  getEnv("GIN_MODE", ""),
		DBDriver: getEnv("DB_DRIVER", "mysql"),
		DBDSN:    getEnv("DB_DSN", "root:root@tcp(127.0.0.1:3306)/lunch_vote?charset=utf8mb4&parseTime=True&loc=Local"),
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
