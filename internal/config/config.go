package config

import (
	"os"

	"github.com/joho/godotenv"
)

// Config env names follow the WeChat cloudrun deployment contract:
// MYSQL_ADDRESS is "host:port".
type Config struct {
	MySQLUsername string
	MySQLPassword string
	MySQLAddress  string
	DBName        string
	WXAppID       string
	WXSecret      string
	ServerPort    string
}

func Load() *Config {
	// .env is optional; real deployments inject env vars directly.
	_ = godotenv.Load()

	return &Config{
		MySQLUsername: getEnv("MYSQL_USERNAME", "root"),
		MySQLPassword: getEnv("MYSQL_PASSWORD", ""),
		MySQLAddress:  getEnv("MYSQL_ADDRESS", "localhost:3306"),
		DBName:        getEnv("DB_NAME", "nxyz"),
		WXAppID:       getEnv("WX_APPID", ""),
		WXSecret:      getEnv("WX_SECRET", ""),
		ServerPort:    getEnv("PORT", "80"),
	}
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}
