package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	BackendBaseURL string
	AppPort        string
	DataDir        string
	AppEnv         string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		BackendBaseURL: os.Getenv("BACKEND_BASE_URL"),
		AppPort:        os.Getenv("APP_PORT"),
		DataDir:        os.Getenv("DATA_DIR"),
		AppEnv:         os.Getenv("APP_ENV"),
	}

	if cfg.BackendBaseURL == "" {
		log.Fatal("Environment variables not loaded properly")
	}
	if cfg.AppPort == "" {
		cfg.AppPort = "8080"
	}
	if cfg.DataDir == "" {
		cfg.DataDir = ".marocstar"
	}

	return cfg
}
