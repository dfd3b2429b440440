package config

import (
	"log"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

const defaultTimeout = 10 * time.Second

type Config struct {
	APIBaseURL     string
	RequestTimeout time.Duration
	StateDir       string
	ListenAddr     string
	LoginPath      string
	AppEnv         string
}

func LoadConfig() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		APIBaseURL:     os.Getenv("API_BASE_URL"),
		RequestTimeout: defaultTimeout,
		StateDir:       os.Getenv("STATE_DIR"),
		ListenAddr:     os.Getenv("LISTEN_ADDR"),
		LoginPath:      os.Getenv("LOGIN_PATH"),
		AppEnv:         os.Getenv("APP_ENV"),
	}

	if v := os.Getenv("REQUEST_TIMEOUT_SECONDS"); v != "" {
		secs, err := strconv.Atoi(v)
		if err != nil || secs <= 0 {
			log.Fatalf("invalid REQUEST_TIMEOUT_SECONDS: %q", v)
		}
		cfg.RequestTimeout = time.Duration(secs) * time.Second
	}

	if cfg.APIBaseURL == "" {
		log.Fatal("Environment variables not loaded properly: API_BASE_URL is required")
	}

	if cfg.StateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			log.Fatal("STATE_DIR not set and home directory unavailable")
		}
		cfg.StateDir = filepath.Join(home, ".webshop")
	}

	if cfg.ListenAddr == "" {
		cfg.ListenAddr = ":3000"
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = "/login"
	}

	return cfg
}
