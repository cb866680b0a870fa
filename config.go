package main

import (
	"fmt"
	"os"
	"strings"
	"time"
)

// Config carries process-wide settings resolved once at startup and handed
// to the services explicitly.
type Config struct {
	Addr        string
	DSN         string
	JWTSecret   []byte
	TokenTTL    time.Duration
	AutoMigrate bool
}

// LoadConfig reads configuration from the environment. DB_DSN is mandatory;
// everything else has a development default.
func LoadConfig() (Config, error) {
	cfg := Config{
		Addr:        ":8081",
		DSN:         os.Getenv("DB_DSN"),
		TokenTTL:    30 * 24 * time.Hour,
		AutoMigrate: true,
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Addr = ":" + v
	}
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "dev-insecure-secret-change" // development fallback
	}
	cfg.JWTSecret = []byte(secret)
	if cfg.DSN == "" {
		return Config{}, fmt.Errorf("DB_DSN is not set. This project requires a Postgres DSN in DB_DSN")
	}
	if v := strings.ToLower(os.Getenv("DB_AUTO_MIGRATE")); v == "false" || v == "0" || v == "no" {
		cfg.AutoMigrate = false
	}
	return cfg, nil
}
