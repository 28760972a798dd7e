package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Telegram TelegramConfig
	Database DatabaseConfig
	Admin    AdminConfig
	JWT      JWTConfig
}

type TelegramConfig struct {
	Token       string
	AdminIDs    []int64
	PollTimeout int // long-poll timeout in seconds
}

type DatabaseConfig struct {
	Path string
}

// AdminConfig configures the HTTP API the admin dashboard talks to.
type AdminConfig struct {
	Port         string
	Env          string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// PasswordHash is a bcrypt hash of the dashboard password. Login is
	// disabled when empty.
	PasswordHash string
}

type JWTConfig struct {
	Secret string
	Expiry time.Duration
	Issuer string
}

func Load() *Config {
	cfg := &Config{
		Telegram: TelegramConfig{
			Token:       os.Getenv("TELEGRAM_BOT_TOKEN"),
			AdminIDs:    parseIDList(os.Getenv("ADMIN_IDS")),
			PollTimeout: 30,
		},
		Database: DatabaseConfig{
			Path: "courses_bot.db",
		},
		Admin: AdminConfig{
			Port:         "8099",
			Env:          "development",
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			PasswordHash: os.Getenv("ADMIN_PASSWORD_HASH"),
		},
		JWT: JWTConfig{
			Secret: "change-me-in-production",
			Expiry: 12 * time.Hour,
			Issuer: "kurator",
		},
	}
	if v := os.Getenv("DATABASE_PATH"); v != "" {
		cfg.Database.Path = v
	}
	if v := os.Getenv("ADMIN_PORT"); v != "" {
		cfg.Admin.Port = v
	}
	if v := os.Getenv("APP_ENV"); v != "" {
		cfg.Admin.Env = v
	}
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.JWT.Secret = v
	}
	return cfg
}

// parseIDList parses a comma-separated list of Telegram account ids.
func parseIDList(s string) []int64 {
	var ids []int64
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}
	return ids
}
