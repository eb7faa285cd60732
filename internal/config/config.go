package config

import (
	"fmt"
	"os"
)

type Config struct {
	RedisURL        string
	ServerPort      string
	MailerAPIKey    string
	MailerFromName  string
	MailerFromEmail string
}

func Load() *Config {
	return &Config{
		RedisURL:        getEnv("REDIS_URL", "redis://localhost:6379/0"),
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		MailerAPIKey:    getEnv("MAILERSEND_API_KEY", ""),
		MailerFromName:  getEnv("MAILER_FROM_NAME", "Bookings"),
		MailerFromEmail: getEnv("MAILER_FROM_EMAIL", ""),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
