package config

import (
	"os"
	"strconv"
)

type Config struct {
	AppPort           string
	DBDSN             string
	SessionSecret     string
	SessionExpiresMin int
	RedisAddr         string
	RedisPassword     string
	AllowOrigins      string
}

func Load() Config {
	expires, _ := strconv.Atoi(get("SESSION_EXPIRES_MIN", "10080"))
	return Config{
		AppPort:           get("APP_PORT", "8080"),
		DBDSN:             must("DB_DSN"),
		SessionSecret:     must("SESSION_SECRET"),
		SessionExpiresMin: expires,
		RedisAddr:         get("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     get("REDIS_PASSWORD", ""),
		AllowOrigins:      get("ALLOW_ORIGINS", "http://localhost:3000"),
	}
}

func get(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func must(k string) string {
	v := os.Getenv(k)
	if v == "" {
		panic("missing env: " + k)
	}
	return v
}
