package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/handyhome/handyhome-api/internal/auth"
	"github.com/handyhome/handyhome-api/internal/config"
	"github.com/handyhome/handyhome-api/internal/db"
	"github.com/handyhome/handyhome-api/internal/server"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	gdb, err := db.Connect(cfg.DBDSN)
	if err != nil {
		logrus.WithError(err).Fatal("database connect failed")
	}
	if err := db.Migrate(gdb); err != nil {
		logrus.WithError(err).Fatal("database migration failed")
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logrus.WithError(err).Fatal("redis connect failed")
	}

	ttl := time.Duration(cfg.SessionExpiresMin) * time.Minute
	sessions := auth.NewSessionStore(rdb, ttl)

	app := server.New(server.Deps{
		Cfg:      cfg,
		DB:       gdb,
		Sessions: sessions,
	})

	logrus.WithField("port", cfg.AppPort).Info("starting api")
	if err := app.Listen(":" + cfg.AppPort); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
