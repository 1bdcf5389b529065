package main

import (
	"context"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"minbar/internal/model"
	"minbar/internal/pkg"
	"minbar/internal/repository/mysql"
	"minbar/internal/repository/redis"
	"minbar/internal/router"
	"minbar/internal/service"

	"github.com/joho/godotenv"
)

func main() {
	// .env is a development convenience; real deployments set the
	// environment directly.
	_ = godotenv.Load()

	// A missing signing secret makes every credential unverifiable, so
	// refuse to start without one.
	if err := pkg.SetSecret(os.Getenv("ENCODING_SECRET")); err != nil {
		slog.Error("startup failed", "error", err)
		os.Exit(1)
	}

	dsn := os.Getenv("MYSQL_DSN")
	if dsn == "" {
		dsn = "user:password@tcp(127.0.0.1:3306)/minbar?charset=utf8mb4&parseTime=True"
	}
	if err := mysql.InitDB(dsn); err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}

	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Submission{},
		&model.Post{},
		&model.Notification{},
		&model.ModerationOutbox{},
	); err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}

	var cache *redis.NotificationCacheRepository
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
		if err := redis.Init(addr, os.Getenv("REDIS_PASSWORD"), db); err != nil {
			slog.Error("redis connection failed", "error", err)
			os.Exit(1)
		}
		defer redis.Close()
		cache = redis.NewNotificationCacheRepository()
	}

	// Moderation events drain to Kafka when brokers are configured,
	// otherwise to the log.
	sender := service.Sender(service.LogSender)
	if brokers := os.Getenv("KAFKA_BROKERS"); brokers != "" {
		topic := os.Getenv("KAFKA_TOPIC")
		if topic == "" {
			topic = "moderation-events"
		}
		producer := pkg.NewKafkaProducer(pkg.KafkaConfig{
			Brokers: strings.Split(brokers, ","),
			Topic:   topic,
		})
		defer producer.Close()
		sender = service.KafkaSender(producer)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go service.NewOutboxRelayer(mysql.DB, sender).Run(ctx)

	addr := os.Getenv("HTTP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	r := router.InitRouter(mysql.DB, cache)
	slog.Info("listening", "addr", addr)
	if err := r.Run(addr); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
