package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/mongo"

	"github.com/linkup/linkup-api/internal/api"
	"github.com/linkup/linkup-api/internal/core/service"
	"github.com/linkup/linkup-api/internal/infrastructure/config"
	mongorepo "github.com/linkup/linkup-api/internal/infrastructure/db/mongo"
	redisrepo "github.com/linkup/linkup-api/internal/infrastructure/db/redis"
	"github.com/linkup/linkup-api/internal/infrastructure/queue"
	"github.com/linkup/linkup-api/pkg/logger"
)

func main() {
	cfg := config.Load(slog.Default())

	log := logger.Init(logger.Options{
		Level:   cfg.LogLevel,
		Pretty:  cfg.Env == "development",
		Service: "linkup-api",
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	client, db, err := mongorepo.Connect(ctx, mongorepo.Config{
		URI:      cfg.Mongo.URI,
		Database: cfg.Mongo.Database,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("mongodb connection failed")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.Warn().Err(err).Msg("mongodb disconnect failed")
		}
	}()

	rdb, err := redisrepo.Connect(ctx, redisrepo.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("redis connection failed")
	}
	defer func() { _ = rdb.Close() }()

	if err := ensureIndexes(ctx, db); err != nil {
		log.Fatal().Err(err).Msg("index creation failed")
	}

	// Notification pipeline: Redis-backed dedup feeding a sharded dispatcher.
	dedup := redisrepo.NewDedupChecker(rdb)
	notifRepo := mongorepo.NewNotificationRepository(db)
	notifService := service.NewNotificationService(notifRepo, dedup, log)
	dispatcher := queue.NewDispatcher(cfg.NotificationWorkers, notifService, log)
	dispatcher.Start(ctx)

	e := api.NewRouter(api.RouterDeps{
		DB:            db,
		Redis:         rdb,
		Notifier:      dispatcher,
		Notifications: notifService,
		JWTSecret:     cfg.JWTSecret,
		Policy:        service.ConnectionPolicy{RerequestAfterReject: cfg.RerequestAfterReject},
		Logger:        log,
	})

	go func() {
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server start failed")
		}
	}()
	log.Info().Str("port", cfg.Port).Str("env", cfg.Env).Msg("server started")

	<-ctx.Done()
	log.Info().Msg("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("server shutdown failed")
	}
}

// ensureIndexes creates every collection's indexes up front so the unique
// constraints hold from the first request.
func ensureIndexes(ctx context.Context, db *mongo.Database) error {
	if err := mongorepo.NewUserRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewConnectionStore(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewPostRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewJobRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	if err := mongorepo.NewMessageRepository(db).EnsureIndexes(ctx); err != nil {
		return err
	}
	return mongorepo.NewNotificationRepository(db).EnsureIndexes(ctx)
}
