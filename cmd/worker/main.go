package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/amrita3792/subidha-home-services-server/internal/config"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/database"
	queueAdapter "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/adapter"
	"github.com/amrita3792/subidha-home-services-server/internal/pkg/chat/application/task"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

// The worker consumes background tasks produced by the API: currently the
// offline-message notifications enqueued when a private message arrives for a
// receiver with no live socket.
func main() {
	if err := godotenv.Load(); err != nil {
		logger.Global().Warn(".env file not found or could not be loaded", zap.Error(err))
	}

	cfg := config.Load()

	log, err := logger.New(cfg.LogLevel)
	if err != nil {
		logger.Global().Fatal("failed to build logger", zap.Error(err))
	}
	logger.SetGlobal(log)
	defer func() { _ = log.Sync() }()

	connectCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(connectCtx, cfg.MongoURL)
	if err != nil {
		log.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	srv, err := queueAdapter.NewAsynqServer(cfg.RedisURL)
	if err != nil {
		log.Fatal("failed to build queue server", zap.Error(err))
	}

	task.RegisterOfflineMessageTask(srv, db)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	log.Info("worker running")
	if err := srv.Run(ctx); err != nil {
		log.Fatal("worker stopped", zap.Error(err))
	}
}
