package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/amrita3792/subidha-home-services-server/cmd/api/router"
	"github.com/amrita3792/subidha-home-services-server/internal/config"
	cacheAdapter "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/cache/adapter"
	cacheport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/cache/port"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/database"
	queueAdapter "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/adapter"
	qport "github.com/amrita3792/subidha-home-services-server/internal/infrastructure/queue/port"
	"github.com/amrita3792/subidha-home-services-server/internal/infrastructure/realtime"
	"github.com/amrita3792/subidha-home-services-server/internal/middleware"
	"github.com/amrita3792/subidha-home-services-server/pkg/logger"
)

func main() {
	// Load .env file
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

	// Connect to the document store on startup
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := database.Connect(ctx, cfg.MongoURL)
	if err != nil {
		log.Fatal("failed to connect to mongo", zap.Error(err))
	}
	defer func() { _ = client.Disconnect(context.Background()) }()
	db := client.Database(cfg.MongoDatabase)

	// Cache and queue are optional collaborators: the server stays up without
	// them, catalog responses just skip the cache and offline notifications
	// are not recorded.
	var cache cacheport.Cache
	if redisCache, err := cacheAdapter.NewRedisCache(cfg.RedisURL); err != nil {
		log.Warn("redis unavailable, catalog cache disabled", zap.Error(err))
	} else {
		cache = redisCache
		defer func() { _ = redisCache.Close() }()
	}

	var queue qport.Client
	if asynqClient, err := queueAdapter.NewAsynqClient(cfg.RedisURL); err != nil {
		log.Warn("asynq unavailable, offline notifications disabled", zap.Error(err))
	} else {
		queue = asynqClient
		defer func() { _ = asynqClient.Close() }()
	}

	// Process-wide participant tracker, shared by every connection.
	rt := realtime.NewRouter()
	defer rt.Close()

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.CORS(), middleware.Logging(log))

	r.GET("/", func(c *gin.Context) {
		c.String(http.StatusOK, "Subidha Home Service Server is Running...")
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	router.RegisterRoutes(r, cfg, db, rt, cache, queue, log)

	srv := &http.Server{
		Addr:         ":" + cfg.ServerPort,
		Handler:      r,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
	}

	log.Info("server listening", zap.String("port", cfg.ServerPort))
	if err := srv.ListenAndServe(); err != nil {
		log.Fatal("server stopped", zap.Error(err))
	}
}
