package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/piwi3910/toolbox/internal/config"
	"github.com/piwi3910/toolbox/internal/model"
	"github.com/piwi3910/toolbox/internal/project"
	"github.com/piwi3910/toolbox/internal/server/handlers"
	"github.com/piwi3910/toolbox/internal/server/router"
	"github.com/piwi3910/toolbox/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Log.Level))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	store, closeStore := newStore(cfg, baseLogger.Named("store"))
	defer closeStore()

	catalog, path, err := project.LoadOrCreateMaterials()
	if err != nil {
		baseLogger.Warn("failed to load materials, using built-in catalog",
			zap.String("path", path), zap.Error(err))
		catalog = model.DefaultMaterialCatalog()
	}

	h := handlers.New(store, catalog, baseLogger.Named("handlers"))
	engine := router.New(h, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}

// newStore returns the Redis project store when REDIS_ADDR is set and an
// in-memory store otherwise.
func newStore(cfg *config.Config, log *zap.Logger) (project.Store, func()) {
	if !cfg.UseRedis() {
		log.Info("using in-memory project store")
		return project.NewMemoryStore(), func() {}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	store := project.NewRedisStore(client, cfg.Redis.Prefix, cfg.Session.TTL)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := store.Ping(ctx); err != nil {
		log.Fatal("failed to connect to redis", zap.String("addr", cfg.Redis.Addr), zap.Error(err))
	}
	log.Info("using redis project store", zap.String("addr", cfg.Redis.Addr))

	return store, func() {
		if err := client.Close(); err != nil {
			log.Error("failed to close redis client", zap.Error(err))
		}
	}
}
