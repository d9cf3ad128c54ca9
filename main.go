package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"backend_tigo/api"
	"backend_tigo/config"
	"backend_tigo/database"
	"backend_tigo/services"

	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// initDB creates the database when needed, connects and migrates it
func initDB(cfg *config.Config, logger *logrus.Logger) *gorm.DB {
	logger.Info("initializing database")

	if err := database.CreateDatabaseIfNotExists(cfg, logger); err != nil {
		logger.WithError(err).Fatal("failed to create database")
	}

	db, err := database.Connect(cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to database")
	}

	return db
}

// initRedis connects to Redis. Sessions cannot work without it.
func initRedis(cfg *config.Config, logger *logrus.Logger) *redis.Client {
	ctx, cancel := context.WithTimeout(context.Background(), cfg.Redis.Timeout)
	defer cancel()

	client, err := database.InitRedis(ctx, cfg, logger)
	if err != nil {
		logger.WithError(err).Fatal("failed to connect to redis")
	}
	return client
}

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}
	logger := config.NewLogger(cfg.Logging)
	cfg.LogConfig(logger)

	db := initDB(cfg, logger)
	redisClient := initRedis(cfg, logger)
	defer redisClient.Close()

	store := database.NewGormStore(db)

	notifier, err := services.NewNotifier(cfg.Telegram, logger)
	if err != nil {
		logger.WithError(err).Warn("telegram alerts disabled")
		notifier = services.NopNotifier{}
	}

	catalog := services.NewCatalogService(store, notifier, logger)
	users := services.NewUserService(catalog, logger)
	if err := users.SeedAdmin(context.Background(), cfg.Admin); err != nil {
		logger.WithError(err).Fatal("failed to seed administrator account")
	}

	refresher := services.NewReportRefresher(cfg.Reports.RefreshSpec, func(ctx context.Context) error {
		return database.RefreshReportViews(ctx, db)
	}, logger)
	if err := refresher.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start report refresher")
	}
	defer refresher.Stop()

	router := api.NewRouter(api.Dependencies{
		Config:   cfg,
		Logger:   logger,
		Redis:    redisClient,
		Catalog:  catalog,
		Users:    users,
		Sessions: services.NewSessionService(store, redisClient, cfg.Session, logger),
		Reports:  services.NewReportAggregator(store, logger),
		Exporter: services.NewExporter(logger),
	})

	server := &http.Server{
		Addr:    cfg.App.Host + ":" + cfg.App.Port,
		Handler: router,
	}

	go func() {
		logger.WithFields(logrus.Fields{
			"addr": server.Addr,
			"env":  cfg.App.Env,
		}).Info("server started")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.WithError(err).Fatal("server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.WithError(err).Error("forced shutdown")
	}
}
