package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"resto-dashboard/internal/config"
	"resto-dashboard/internal/db"
	httpapi "resto-dashboard/internal/http"
	"resto-dashboard/internal/logger"
	"resto-dashboard/internal/middleware"
	"resto-dashboard/internal/order"
	"resto-dashboard/internal/store/memory"
	"resto-dashboard/internal/store/postgres"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log, err := logger.New(cfg.Env)
	if err != nil {
		panic(err)
	}
	defer log.Sync()

	loc, err := time.LoadLocation(cfg.ReportTimezone)
	if err != nil {
		log.Fatal("invalid REPORT_TIMEZONE", zap.String("tz", cfg.ReportTimezone), zap.Error(err))
	}

	ctx := context.Background()
	var repo order.Repository
	if cfg.DatabaseURL == "" {
		if cfg.Env == "production" {
			log.Fatal("DATABASE_URL is required in production")
		}
		log.Warn("DATABASE_URL is empty; serving seeded demo data from memory")
		repo = memory.Seeded(time.Now().In(loc))
	} else {
		pool, err := db.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			log.Fatal("database connection failed", zap.Error(err))
		}
		defer pool.Close()
		repo = postgres.New(pool)
	}

	middleware.InitMetrics()

	apiServer := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      httpapi.NewRouter(repo, log, cfg, loc),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info("reporting api ready", zap.String("base", "/api/reports"))
		log.Info("dashboard service listening",
			zap.String("addr", cfg.HTTPAddr),
			zap.String("timezone", loc.String()))
		if err := apiServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("http server failed", zap.Error(err))
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	ctxShutdown, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiServer.Shutdown(ctxShutdown); err != nil {
		log.Error("http server shutdown failed", zap.Error(err))
	}
}
