package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/hierroycarbono/aging-report-service/config"
	"github.com/hierroycarbono/aging-report-service/pkg/cache"
	"github.com/hierroycarbono/aging-report-service/pkg/logger"
	"github.com/hierroycarbono/aging-report-service/pkg/postgres"

	agingH "github.com/hierroycarbono/aging-report-service/internal/aging/handler"
	agingUCPkg "github.com/hierroycarbono/aging-report-service/internal/aging/usecase"
	"github.com/hierroycarbono/aging-report-service/internal/record"
	recH "github.com/hierroycarbono/aging-report-service/internal/record/handler"
	recRepoPkg "github.com/hierroycarbono/aging-report-service/internal/record/repository"
	recUCPkg "github.com/hierroycarbono/aging-report-service/internal/record/usecase"
)

func main() {
	// 1. Load Configuration
	_ = godotenv.Load() // Load .env file if it exists
	cfg := config.LoadEnv()

	// 2. Initialize Logger
	logConfig := &logger.ZapLoggerConfig{
		IsDevelopment:     false,
		Encoding:          "json",
		Level:             "info",
		DisableCaller:     cfg.Logger.DisableCaller,
		DisableStacktrace: cfg.Logger.DisableStacktrace,
	}
	if cfg.Server.AppEnv == "dev" || cfg.Server.AppEnv == "development" {
		logConfig.IsDevelopment = true
		logConfig.Encoding = cfg.Logger.Encoding
		logConfig.Level = cfg.Logger.Level
	}

	appLogger := logger.NewZapLogger(logConfig)
	defer appLogger.Sync()

	// 3. Build the Inventory Record Store
	repo, cleanup, err := buildRepository(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Could not build record store", zap.Error(err))
	}
	if cleanup != nil {
		defer cleanup()
	}

	// 4. Initialize Redis (optional; the report computes without it)
	redisClient, err := cache.NewRedisClient(&cache.Config{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	if err != nil {
		appLogger.Warn("Could not connect to Redis (distribution caching disabled)", zap.Error(err))
		redisClient = nil
	} else {
		defer redisClient.Close()
		appLogger.Info("Connected to Redis", zap.String("addr", cfg.Redis.Addr))
	}

	// 5. Initialize UseCases
	recordUC := recUCPkg.NewRecordUseCase(repo, appLogger)
	agingUC := agingUCPkg.NewAgingUseCase(recordUC, redisClient, appLogger, agingUCPkg.Options{
		IncludeZeroCounts:      cfg.Report.IncludeZeroCounts,
		ClearSelectionOnReload: cfg.Report.ClearSelectionOnReload,
		CacheTTL:               time.Duration(cfg.Report.CacheTTLSeconds) * time.Second,
	})

	// 6. Load the session snapshot
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if _, err := recordUC.Load(ctx); err != nil {
		cancel()
		appLogger.Fatal("Could not load inventory snapshot", zap.Error(err))
	}
	cancel()

	// 7. Initialize Handlers and Router
	recordHandler := recH.NewRecordHandler(recordUC, appLogger)
	agingHandler := agingH.NewAgingHandler(agingUC, appLogger)

	if cfg.Server.AppEnv != "dev" && cfg.Server.AppEnv != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())

	v1 := router.Group("/v1")
	recordHandler.RegisterRoutes(v1)
	agingHandler.RegisterRoutes(v1)

	// 8. Start HTTP Server
	port := cfg.Server.HTTPPort
	if !strings.HasPrefix(port, ":") {
		port = ":" + port
	}

	srv := &http.Server{
		Addr:    port,
		Handler: router,
	}

	appLogger.Info("Starting HTTP server", zap.String("port", port))
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("failed to serve", zap.Error(err))
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		appLogger.Error("forced shutdown", zap.Error(err))
	}
	appLogger.Info("Server stopped")
}

func buildRepository(cfg *config.Config, appLogger logger.ZapLogger) (record.Repository, func(), error) {
	switch cfg.Source.Kind {
	case "postgres":
		db, err := postgres.NewPostgres(&postgres.Config{
			Host:            cfg.Postgres.Host,
			Port:            cfg.Postgres.Port,
			User:            cfg.Postgres.User,
			Password:        cfg.Postgres.Password,
			DBName:          cfg.Postgres.DBName,
			SSLMode:         cfg.Postgres.SSLMode,
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
			ConnMaxIdleTime: time.Duration(cfg.Postgres.ConnMaxIdleTime) * time.Second,
		})
		if err != nil {
			return nil, nil, err
		}
		appLogger.Info("Connected to PostgreSQL database", zap.String("db_name", cfg.Postgres.DBName))
		return recRepoPkg.NewPGRepository(db), func() { db.Close() }, nil
	case "csv":
		return recRepoPkg.NewCSVRepository(cfg.Source.CSVPath), nil, nil
	case "synthetic":
		return recRepoPkg.NewSyntheticRepository(cfg.Source.SyntheticCount, cfg.Source.SyntheticSeed), nil, nil
	default:
		return nil, nil, fmt.Errorf("unknown source kind %q", cfg.Source.Kind)
	}
}
