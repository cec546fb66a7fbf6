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

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/01moynul/eshop-catalog-golang/internal/auth"
	"github.com/01moynul/eshop-catalog-golang/internal/config"
	"github.com/01moynul/eshop-catalog-golang/internal/database"
	"github.com/01moynul/eshop-catalog-golang/internal/handlers"
	"github.com/01moynul/eshop-catalog-golang/internal/logger"
	"github.com/01moynul/eshop-catalog-golang/internal/repository"
	"github.com/01moynul/eshop-catalog-golang/internal/routes"
	"github.com/01moynul/eshop-catalog-golang/internal/service"
)

func main() {
	// 0. --- Load Environment Variables (.env) ---
	if err := godotenv.Load(); err != nil {
		log.Println("WARNING: Could not find or load .env file. Relying on system environment variables.")
	}

	configFile := os.Getenv("CONFIG_FILE")
	if configFile == "" {
		configFile = "config.yaml"
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	zlog, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zlog.Sync() }()

	if err := run(cfg, zlog); err != nil {
		zlog.Fatal("Server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.AppConfig, zlog *zap.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. --- Database Connection ---
	db, err := database.OpenDB(cfg.Database, zlog)
	if err != nil {
		return err
	}
	defer func() {
		if err := database.Close(db); err != nil {
			zlog.Error("Failed to close database", zap.Error(err))
			return
		}
		zlog.Info("Database disconnected")
	}()

	if cfg.Database.AutoMigrate {
		if err := database.Migrate(db); err != nil {
			return err
		}
		zlog.Info("Database schema migrated")
	}

	// 2. --- Dependencies ---
	tokens := auth.NewTokenManager(cfg.Auth.JWTSecret, cfg.Auth.JWTExpiresIn)
	productService := service.NewProductService(repository.NewGormProductRepository(db), zlog)
	categoryService := service.NewCategoryService(repository.NewGormCategoryRepository(db))
	authService := service.NewAuthService(repository.NewGormUserRepository(db), tokens, zlog)

	if cfg.Auth.AdminEmail != "" && cfg.Auth.AdminPassword != "" {
		if err := authService.EnsureAdmin(ctx, cfg.Auth.AdminEmail, cfg.Auth.AdminPassword); err != nil {
			return err
		}
	}

	app := &handlers.Handlers{
		Products:   productService,
		Categories: categoryService,
		Auth:       authService,
		Log:        zlog,
	}

	// --- Router Setup ---
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	router := routes.SetupRouter(app, routes.Options{
		Tokens:     tokens,
		CORSOrigin: cfg.Server.CORSOrigin,
		Log:        zlog,
	})

	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// --- Start Server ---
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		zlog.Info("Server running", zap.String("addr", srv.Addr), zap.String("env", cfg.Server.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		zlog.Info("Shutting down gracefully...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			zlog.Error("Could not close connections in time, forcefully shutting down", zap.Error(err))
			return srv.Close()
		}
		zlog.Info("Server closed")
		return nil
	})
	return g.Wait()
}
