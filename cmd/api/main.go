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
	"golang.org/x/crypto/bcrypt"

	"github.com/cynric/familymanagement-backend/internal/domain/ports"
	httphandlers "github.com/cynric/familymanagement-backend/internal/handlers/http"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/cache/redis"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/config"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/i18n"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/logging"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/metrics"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/persistence/postgres"
	"github.com/cynric/familymanagement-backend/internal/infrastructure/security"
	"github.com/cynric/familymanagement-backend/internal/services"
)

// @title        Family Management API
// @description  Backend do sistema de gestão familiar
// @BasePath     /

//go:generate swag init -g cmd/api/main.go -d ../../ -o ../../docs

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting family management backend",
		"env", cfg.Env,
		"version", cfg.Version,
	)

	db, err := postgres.NewDatabaseConnection(&cfg.Database, cfg.Logging.Level, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}
	defer func() {
		if err := postgres.Close(db); err != nil {
			logger.Error("failed to close database", "error", err)
		}
	}()

	i18nService, err := newI18nService(cfg.I18n, logger)
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)
	for _, lang := range i18nService.GetSupportedLanguages() {
		if missing := i18nService.MissingKeys(lang); len(missing) > 0 {
			logger.Warn("locale is missing keys", "language", lang, "keys", missing)
		}
	}

	appMetrics := metrics.NewMetrics("family")

	userCache, closeCache := newUserCache(cfg.Redis, logger)
	defer closeCache()

	// Repositories
	userRepo := postgres.NewUserRepository(db)
	uow := postgres.NewUnitOfWork(db)
	probe := postgres.NewDatabaseProbe(db)

	// Services
	userService := services.NewUserService(userRepo, uow, security.NewBcryptHasher(bcrypt.DefaultCost), userCache, appMetrics, logger)
	diagnosticsService := services.NewDiagnosticsService(probe, appMetrics, logger)

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := httphandlers.NewRouter(httphandlers.RouterOptions{
		BaseURL:        cfg.Server.BaseURL,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		Version:        cfg.Version,
		I18n:           i18nService,
		Metrics:        appMetrics,
		Logger:         logger,
		EnableSwagger:  cfg.Env != "production",
	}, httphandlers.Handlers{
		Health: httphandlers.NewHealthHandler(cfg.Version),
		DBTest: httphandlers.NewDBTestHandler(diagnosticsService, logger),
		Users:  httphandlers.NewUserHandler(userService, logger),
	})

	srv := &http.Server{
		Addr:              cfg.Server.Addr(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}

// newI18nService usa LOCALES_DIR quando o diretório existe; senão, os locales embutidos no binário
func newI18nService(cfg config.I18nConfig, logger ports.Logger) (*i18n.Service, error) {
	if info, err := os.Stat(cfg.LocalesDir); err == nil && info.IsDir() {
		return i18n.NewService(cfg.LocalesDir, cfg.DefaultLanguage)
	}

	logger.Info("locales dir not found, using embedded locales", "dir", cfg.LocalesDir)
	return i18n.NewEmbeddedService(cfg.DefaultLanguage)
}

// newUserCache conecta ao Redis quando REDIS_URL está definido.
// Falha de conexão desliga o cache em vez de derrubar o servidor.
func newUserCache(cfg config.RedisConfig, logger ports.Logger) (ports.UserCache, func()) {
	if cfg.URL == "" {
		logger.Info("user cache disabled")
		return ports.NoopUserCache{}, func() {}
	}

	client, err := redis.NewClientFromURL(cfg.URL)
	if err != nil {
		logger.Warn("redis unavailable, user cache disabled", "error", err)
		return ports.NoopUserCache{}, func() {}
	}

	logger.Info("user cache enabled", "ttl", cfg.CacheTTL.String())
	return redis.NewUserCache(client, cfg.CacheTTL), func() {
		if err := client.Close(); err != nil {
			logger.Error("failed to close redis client", "error", err)
		}
	}
}
