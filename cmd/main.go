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
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"github.com/dmarochko/emergency_alert_system/internal/classifier"
	"github.com/dmarochko/emergency_alert_system/internal/config"
	v1 "github.com/dmarochko/emergency_alert_system/internal/handler/http/v1"
	"github.com/dmarochko/emergency_alert_system/internal/repository"
	"github.com/dmarochko/emergency_alert_system/internal/service"
	"github.com/dmarochko/emergency_alert_system/internal/translator"
	"github.com/dmarochko/emergency_alert_system/internal/webhook"
	"github.com/dmarochko/emergency_alert_system/pkg/logger"
	"github.com/dmarochko/emergency_alert_system/pkg/postgres"
	redisclient "github.com/dmarochko/emergency_alert_system/pkg/redis"
	"github.com/sirupsen/logrus"

	_ "github.com/dmarochko/emergency_alert_system/docs"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title Emergency Alert System API
// @version 1.0
// @description Intake, structuring and review of free-text emergency reports.
// @host localhost:8080
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name X-API-Key
func runMigrations(cfg *config.Config, log *logrus.Logger) error {
	log.Info("Running database migrations...")

	migrationURL := cfg.DatabaseURL
	if !strings.HasPrefix(migrationURL, "pgx5://") {
		migrationURL = strings.Replace(migrationURL, "postgres://", "pgx5://", 1)
	}

	m, err := migrate.New(
		"file://migrations",
		migrationURL,
	)
	if err != nil {
		return fmt.Errorf("could not create migrate instance: %w", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	log.Info("Database migrations applied successfully")
	return nil
}

func main() {
	// Загрузка конфигурации
	cfg, err := config.LoadConfig()
	if err != nil {
		logrus.Fatalf("Failed to load config: %v", err)
	}

	// Инициализация логгера
	log := logger.New(cfg.LogLevel)

	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Выбор хранилища заявок
	var alertRepo service.AlertRepository
	switch cfg.StorageBackend {
	case config.StoragePostgres:
		if err := runMigrations(cfg, log); err != nil {
			log.Fatalf("Failed to run database migrations: %v", err)
		}

		dbpool, err := postgres.NewPostgresDB(ctx, cfg)
		if err != nil {
			log.Fatalf("Failed to connect to PostgreSQL: %v", err)
		}
		defer dbpool.Close()
		log.Info("Successfully connected to PostgreSQL")

		alertRepo = repository.NewPostgresAlertRepository(dbpool)
	default:
		alertRepo = repository.NewMemoryAlertRepository()
		log.Info("Using in-memory alert storage")
	}

	// Инициализация переводчика и движка структурирования
	textTranslator := translator.NewHTTPTranslator(cfg.TranslatorURL, cfg.TranslatorAPIKey, cfg.TranslatorTimeout)
	engine := classifier.NewEngine(textTranslator, log)

	// Инициализация конвейера вебхуков (только если задан WEBHOOK_URL)
	var approvalPublisher webhook.ApprovalPublisher
	if cfg.WebhookURL != "" {
		redisClient, err := redisclient.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisClient.Close()
		log.Info("Successfully connected to Redis")

		approvalPublisher = webhook.NewRedisApprovalPublisher(redisClient)

		deliveryWorker := webhook.NewDeliveryWorker(redisClient, log, cfg)
		deliveryWorker.Start(ctx)
	} else {
		log.Info("Webhook URL is not configured, approval events are disabled")
	}

	// Инициализация сервисов
	alertService := service.NewAlertService(alertRepo, engine, log, approvalPublisher)

	// Инициализация хэндлеров
	handler := v1.NewHandler(alertService, log, cfg)

	// Настройка Gin роутера
	router := gin.Default()
	api := router.Group("/api/v1")
	if len(cfg.APIKeys) > 0 {
		api.Use(v1.APIKeyAuthMiddleware(cfg, log))
	}
	handler.RegisterRoutes(api)

	// Добавление маршрута для Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Запуск HTTP-сервера
	serverAddr := fmt.Sprintf(":%s", cfg.HTTPPort)

	srv := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	// Запуск сервера в горутине
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Error starting HTTP server: %v", err)
		}
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Received shutdown signal, shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Info("Server gracefully stopped")
}
