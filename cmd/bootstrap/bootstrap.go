package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sepsis-screening-server/config"
	deliveryHttp "sepsis-screening-server/internal/delivery/http"
	"sepsis-screening-server/internal/delivery/http/handler"
	"sepsis-screening-server/internal/delivery/http/middleware"
	"sepsis-screening-server/internal/infrastructure/cache"
	"sepsis-screening-server/internal/infrastructure/database"
	"sepsis-screening-server/internal/repository"
	"sepsis-screening-server/internal/service"
	"sepsis-screening-server/internal/usecase"
	"sepsis-screening-server/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
	Retention   *service.ReadingRetentionService
}

// New creates a new App instance with all dependencies initialized
func New() (*App, error) {
	app := &App{}

	// Setup logger
	setupLogger()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	app.Config = cfg
	logrus.Info("Configuration loaded successfully")

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db

	// Apply schema migrations and the allow-list seed
	if err := database.Migrate(db); err != nil {
		return nil, fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient

	// Initialize all layers
	server, retention := initializeServer(cfg, db, redisClient)
	app.Server = server
	app.Retention = retention

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger() {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) (*http.Server, *service.ReadingRetentionService) {
	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize repositories
	allowedHospitalRepo := repository.NewAllowedHospitalRepository()
	hospitalRepo := repository.NewHospitalRepository()
	patientRepo := repository.NewPatientRepository()
	hospitalPatientRepo := repository.NewHospitalPatientRepository()
	patientReportRepo := repository.NewPatientReportRepository()
	hospitalReportRepo := repository.NewHospitalReportRepository()
	readingRepo := repository.NewReadingRepository()
	eventRepo := repository.NewEventRegistrationRepository()

	// Initialize caches
	hospitalCache := cache.NewHospitalCache(redisClient)

	// Initialize usecases
	patientUsecase := usecase.NewPatientUsecase(db, log, patientRepo, patientReportRepo)
	hospitalUsecase := usecase.NewHospitalUsecase(db, log, allowedHospitalRepo, hospitalRepo, hospitalReportRepo, hospitalPatientRepo, hospitalCache)
	readingUsecase := usecase.NewReadingUsecase(db, log, readingRepo)
	eventUsecase := usecase.NewEventUsecase(db, log, eventRepo)

	// Initialize handlers
	readingHandler := handler.NewReadingHandler(readingUsecase, customValidator)
	eventHandler := handler.NewEventHandler(eventUsecase, customValidator)
	patientHandler := handler.NewPatientHandler(patientUsecase, customValidator)
	hospitalHandler := handler.NewHospitalHandler(hospitalUsecase, customValidator)

	// Initialize middleware
	corsMiddleware := middleware.NewCORSMiddleware(cfg.HTTP.AllowedOrigins)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(cfg.HTTP.RateLimitRequests, cfg.HTTP.RateLimitWindow)
	recoveryMiddleware := middleware.NewRecoveryMiddleware(cfg.IsProduction())

	// Initialize background retention
	retention := service.NewReadingRetentionService(db, log, readingRepo, cfg.App.ReadingRetention)

	// Initialize router
	router := deliveryHttp.NewRouter(
		readingHandler,
		eventHandler,
		patientHandler,
		hospitalHandler,
		corsMiddleware,
		rateLimitMiddleware,
		recoveryMiddleware,
		cfg.HTTP.StaticDir,
		cfg.IsProduction(),
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:    serverAddr,
		Handler: httpRouter,
	}, retention
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	app.Retention.Start()

	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	// Create shutdown context with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	// Stop background work and close connections
	app.Retention.Stop()
	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	// Close database connection
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	// Close Redis connection
	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
