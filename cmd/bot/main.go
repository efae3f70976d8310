package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/amirhossein-jamali/paybot/internal/domain/entity"
	coreport "github.com/amirhossein-jamali/paybot/internal/domain/port/core"
	accountUseCase "github.com/amirhossein-jamali/paybot/internal/domain/usecase/account"
	"github.com/amirhossein-jamali/paybot/internal/domain/usecase/reconciliation"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/handler"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/api/routes"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/chat/locale"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/cryptopay"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/database"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/database/migration"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/logger"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/metrics"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/telegram"
	timeProvider "github.com/amirhossein-jamali/paybot/internal/infrastructure/adapter/time"
	"github.com/amirhossein-jamali/paybot/internal/infrastructure/config"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if err := validateConfig(cfg); err != nil {
		log.Fatalf("Configuration validation failed: %v", err)
	}

	if cfg.Environment == config.Production {
		gin.SetMode(gin.ReleaseMode)
	}

	appLogger, err := logger.NewZapLogger(logger.Options{
		Level:      cfg.Logger.Level,
		Format:     cfg.Logger.Format,
		CallerInfo: cfg.Logger.CallerInfo,
	})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer func() { _ = appLogger.Flush() }()

	tp := timeProvider.NewRealTimeProvider()

	dbManager := database.NewManager(databaseConfig(cfg), appLogger, tp)
	if _, err := dbManager.Connect(); err != nil {
		appLogger.Error("Failed to connect to database", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}
	defer dbManager.Close()

	if cfg.Database.MonitorInterval > 0 {
		dbManager.StartMonitoring(cfg.Database.MonitorInterval)
	}

	if err := dbManager.MigrationManager().MigrateAll(context.Background()); err != nil {
		appLogger.Error("Failed to run migrations", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	uow := dbManager.CreateUnitOfWork()

	if len(cfg.Admins) > 0 {
		if _, err := migration.PromoteAdmins(context.Background(), uow.GetAccountRepository(context.Background()), cfg.Admins, appLogger); err != nil {
			appLogger.Error("Failed to promote administrators", map[string]any{
				"error": err.Error(),
			})
		}
	}

	var (
		appMetrics     coreport.Metrics = metrics.NewNoopMetrics()
		metricsHandler http.Handler
	)
	if cfg.Metrics.Enabled {
		registry := prometheus.NewRegistry()
		registry.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
		appMetrics = metrics.NewPrometheusMetrics(registry, metrics.Config{
			ServiceName: cfg.Metrics.ServiceName,
			Environment: cfg.Environment,
		})
		metricsHandler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	}

	price, err := entity.NewPrice(cfg.Payment.Asset, cfg.Payment.Amount, cfg.Payment.Credits, cfg.Payment.Entitlement)
	if err != nil {
		appLogger.Error("Invalid payment configuration", map[string]any{
			"error": err.Error(),
		})
		os.Exit(1)
	}

	bot := telegram.NewClient(
		&http.Client{Timeout: cfg.Telegram.PollTimeout + 15*time.Second},
		telegram.Config{Token: cfg.Telegram.Token, BaseURL: cfg.Telegram.BaseURL},
		appLogger,
	)
	processor := cryptopay.NewClient(
		&http.Client{Timeout: cfg.Payment.RequestTimeout + 5*time.Second},
		cryptopay.Config{
			Token:     cfg.CryptoPay.Token,
			Network:   cfg.CryptoPay.Network,
			BaseURL:   cfg.CryptoPay.BaseURL,
			ListCount: cfg.CryptoPay.ListCount,
		},
		appLogger,
	)

	catalog := locale.NewCatalog()

	accounts := accountUseCase.NewService(uow, tp, appLogger)
	payments := reconciliation.NewService(uow, processor, bot, tp, appLogger, appMetrics, reconciliation.Options{
		Price:            price,
		Description:      cfg.Payment.Description,
		ProcessorTimeout: cfg.Payment.RequestTimeout,
		PaidMessages:     catalog.PaidMessages(),
	})

	var janitor *reconciliation.Janitor
	if cfg.Retention.Window > 0 {
		janitor = reconciliation.NewJanitor(uow.GetInvoiceRepository(context.Background()), tp, appLogger, appMetrics, cfg.Retention.Window)
		janitor.Start(cfg.Retention.Interval)
	}

	router := chat.NewRouter(accounts, payments, bot, catalog, appLogger)
	poller := telegram.NewPoller(bot, router, appLogger, telegram.PollerConfig{
		PollTimeout:   cfg.Telegram.PollTimeout,
		HandleTimeout: cfg.Telegram.HandleTimeout,
	})
	poller.Start(context.Background())

	engine := gin.New()
	routes.SetupMiddlewares(engine, appLogger)
	routes.SetupRoutes(engine, cfg.Webhook.Path,
		handler.NewWebhookHandler(payments, cryptopay.NewVerifier(cfg.CryptoPay.Token), appMetrics, appLogger),
		handler.NewHealthHandler(dbManager, cfg.Database.QueryTimeout, appLogger),
		metricsHandler,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:           engine,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	go func() {
		appLogger.Info("Starting webhook listener", map[string]any{
			"addr":         server.Addr,
			"webhook_path": cfg.Webhook.Path,
			"env":          cfg.Environment,
		})

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Error("Failed to start server", map[string]any{
				"error": err.Error(),
			})
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down...", map[string]any{})

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	// Stop taking new chat updates and webhooks before the database closes
	poller.Stop()
	if err := server.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", map[string]any{
			"error": err.Error(),
		})
	}
	if janitor != nil {
		janitor.Stop()
	}

	appLogger.Info("Bot exited gracefully", map[string]any{})
}

// databaseConfig maps the loaded settings onto the database manager's config
func databaseConfig(cfg *config.Config) *database.Config {
	return &database.Config{
		Driver:          strings.ToLower(cfg.Database.Driver),
		Path:            cfg.Database.Path,
		Host:            cfg.Database.Host,
		Port:            database.ParsePort(cfg.Database.Port),
		Username:        cfg.Database.Username,
		Password:        cfg.Database.Password,
		Database:        cfg.Database.Database,
		SSLMode:         cfg.Database.SSLMode,
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    cfg.Database.MaxIdleConns,
		ConnMaxLifetime: cfg.Database.ConnMaxLifetime,
		ConnMaxIdleTime: cfg.Database.ConnMaxIdleTime,
		QueryTimeout:    cfg.Database.QueryTimeout,
		LogLevel:        cfg.Logger.Level,
		RetryAttempts:   cfg.Database.RetryAttempts,
		RetryDelay:      cfg.Database.RetryDelay,
	}
}

// validateConfig ensures all required configuration values are present
func validateConfig(cfg *config.Config) error {
	var missingConfigs []string

	if cfg.Server.Port == 0 {
		missingConfigs = append(missingConfigs, "server.port")
	}
	if cfg.Server.ShutdownTimeout == 0 {
		missingConfigs = append(missingConfigs, "server.shutdownTimeout")
	}

	if cfg.Telegram.Token == "" {
		missingConfigs = append(missingConfigs, "telegram.token (or PB_TELEGRAM_TOKEN, or the token file)")
	}
	if cfg.CryptoPay.Token == "" {
		missingConfigs = append(missingConfigs, "cryptopay.token (or PB_CRYPTOPAY_TOKEN, or the token file)")
	}

	switch strings.ToLower(cfg.Database.Driver) {
	case database.DriverSQLite:
		if cfg.Database.Path == "" {
			missingConfigs = append(missingConfigs, "database.path")
		}
	case database.DriverPostgres:
		if cfg.Database.Host == "" {
			missingConfigs = append(missingConfigs, "database.host (or PB_DB_HOST environment variable)")
		}
		if cfg.Database.Username == "" {
			missingConfigs = append(missingConfigs, "database.username (or PB_DB_USERNAME environment variable)")
		}
		if cfg.Database.Database == "" {
			missingConfigs = append(missingConfigs, "database.database (or PB_DB_NAME environment variable)")
		}
	default:
		return fmt.Errorf("invalid database driver: %q, must be %s or %s",
			cfg.Database.Driver, database.DriverSQLite, database.DriverPostgres)
	}

	if cfg.Database.QueryTimeout == 0 {
		missingConfigs = append(missingConfigs, "database.queryTimeout")
	}
	if cfg.Payment.RequestTimeout == 0 {
		missingConfigs = append(missingConfigs, "payment.requestTimeout")
	}
	if cfg.Retention.Window > 0 && cfg.Retention.Interval <= 0 {
		missingConfigs = append(missingConfigs, "retention.interval")
	}
	if !strings.HasPrefix(cfg.Webhook.Path, "/") {
		missingConfigs = append(missingConfigs, "webhook.path (must start with /)")
	}

	if cfg.Environment == "" {
		missingConfigs = append(missingConfigs, "environment")
	} else if cfg.Environment != config.Development &&
		cfg.Environment != config.Production &&
		cfg.Environment != config.Test {
		return fmt.Errorf("invalid environment value: %s, must be one of: %s, %s, or %s",
			cfg.Environment, config.Development, config.Production, config.Test)
	}

	if cfg.Logger.Level == "" {
		missingConfigs = append(missingConfigs, "logger.level")
	}

	if len(missingConfigs) > 0 {
		return fmt.Errorf("missing required configurations: %v", missingConfigs)
	}

	if _, err := entity.NewPrice(cfg.Payment.Asset, cfg.Payment.Amount, cfg.Payment.Credits, cfg.Payment.Entitlement); err != nil {
		return fmt.Errorf("invalid payment configuration: %w", err)
	}

	if cfg.Environment == config.Production {
		var warnings []string

		if cfg.Database.Driver == database.DriverPostgres {
			sslMode := strings.ToLower(cfg.Database.SSLMode)
			if sslMode != "require" && sslMode != "verify-ca" && sslMode != "verify-full" {
				warnings = append(warnings, "database.sslMode should be set to 'require', 'verify-ca', or 'verify-full' in production")
			}
		}
		if strings.EqualFold(cfg.CryptoPay.Network, "testnet") {
			warnings = append(warnings, "cryptopay.network is testnet in production")
		}

		if len(warnings) > 0 {
			log.Printf("Warning: potential issues in production configuration: %v", warnings)
		}
	}

	return nil
}
