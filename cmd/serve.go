package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/shenikar/shomrim_dispatch/docs"
	"github.com/shenikar/shomrim_dispatch/internal/config"
	v1 "github.com/shenikar/shomrim_dispatch/internal/handler/http/v1"
	"github.com/shenikar/shomrim_dispatch/internal/notifier"
	"github.com/shenikar/shomrim_dispatch/internal/otp"
	"github.com/shenikar/shomrim_dispatch/internal/repository"
	"github.com/shenikar/shomrim_dispatch/internal/service"
	"github.com/shenikar/shomrim_dispatch/internal/webhook"
	"github.com/shenikar/shomrim_dispatch/pkg/logger"
	"github.com/shenikar/shomrim_dispatch/pkg/postgres"
	redisclient "github.com/shenikar/shomrim_dispatch/pkg/redis"
)

const shutdownTimeout = 5 * time.Second

func newServeCmd() *cobra.Command {
	var (
		port          string
		skipMigration bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API server",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if port != "" {
				cfg.HTTPPort = port
			}
			return runServe(cfg, logger.New(cfg.LogLevel), !skipMigration)
		},
	}

	cmd.Flags().StringVarP(&port, "port", "p", "", "HTTP port (overrides HTTP_PORT)")
	cmd.Flags().BoolVar(&skipMigration, "skip-migrations", false, "do not apply migrations on startup")
	return cmd
}

func runServe(cfg *config.Config, log *logrus.Logger, migrate bool) error {
	// Контекст для graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if migrate {
		if err := postgres.RunMigrations(cfg.DatabaseURL, log); err != nil {
			return fmt.Errorf("run migrations: %w", err)
		}
	}

	// Подключение к PostgreSQL
	dbpool, err := postgres.NewPostgresDB(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to postgres: %w", err)
	}
	defer dbpool.Close()
	log.Info("Successfully connected to PostgreSQL")

	redisClient, err := redisclient.NewRedisClient(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to redis: %w", err)
	}
	defer redisClient.Close()
	log.Info("Successfully connected to Redis")

	gormDB, err := repository.NewGormDB(dbpool, log)
	if err != nil {
		return err
	}

	// Репозитории
	gw := repository.NewGateway(dbpool)
	incidentRepo := repository.NewIncidentRepository(gw, redisClient, cfg.IncidentCacheTTL)
	pttRepo := repository.NewPTTRepository(gw)
	userRepo := repository.NewUserRepository(gormDB)
	directoryRepo := repository.NewDirectoryRepository(gormDB)

	// OTP
	otpStore := newOTPStore(cfg, redisClient)
	sweeper, err := otp.NewSweeper(otpStore, cfg.OTPSweepSchedule, log)
	if err != nil {
		return err
	}
	sweeper.Start()
	defer sweeper.Stop()

	// Вебхуки включаются только при заданном адресе получателя
	var publisher webhook.WebhookPublisher = webhook.NoopPublisher{}
	var webhookWorker *webhook.WebhookWorker
	if cfg.WebhookURL != "" {
		publisher = webhook.NewRedisWebhookPublisher(redisClient)
		webhookWorker = webhook.NewWebhookWorker(redisClient, log, cfg)
		webhookWorker.Start(ctx)
	} else {
		log.Info("WEBHOOK_URL is not set, incident webhooks are disabled")
	}

	// Сервисы
	services := v1.Services{
		Incidents: service.NewIncidentService(incidentRepo, publisher, log),
		OTP: service.NewOTPService(otpStore, otp.NewGenerator(cfg.OTPFixedCode), newSMSSender(cfg, log), userRepo, service.OTPConfig{
			TTL:                cfg.OTPTTL,
			DefaultCountryCode: cfg.DefaultCountryCode,
			DevEcho:            cfg.OTPDevEcho,
		}, log),
		PTT: service.NewPTTService(pttRepo, service.PTTConfig{
			Retention:     cfg.PTTRetention,
			MaxAudioBytes: cfg.PTTMaxAudioBytes,
		}, log),
		Users:     service.NewUserService(userRepo, log),
		Directory: service.NewDirectoryService(directoryRepo, log),
	}

	router := newRouter(v1.NewHandler(services, log, cfg), log)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()
	log.Infof("HTTP server started on port %s", cfg.HTTPPort)

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(quit)

	select {
	case <-quit:
		log.Info("Received shutdown signal, shutting down server...")
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer shutdownCancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server forced to shutdown")
	}

	// Воркер вебхуков завершает текущую доставку и выходит
	cancel()
	if webhookWorker != nil {
		select {
		case <-webhookWorker.Done():
		case <-shutdownCtx.Done():
			log.Warn("Webhook worker did not stop in time")
		}
	}

	log.Info("Server gracefully stopped")
	return nil
}

func newRouter(handler *v1.Handler, log *logrus.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), v1.RequestLogger(log))

	// Swagger UI
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")
	handler.RegisterRoutes(api)
	return router
}

func newOTPStore(cfg *config.Config, redisClient *redis.Client) otp.Store {
	if cfg.OTPStore == config.OTPStoreRedis {
		return otp.NewRedisStore(redisClient, cfg.OTPSweepGrace, otp.WithHashCost(cfg.OTPHashCost))
	}
	return otp.NewMemoryStore(cfg.OTPSweepGrace, otp.WithHashCost(cfg.OTPHashCost))
}

func newSMSSender(cfg *config.Config, log *logrus.Logger) service.SMSSender {
	if !cfg.SMSConfigured() {
		log.Warn("SMS gateway credentials are not set, OTP codes will not be delivered")
		return notifier.Unconfigured{}
	}
	return notifier.NewTwilioClient(notifier.TwilioConfig{
		BaseURL:    cfg.TwilioBaseURL,
		AccountSID: cfg.TwilioAccountSID,
		AuthToken:  cfg.TwilioAuthToken,
		From:       cfg.TwilioPhoneNumber,
		Timeout:    cfg.SMSTimeout,
	}, log)
}
