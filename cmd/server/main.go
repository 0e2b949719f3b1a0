package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"campusevents/config"
	_ "campusevents/docs"
	"campusevents/internal/adapters/email"
	delivery "campusevents/internal/delivery/http"
	"campusevents/internal/delivery/http/controllers"
	"campusevents/internal/delivery/http/middleware"
	"campusevents/internal/repository/postgres"
	"campusevents/internal/services"
)

// @title Campus Events API
// @version 1.0
// @description Event listing and registration API for campus events.
// @BasePath /
func main() {
	logger := config.NewLogger()

	cfg, err := config.Load()
	if err != nil {
		logger.Error("config", "err", err)
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	db, err := postgres.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		logger.Error("database connection failed", "err", err)
		os.Exit(1)
	}
	defer db.Close()
	logger.Info("connected to database")

	mig := filepath.Join("migrations", "0001_init.sql")
	if err := postgres.RunMigration(ctx, db, mig); err != nil {
		logger.Error("migration failed", "err", err)
		os.Exit(1)
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:             cfg.SESRegion,
			AccessKeyID:        cfg.SESAccessKeyID,
			SecretAccessKey:    cfg.SESSecretKey,
			InsecureSkipVerify: cfg.SESInsecureTLS,
		},
	})
	if err != nil {
		logger.Error("mailer init failed", "err", err)
		os.Exit(1)
	}

	eventRepo := postgres.NewEventRepository(db)
	registrationRepo := postgres.NewRegistrationRepository(db)

	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())
	eventService := services.NewEventService(eventRepo)
	registrationService := services.NewRegistrationService(eventRepo, registrationRepo, emailService, logger)

	eventController := controllers.NewEventController(logger, eventService)
	registrationController := controllers.NewRegistrationController(logger, registrationService)

	mux := delivery.NewRouter(eventController, registrationController, cfg.StaticDir)
	handler := middleware.CORS(cfg.Origins(), middleware.LoggingMiddleware(logger, mux))

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("http server", "err", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	_ = srv.Shutdown(shutdownCtx)
	logger.Info("server stopped")
}
