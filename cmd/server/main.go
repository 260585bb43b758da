// Command server runs the RSVP backend: guest confirmations, the admin listing
// and the organizer email notifications.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"rsvp/config"
	_ "rsvp/docs"
	"rsvp/internal/adapters/auth"
	"rsvp/internal/adapters/email"
	delivery "rsvp/internal/delivery/http"
	"rsvp/internal/delivery/http/controllers"
	"rsvp/internal/delivery/http/middleware"
	"rsvp/internal/domain"
	"rsvp/internal/repository/postgres"
	"rsvp/internal/services"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"
)

const (
	shutdownTimeout = 10 * time.Second
	janitorInterval = 2 * time.Minute
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "err", err)
		os.Exit(1)
	}
	logger := config.NewLogger()
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.EnsureSchema(ctx, db); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailConfig.Provider,
		FromAddress: cfg.EmailConfig.FromAddress,
		FromName:    cfg.EmailConfig.FromName,
		SES: email.SESConfig{
			Region:             cfg.EmailConfig.AWSRegion,
			AccessKeyID:        cfg.EmailConfig.AWSAccessKeyID,
			SecretAccessKey:    cfg.EmailConfig.AWSSecretKey,
			InsecureSkipVerify: cfg.EmailConfig.SESInsecureTLS,
		},
		ResendAPIKey: cfg.EmailConfig.ResendAPIKey,
		Logger:       logger,
	})
	if err != nil {
		return err
	}
	mailer, err = email.NewInstrumentedMailer(mailer, cfg.EmailConfig.Provider, reg)
	if err != nil {
		return err
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer())

	confirmations := services.NewConfirmationService(
		logger,
		postgres.NewConfirmationRepository(db),
		emailService,
		services.NotificationConfig{
			Recipient: cfg.EmailConfig.Recipient,
			EventName: cfg.EventConfig.Name,
			EventDate: cfg.EventConfig.Date,
		},
	)

	passwords, err := adminPasswords(cfg)
	if err != nil {
		return err
	}
	adminAuth := services.NewAdminAuthService(passwords, auth.NewJWTIssuer(cfg.JWTSecret), auth.NewJWTVerifier(cfg.JWTSecret), cfg.AdminTokenTTL)

	metrics, err := middleware.NewMetrics(reg)
	if err != nil {
		return err
	}
	limiter := middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
	if err := limiter.TrustProxies(cfg.TrustedProxies); err != nil {
		return err
	}
	limiter.StartJanitor(ctx, janitorInterval)

	mux := delivery.NewRouter(delivery.RouterDeps{
		Logger:        logger,
		Confirmations: controllers.NewConfirmationController(logger, confirmations),
		Admin:         controllers.NewAdminController(logger, confirmations, adminAuth, cfg.AdminTokenTTL),
		AdminAuth:     adminAuth,
		Limiter:       limiter,
		Metrics:       promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
		Ping:          db.PingContext,
		Static:        os.DirFS(cfg.StaticDir),
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           delivery.Handler(mux, logger, cfg.AllowedOrigins, metrics),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment, "email_provider", cfg.EmailConfig.Provider)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	err = srv.Shutdown(shutdownCtx)
	confirmations.Drain()
	return err
}

func adminPasswords(cfg *config.Config) (domain.PasswordVerifier, error) {
	if cfg.AdminPasswordHash != "" {
		return auth.NewBcryptHashVerifier(cfg.AdminPasswordHash), nil
	}
	return auth.NewBcryptVerifier(cfg.AdminPassword, bcrypt.DefaultCost)
}
