// Command api serves the AgTech Summit site API.
//
// @title AgTech Summit API
// @version 1.0
// @description Public site content, submissions, checkout and the admin dashboard of AgTech Summit.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/crypto/bcrypt"

	"agtechsummit/config"
	_ "agtechsummit/docs"
	"agtechsummit/internal/adapters/auth"
	"agtechsummit/internal/adapters/email"
	"agtechsummit/internal/adapters/geo"
	"agtechsummit/internal/adapters/payment"
	httpdelivery "agtechsummit/internal/delivery/http"
	"agtechsummit/internal/delivery/http/controllers"
	"agtechsummit/internal/delivery/http/middleware"
	"agtechsummit/internal/domain"
	"agtechsummit/internal/events"
	"agtechsummit/internal/media"
	"agtechsummit/internal/metrics"
	"agtechsummit/internal/repository/file"
	"agtechsummit/internal/repository/firebase"
	"agtechsummit/internal/repository/memory"
	"agtechsummit/internal/repository/postgres"
	"agtechsummit/internal/repository/s3"
	"agtechsummit/internal/repository/sqlite"
	"agtechsummit/internal/services"
	"agtechsummit/internal/store"
)

const serviceTimeout = 5 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		os.Exit(1)
	}
	logger := config.NewLogger(cfg)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	backend, closeBackend, err := openBackend(ctx, cfg.Store)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeBackend(); err != nil {
			logger.Warn("close backend", "err", err)
		}
	}()
	logger.Info("state backend ready", "driver", cfg.Store.Driver)

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	bus := events.New()
	st := store.New(ctx, backend,
		store.WithLogger(logger),
		store.WithMetrics(metrics.NewStoreMetrics(reg)),
		store.WithBus(bus),
	)
	if err := st.LoadErr(); err != nil {
		return fmt.Errorf("state backend: %w", err)
	}
	unsubscribe := st.Subscribe(func() {
		logger.Debug("state changed", "revision", st.Revision(), "degraded", st.Degraded())
	})
	defer unsubscribe()
	repos := st.Repositories()

	// Adapters
	mailer, err := email.NewMailer(ctx, email.MailerConfig{
		Provider:    cfg.Email.Provider,
		FromAddress: cfg.Email.FromAddress,
		FromName:    cfg.Email.FromName,
		SES: email.SESConfig{
			Region:          cfg.Email.AWSRegion,
			AccessKeyID:     cfg.Email.AWSAccessKeyID,
			SecretAccessKey: cfg.Email.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return fmt.Errorf("mailer: %w", err)
	}
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)
	jwt := auth.NewJWT(cfg.Auth.JWTSecret)
	ingestor := media.NewIngestor(media.Options{
		MaxSizeBytes: cfg.Image.MaxSizeBytes,
		MaxWidth:     cfg.Image.MaxWidth,
		Quality:      cfg.Image.Quality,
	})

	// Services
	adminAuth, err := services.NewAdminAuthService(cfg.Auth.AdminEmail, cfg.Auth.AdminPassword,
		auth.NewBcryptHasher(bcrypt.DefaultCost), jwt, cfg.Auth.JWTExpiry)
	if err != nil {
		return fmt.Errorf("admin auth: %w", err)
	}
	checkout := services.NewCheckoutService(
		repos.PassTiers,
		repos.Registrations,
		geo.NewClient(cfg.Checkout.GeoLookupURL, nil),
		payment.NewSimulated(cfg.Checkout.PaymentDelay, cfg.Checkout.PaymentSecret),
		emailService,
		logger,
		services.CheckoutConfig{DefaultCurrency: cfg.Checkout.DefaultCurrency},
	)

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Content:     controllers.NewContentController(logger, services.NewContentService(repos, serviceTimeout)),
		Submissions: controllers.NewSubmissionController(logger, services.NewSubmissionService(repos, emailService, logger, serviceTimeout)),
		Checkout:    controllers.NewCheckoutController(logger, checkout),
		Review:      controllers.NewReviewController(logger, services.NewReviewService(repos, serviceTimeout)),
		Auth:        controllers.NewAuthController(logger, adminAuth),
		Uploads:     controllers.NewUploadController(logger, ingestor, ingestor.Options().MaxSizeBytes),
	}, middleware.RequireAdmin(jwt, logger), promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))

	handler := middleware.CORS(cfg.CORSAllowedOrigins, router)
	handler = middleware.LoggingMiddleware(logger, metrics.NewHTTPMetrics(reg), handler)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("starting server", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
		logger.Info("shutting down")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Warn("http shutdown", "err", err)
	}
	if err := st.Flush(shutdownCtx); err != nil {
		return fmt.Errorf("flush store: %w", err)
	}
	return nil
}

// openBackend builds the state backend for cfg.Driver. The returned close func is never nil.
func openBackend(ctx context.Context, cfg config.StoreConfig) (domain.StateBackend, func() error, error) {
	noop := func() error { return nil }
	switch cfg.Driver {
	case config.StoreMemory:
		return memory.New(), noop, nil
	case config.StoreFile:
		b, err := file.New(cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("file store: %w", err)
		}
		return b, noop, nil
	case config.StoreSQLite:
		b, err := sqlite.Open(ctx, cfg.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("sqlite store: %w", err)
		}
		return b, b.Close, nil
	case config.StorePostgres:
		b, err := postgres.Open(ctx, cfg.DatabaseDriver, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("postgres store: %w", err)
		}
		return b, b.Close, nil
	case config.StoreS3:
		b, err := s3.New(ctx, s3.Config{
			Region:    cfg.S3Region,
			Bucket:    cfg.S3Bucket,
			Endpoint:  cfg.S3Endpoint,
			PathStyle: cfg.S3PathStyle,
		})
		if err != nil {
			return nil, nil, fmt.Errorf("s3 store: %w", err)
		}
		return b, noop, nil
	case config.StoreFirebase:
		b, err := firebase.New(ctx, cfg.FirebaseKey, cfg.FirebaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("firebase store: %w", err)
		}
		return b, noop, nil
	}
	return nil, nil, fmt.Errorf("unknown store driver %q", cfg.Driver)
}
