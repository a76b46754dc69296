// Package main is the entry point for the APIGS content API server.
// It loads configuration, connects to services, sets up routing, and starts
// the HTTP server with graceful shutdown support.
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

	"apigs/internal/cache"
	"apigs/internal/config"
	"apigs/internal/database"
	"apigs/internal/handlers"
	"apigs/internal/identity"
	"apigs/internal/logging"
	"apigs/internal/mailer"
	"apigs/internal/media"
	"apigs/internal/router"
	"apigs/internal/session"
	"apigs/internal/shape"
	"apigs/internal/storage"
	"apigs/internal/store"
	"apigs/internal/validation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", "error", err)
		os.Exit(1)
	}

	// Text output in development, JSON otherwise.
	logging.Setup(cfg.Env, cfg.LogLevel)
	slog.Info("configuration loaded", "env", cfg.Env, "addr", cfg.Addr())

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		slog.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	// Seed the development admin account (no-op if it already exists).
	if cfg.IsDev() {
		if err := database.Seed(db); err != nil {
			slog.Error("failed to seed database", "error", err)
			os.Exit(1)
		}
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), 10*time.Second)
	valkeyClient, err := cache.ConnectValkey(startCtx, cfg.ValkeyHost, cfg.ValkeyPort, cfg.ValkeyPassword)
	cancelStart()
	if err != nil {
		slog.Error("failed to connect to valkey", "error", err)
		os.Exit(1)
	}
	defer valkeyClient.Close()

	// Outside development, cookies are HTTPS-only.
	secureCookies := !cfg.IsDev()
	sessionStore := session.NewStore(valkeyClient, secureCookies)

	// Object storage is optional; uploads answer 503 without it.
	var objects media.ObjectStore
	if cfg.StorageEnabled() {
		client, err := storage.New(cfg.S3Endpoint, cfg.S3Region, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3PublicURL)
		if err != nil {
			slog.Error("failed to initialize S3 storage", "error", err)
			os.Exit(1)
		}
		objects = client
		slog.Info("s3 storage connected", "endpoint", cfg.S3Endpoint, "bucket", cfg.S3Bucket)
	} else {
		slog.Warn("s3 storage not configured, media uploads disabled")
	}
	mediaStore := store.NewMediaStore(db)
	mediaService := media.New(objects, mediaStore)

	// Email is optional too; inquiries are still stored without it.
	var sender mailer.Sender
	if client := mailer.NewClient(cfg.ResendAPIKey, cfg.UpstreamTimeout); client != nil {
		sender = client
	} else {
		slog.Warn("resend api key not set, inquiry emails disabled")
	}
	notifier := mailer.NewInquiryNotifier(sender, cfg.MailFrom, cfg.AdminEmail, shape.DefaultCompanyName)

	verifier := identity.NewVerifier(cfg.JWTSecret, cfg.JWTIssuer)
	if verifier == nil {
		slog.Info("bearer tokens disabled, JWT_SECRET not set")
	}

	deps := &handlers.Deps{
		ProjectStore:     store.NewProjectStore(db),
		CategoryStore:    store.NewCategoryStore(db),
		InquiryStore:     store.NewInquiryStore(db),
		TestimonialStore: store.NewTestimonialStore(db),
		TeamStore:        store.NewTeamStore(db),
		BlogStore:        store.NewBlogStore(db),
		CompanyStore:     store.NewCompanyStore(db),
		UserStore:        store.NewUserStore(db),

		Media:    mediaService,
		Notifier: notifier,
		Sessions: sessionStore,
		Verifier: verifier,
		Validate: validation.New(),

		DBTimeout:       cfg.DBTimeout,
		UpstreamTimeout: cfg.UpstreamTimeout,
		SiteName:        shape.DefaultCompanyName,
	}

	health := handlers.NewHealth(map[string]handlers.Probe{
		"postgres": db.PingContext,
		"valkey":   cache.Pinger{Client: valkeyClient}.Ping,
	})

	r := router.New(router.Config{
		Public:        handlers.NewPublic(deps),
		Admin:         handlers.NewAdmin(deps),
		Auth:          handlers.NewAuth(deps),
		Health:        health,
		Sessions:      sessionStore,
		Verifier:      verifier,
		SecureCookies: secureCookies,
	})

	// WriteTimeout leaves room for a 5 MB upload followed by the resize and
	// the object storage round trip.
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	go func() {
		slog.Info("server starting", "addr", cfg.Addr())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("server failed to start", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful shutdown: wait for SIGINT or SIGTERM, then drain connections.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	slog.Info("shutdown signal received", "signal", sig)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		slog.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped gracefully")
}
