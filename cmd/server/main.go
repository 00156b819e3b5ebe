package main

import (
	"context"
	"errors"
	"io"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"projectboard/internal/auth"
	"projectboard/internal/config"
	"projectboard/internal/handler"
	"projectboard/internal/middleware"
	"projectboard/internal/repository/remote"
	"projectboard/internal/service"
	"projectboard/internal/service/dashboard"
	"projectboard/internal/statuses"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
)

func main() {
	// Load .env file (silently ignore if it doesn't exist - for production)
	_ = godotenv.Load()

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Structured logging, optionally mirrored to a rotated log file
	var logOutput io.Writer = os.Stdout
	if cfg.LogDir != "" {
		logFile, err := config.SetupLogFile(cfg.LogDir, cfg.LogMaxFiles)
		if err != nil {
			log.Fatalf("Failed to set up log file: %v", err)
		}
		defer logFile.Close()
		logOutput = io.MultiWriter(os.Stdout, logFile)
	}
	logger := config.NewLogger(cfg.Environment, logOutput)
	slog.SetDefault(logger)

	logger.Info("server starting",
		"environment", cfg.Environment,
		"port", cfg.Port,
		"project_api", cfg.ProjectAPIURL,
	)

	// Project API client shared by both repositories
	client, err := remote.NewClient(remote.ClientConfig{
		BaseURL:   cfg.ProjectAPIURL,
		Timeout:   cfg.ProjectAPITimeout,
		RateLimit: cfg.ProjectAPIRateLimit,
		Burst:     cfg.ProjectAPIBurst,
		Logger:    logger,
	})
	if err != nil {
		log.Fatalf("Failed to create project API client: %v", err)
	}
	projectRepo := remote.NewProjectRepository(client)
	accountRepo := remote.NewAccountRepository(client)

	// Services
	accountService := service.NewAccountService(accountRepo, logger)
	stores := dashboard.NewRegistry(projectRepo, logger, dashboard.RegistryConfig{
		IdleTTL:    cfg.SessionTTL,
		StaleAfter: cfg.DashboardStaleAfter,
	})

	catalog, err := statuses.NewCatalog()
	if err != nil {
		log.Fatalf("Failed to load status catalog: %v", err)
	}

	// Sessions
	codec, err := auth.NewSessionCodec(cfg.SessionSecret, cfg.SessionTTL)
	if err != nil {
		log.Fatalf("Failed to create session codec: %v", err)
	}

	var verifier auth.TokenVerifier
	if cfg.AuthJWKSURL != "" {
		jwksVerifier, err := auth.NewJWKSVerifier(context.Background(), cfg.AuthJWKSURL, logger)
		if err != nil {
			log.Fatalf("Failed to create JWKS verifier: %v", err)
		}
		defer jwksVerifier.Close()
		verifier = jwksVerifier
		logger.Info("bearer tokens from identity provider enabled", "jwks_url", cfg.AuthJWKSURL)
	}

	logger.Info("services initialized")

	mux := handler.NewRouter(handler.Handlers{
		Accounts:  handler.NewAccountHandler(accountService, codec, stores, cfg.IsProduction(), logger),
		Dashboard: handler.NewDashboardHandler(stores, logger),
		Projects:  handler.NewProjectHandler(stores, logger),
		Statuses:  handler.NewStatusHandler(catalog),
	})

	// Build middleware chain
	var h http.Handler = mux

	// Apply middleware in reverse order (they wrap each other)
	// Order: CORS → RequestID → Recovery → Session → Routes
	h = middleware.SessionMiddleware(middleware.SessionOptions{
		Codec:       codec,
		Verifier:    verifier,
		Logger:      logger,
		PublicPaths: handler.PublicPaths,
	})(h)
	h = middleware.Recovery(logger)(h)
	h = middleware.RequestID(logger)(h)

	// CORS - Must be outermost to handle OPTIONS pre-flight requests
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   strings.Split(cfg.CORSOrigins, ","),
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Request-Id"},
		ExposedHeaders:   []string{"X-Request-Id"},
		AllowCredentials: true,
	})
	h = corsHandler.Handler(h)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      h,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.ProjectAPITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("listening", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("graceful shutdown failed", "error", err)
	}
}
