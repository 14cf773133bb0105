// cmd/api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"runtime/debug"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/questdeckhq/questdeck/internal/analytics"
	"github.com/questdeckhq/questdeck/internal/audit"
	"github.com/questdeckhq/questdeck/internal/auth"
	"github.com/questdeckhq/questdeck/internal/config"
	"github.com/questdeckhq/questdeck/internal/handler"
	"github.com/questdeckhq/questdeck/internal/middleware"
	"github.com/questdeckhq/questdeck/internal/repository"
	"github.com/questdeckhq/questdeck/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "startup error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Initialize structured logger
	log := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:     slog.LevelInfo,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{
					Key:   a.Key,
					Value: slog.StringValue(a.Value.Time().Format(time.RFC3339)),
				}
			}
			return a
		},
	}))
	slog.SetDefault(log)

	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := setupDatabase(cfg)
	if err != nil {
		return fmt.Errorf("setting up database: %w", err)
	}

	// Initialize the analytics read store on its own pool
	analyticsStore, err := analytics.NewStore(context.Background(), cfg.URL())
	if err != nil {
		return fmt.Errorf("setting up analytics store: %w", err)
	}
	defer analyticsStore.Close()

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	orgRepo := repository.NewOrganizationRepository(db)
	questRepo := repository.NewQuestRepository(db)
	curationRepo := repository.NewCurationRepository(db)

	// Token validation for identity resolution
	tokenManager := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiryPeriod)

	// Policy/curation snapshot cache
	cacheService := service.NewCacheService(service.CacheConfig{
		TTL:         cfg.Cache.TTL,
		CleanupFreq: cfg.Cache.CleanupFreq,
	})
	defer cacheService.Close()

	auditor := audit.NewSlogLogger(log)

	// Initialize services
	orgService := service.NewOrganizationService(orgRepo, userRepo, cacheService, auditor)
	curationService := service.NewCurationService(curationRepo, questRepo, orgRepo, cacheService, auditor)
	engine := service.NewVisibilityEngine(orgRepo, userRepo, questRepo, curationRepo, cacheService, log)

	// Initialize handlers
	questHandler := handler.NewQuestHandler(engine)
	orgHandler := handler.NewOrganizationHandler(orgService)
	curationHandler := handler.NewCurationHandler(curationService)
	analyticsHandler := handler.NewAnalyticsHandler(analyticsStore)

	// Create router
	r := chi.NewRouter()

	// Basic middleware stack
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(loggingMiddleware(log))
	r.Use(recoveryMiddleware(log))
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"https://*", "http://*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"healthy"}`))
	})

	// API routes
	r.Route("/api", func(r chi.Router) {
		// Catalog listing: identity optional, anonymous callers get the
		// fixed global-only view.
		r.Group(func(r chi.Router) {
			r.Use(middleware.OptionalAuth(tokenManager))
			r.Get("/quests", questHandler.ListQuests)
		})

		// Administrative routes
		r.Group(func(r chi.Router) {
			r.Use(chimw.AllowContentType("application/json"))
			r.Use(middleware.RequireAuth(tokenManager))

			r.Get("/stats", analyticsHandler.PlatformStats)

			r.Route("/orgs", func(r chi.Router) {
				r.Get("/", orgHandler.ListOrganizations)
				r.Post("/", orgHandler.CreateOrganization)
				r.Get("/slug/{slug}", orgHandler.GetOrganizationBySlug)

				r.Route("/{id}", func(r chi.Router) {
					r.Get("/", orgHandler.GetOrganization)
					r.Patch("/policy", orgHandler.UpdatePolicy)
					r.Delete("/", orgHandler.DeactivateOrganization)
					r.Get("/stats", analyticsHandler.OrgStats)

					r.Route("/curation", func(r chi.Router) {
						r.Get("/", curationHandler.ListGrants)
						r.Post("/", curationHandler.CreateGrant)
						r.Delete("/{questID}", curationHandler.DeleteGrant)
					})
				})
			})

			r.Put("/users/{id}/organization", orgHandler.ReassignUser)
			r.Put("/users/{id}/admin", orgHandler.SetUserAdmin)
		})
	})

	// Create server
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           r,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       120 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Server error channel
	serverErrors := make(chan error, 1)

	// Start server
	go func() {
		log.Info("server starting", "port", cfg.Server.Port)
		serverErrors <- srv.ListenAndServe()
	}()

	// Shutdown channel
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt)

	// Wait for shutdown or error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		log.Info("shutdown started", "signal", sig)

		// Give outstanding requests a deadline for completion
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()

		// Gracefully shutdown the server
		if err := srv.Shutdown(ctx); err != nil {
			// If shutdown times out, forcefully close
			srv.Close()
			return fmt.Errorf("could not stop server gracefully: %w", err)
		}
	}

	return nil
}

func setupDatabase(cfg *config.Config) (*gorm.DB, error) {
	gormConfig := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
		NowFunc: func() time.Time {
			return time.Now().UTC()
		},
	}

	db, err := gorm.Open(postgres.Open(cfg.DSN()), gormConfig)
	if err != nil {
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("getting database instance: %w", err)
	}

	// Configure connection pool
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(25)
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetConnMaxIdleTime(5 * time.Minute)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return db, nil
}

func loggingMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)

			defer func() {
				log.Info("request completed",
					"method", r.Method,
					"path", r.URL.Path,
					"duration", time.Since(start),
					"status", ww.Status(),
					"size", ww.BytesWritten(),
					"requestID", chimw.GetReqID(r.Context()),
				)
			}()

			next.ServeHTTP(ww, r)
		})
	}
}

func recoveryMiddleware(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rvr := recover(); rvr != nil {
					err := errors.New("panic recovered")
					log.Error("panic recovered",
						"error", err,
						"panic", rvr,
						"stack", string(debug.Stack()),
						"requestID", chimw.GetReqID(r.Context()),
					)

					w.WriteHeader(http.StatusInternalServerError)
					w.Write([]byte(`{"error":"error encountered"}`))
					return
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
