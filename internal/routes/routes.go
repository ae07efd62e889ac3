// internal/routes/routes.go
package routes

import (
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/gorilla/sessions"
	"github.com/sirupsen/logrus"

	"simsea/internal/config"
	"simsea/internal/export"
	authmw "simsea/internal/middleware"
	"simsea/internal/repository"
	"simsea/internal/services"
)

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func SetupRoutes(db *sql.DB, cfg *config.Config, s3Config *config.S3Config, logger logrus.FieldLogger) *chi.Mux {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestLogger(&middleware.DefaultLogFormatter{Logger: logger, NoColor: true}))
	r.Use(middleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.CORSAllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Content-Disposition", "X-Export-Fallback"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"message": "SIMSEA project monitoring API"})
	})

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		dbStatus := map[string]any{"status": "ok"}
		status, code := "ok", http.StatusOK
		if err := db.PingContext(ctx); err != nil {
			dbStatus = map[string]any{"status": "down", "error": err.Error()}
			status, code = "degraded", http.StatusServiceUnavailable
		}
		writeJSON(w, code, map[string]any{"status": status, "db": dbStatus})
	})

	RegisterSwaggerRoutes(r)

	retry := repository.NewRetryPolicy(cfg.RetryAttempts, cfg.RetryBaseDelay, logger)

	records := repository.NewRecordRepository(db, retry)
	accounts := services.NewAccountService(repository.NewUserRepository(db, retry), logger)
	exporter := export.NewExporter(cfg.XLSXEnabled, logger)
	publisher := services.NewExportPublisher(s3Config)

	var store sessions.Store = authmw.NewSessionStore(cfg.SecretKey, cfg.IsProduction())
	authenticate := authmw.Authenticate(cfg.SecretKey, store)

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		RegisterAuthRoutes(r, accounts, store, cfg, logger, authenticate)
		RegisterRecordRoutes(r, records, store, logger, authenticate)
		RegisterUserRoutes(r, accounts, logger, authenticate)
		RegisterExportRoutes(r, records, exporter, publisher, logger, authenticate)
	})

	return r
}
