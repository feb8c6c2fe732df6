package routes

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rcet-nz/rteqc-api/app"
	"github.com/rcet-nz/rteqc-api/handlers"
	"github.com/rcet-nz/rteqc-api/middleware"
)

// SetupRoutes configures all application routes and middleware
func SetupRoutes(deps *app.Dependencies) http.Handler {
	r := chi.NewRouter()

	// Core middleware
	r.Use(middleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.Timeout(60 * time.Second))

	// CORS middleware - the results are public, any origin may query
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"Content-Disposition", "X-Request-ID"},
		MaxAge:         300,
	}))

	publicURL := deps.Config.Results.PublicURL
	home := handlers.NewHomeHandler(publicURL, deps.Logger)
	triggers := handlers.NewTriggerHandler(deps.Results, publicURL, deps.Logger)
	catalogs := handlers.NewCatalogHandler(deps.Results, deps.Logger)
	plots := handlers.NewPlotHandler(deps.Results, deps.Logger)

	r.Get("/healthz", handlers.HealthCheck)
	r.Get("/", home.HandleHome)

	// Existing clients use trailing-slash paths; accept both forms.
	get := func(pattern string, h http.HandlerFunc) {
		r.Get(pattern, h)
		r.Get(pattern+"/", h)
	}
	get("/triggers", triggers.HandleListTriggers)
	get("/trigger_table", triggers.HandleTriggerTable)
	get("/catalog", catalogs.HandleCatalog)
	get("/sources", catalogs.HandleSources)
	get("/plots", plots.HandlePlot)

	// 404 handler
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"not_found","message":"route not found"}`))
	})

	return r
}
