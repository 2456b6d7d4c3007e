package main

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Rizz-Vii/studio-sub011/internal/api"
	apiMiddleware "github.com/Rizz-Vii/studio-sub011/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))

	seoHandler := api.NewSEOHandler(app.seoService)

	r.Route("/api", func(r chi.Router) {
		if timeout := app.config.Server.RequestTimeoutSeconds; timeout > 0 {
			r.Use(middleware.Timeout(time.Duration(timeout) * time.Second))
		}
		r.Route("/seo", seoHandler.Routes)
	})

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	if app.metrics != nil {
		r.Method(http.MethodGet, "/metrics", app.metrics.Handler())
	}

	return r
}
