package main

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/phrazzld/item-api/internal/api"
	apiMiddleware "github.com/phrazzld/item-api/internal/api/middleware"
	"github.com/phrazzld/item-api/internal/api/shared"
)

const healthCheckTimeout = 2 * time.Second

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	// Apply standard middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware) // Add trace IDs for improved error handling

	itemHandler := api.NewItemHandler(app.itemService, app.logger)

	r.Route("/items", func(r chi.Router) {
		r.Get("/", itemHandler.ListItems)
		r.Post("/", itemHandler.CreateItem)
		r.Route("/{id}", func(r chi.Router) {
			r.Get("/", itemHandler.GetItem)
			r.Patch("/", itemHandler.UpdateItem)
			r.Delete("/", itemHandler.DeleteItem)
		})
	})

	// Health check endpoint, bounded so a stuck database cannot hang probes.
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
		defer cancel()

		if err := app.itemService.HealthCheck(ctx); err != nil {
			shared.RespondWithErrorAndLog(w, r, http.StatusServiceUnavailable,
				"Service unavailable", err)
			return
		}

		shared.RespondWithData(w, r, http.StatusOK,
			map[string]string{"status": "ok"}, "service healthy")
	})

	return r
}
