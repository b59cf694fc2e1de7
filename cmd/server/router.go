package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/openstays/stays-api/internal/api"
	apiMiddleware "github.com/openstays/stays-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all routes
// and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	authHandler := api.NewAuthHandler(app.facade, app.jwtService, app.passwordHasher, app.tokenLifetime())
	userHandler := api.NewUserHandler(app.facade)
	placeHandler := api.NewPlaceHandler(app.facade)
	reviewHandler := api.NewReviewHandler(app.facade)
	amenityHandler := api.NewAmenityHandler(app.facade)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService)

	r.Route("/api", func(r chi.Router) {
		// Authentication endpoints (public)
		r.Post("/auth/register", authHandler.Register)
		r.Post("/auth/login", authHandler.Login)

		// Public read endpoints
		r.Get("/places", placeHandler.List)
		r.Get("/places/{id}", placeHandler.Get)
		r.Get("/places/{id}/reviews", placeHandler.ListReviews)
		r.Get("/amenities", amenityHandler.List)
		r.Get("/amenities/{id}", amenityHandler.Get)
		r.Get("/reviews", reviewHandler.List)
		r.Get("/reviews/{id}", reviewHandler.Get)

		// Authenticated routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)

			r.Get("/users", userHandler.List)
			r.Get("/users/{id}", userHandler.Get)
			r.Put("/users/{id}", userHandler.Update)

			r.Post("/places", placeHandler.Create)
			r.Put("/places/{id}", placeHandler.Update)
			r.Delete("/places/{id}", placeHandler.Delete)

			r.Post("/reviews", reviewHandler.Create)
			r.Put("/reviews/{id}", reviewHandler.Update)
			r.Delete("/reviews/{id}", reviewHandler.Delete)

			// Admin-only routes
			r.Group(func(r chi.Router) {
				r.Use(authMiddleware.RequireAdmin)

				r.Post("/users", userHandler.Create)
				r.Post("/amenities", amenityHandler.Create)
				r.Put("/amenities/{id}", amenityHandler.Update)
				r.Put("/users/{id}/admin", userHandler.SetAdmin)
			})
		})
	})

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
