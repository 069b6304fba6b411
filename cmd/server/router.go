package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/placeshare/places-api/internal/api"
	apiMiddleware "github.com/placeshare/places-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)

	userHandler := api.NewUserHandler(app.userService, app.fileStore, app.config.Upload.MaxBytes)
	placeHandler := api.NewPlaceHandler(app.placeService, app.fileStore, app.config.Upload.MaxBytes)
	authMiddleware := apiMiddleware.NewAuthMiddleware(app.tokenService)

	r.Route("/api", func(r chi.Router) {
		// User endpoints (public)
		r.Get("/users", userHandler.ListUsers)
		r.Post("/users/signup", userHandler.SignUp)
		r.Post("/users/login", userHandler.LogIn)

		// Place reads (public)
		r.Get("/places/{placeID}", placeHandler.GetPlace)
		r.Get("/places/user/{userID}", placeHandler.ListPlacesByUser)

		// Place mutations (authenticated)
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware.Authenticate)
			r.Post("/places", placeHandler.CreatePlace)
			r.Patch("/places/{placeID}", placeHandler.UpdatePlace)
			r.Delete("/places/{placeID}", placeHandler.DeletePlace)
		})
	})

	// Stored images are served straight off the upload directory
	uploadsDir := http.Dir(app.config.Upload.Dir)
	r.Handle("/uploads/images/*", http.StripPrefix("/uploads/images/", http.FileServer(uploadsDir)))

	// Health check endpoint
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte("OK")); err != nil {
			app.logger.Error("Failed to write health check response", "error", err)
		}
	})

	return r
}
