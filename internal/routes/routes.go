package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/fitlogapp/fitlog-backend/internal/handlers"
)

func SetupRoutes(r *chi.Mux, h *handlers.Handler) {
	// User routes
	r.Post("/api/users", h.CreateUser)
	r.Get("/api/users", h.ListUsers)

	// Exercise routes
	r.Post("/api/users/{_id}/exercises", h.AddExercise)
	r.Get("/api/users/{_id}/logs", h.GetLogs)
}
