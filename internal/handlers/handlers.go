// Package handlers implements the HTTP endpoints of the exercise tracker.
// Store dependencies are injected so tests can run against the in-memory
// implementation.
package handlers

import (
	"time"

	"github.com/fitlogapp/fitlog-backend/internal/store"
)

// storeTimeout bounds every store operation issued on behalf of a request.
const storeTimeout = 5 * time.Second

type Handler struct {
	users     store.UserStore
	exercises store.ExerciseStore
}

func New(users store.UserStore, exercises store.ExerciseStore) *Handler {
	return &Handler{
		users:     users,
		exercises: exercises,
	}
}
