// Package store persists User and Exercise documents. Handlers depend on the
// two interfaces below, so tests run against the in-memory implementation
// while the server wires in Mongo.
package store

import (
	"context"
	"errors"

	"github.com/fitlogapp/fitlog-backend/internal/models"
)

// ErrNotFound is returned when a user id does not resolve. A syntactically
// invalid ObjectID hex maps to it as well.
var ErrNotFound = errors.New("user not found")

type UserStore interface {
	CreateUser(ctx context.Context, username string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	AllUsers(ctx context.Context) ([]models.User, error)
}

type ExerciseStore interface {
	CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error)
	// FindExercises returns the user's exercises matching q, ascending by date.
	FindExercises(ctx context.Context, userID string, q LogQuery) ([]models.Exercise, error)
}
