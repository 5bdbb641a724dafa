package store

import (
	"context"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/fitlogapp/fitlog-backend/internal/models"
)

// Memory is an in-memory store used by tests and local development. It
// mirrors the Mongo implementation's observable behavior, including the
// ascending-by-date log order.
type Memory struct {
	mu        sync.Mutex
	users     []models.User
	exercises []models.Exercise
}

func NewMemory() *Memory {
	return &Memory{}
}

var _ UserStore = (*Memory)(nil)
var _ ExerciseStore = (*Memory)(nil)

func (s *Memory) CreateUser(ctx context.Context, username string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:       primitive.NewObjectID(),
		Username: username,
	}
	s.users = append(s.users, user)
	return user, nil
}

func (s *Memory) FindUserByID(ctx context.Context, id string) (models.User, error) {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return models.User{}, ErrNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, user := range s.users {
		if user.ID == objectID {
			return user, nil
		}
	}
	return models.User{}, ErrNotFound
}

func (s *Memory) AllUsers(ctx context.Context) ([]models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, len(s.users))
	copy(users, s.users)
	return users, nil
}

func (s *Memory) CreateExercise(ctx context.Context, exercise models.Exercise) (models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	exercise.ID = primitive.NewObjectID()
	s.exercises = append(s.exercises, exercise)
	return exercise, nil
}

func (s *Memory) FindExercises(ctx context.Context, userID string, q LogQuery) ([]models.Exercise, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var log []models.Exercise
	for _, e := range s.exercises {
		if e.UserID != userID {
			continue
		}
		if q.From != nil && e.Date.Before(*q.From) {
			continue
		}
		if q.To != nil && e.Date.After(*q.To) {
			continue
		}
		log = append(log, e)
	}

	sort.SliceStable(log, func(i, j int) bool {
		return log[i].Date.Before(log[j].Date)
	})

	if q.Limit > 0 && int64(len(log)) > q.Limit {
		log = log[:q.Limit]
	}
	return log, nil
}
