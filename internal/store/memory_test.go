package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitlogapp/fitlog-backend/internal/models"
)

func day(month time.Month, d int) time.Time {
	return time.Date(2024, month, d, 0, 0, 0, 0, time.UTC)
}

func TestMemoryUsers(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	alice, err := s.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.False(t, alice.ID.IsZero())
	assert.Equal(t, "alice", alice.Username)

	// Usernames are not unique; a duplicate gets a fresh id.
	alice2, err := s.CreateUser(ctx, "alice")
	require.NoError(t, err)
	assert.NotEqual(t, alice.ID, alice2.ID)

	found, err := s.FindUserByID(ctx, alice.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, alice, found)

	users, err := s.AllUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestMemoryFindUserByIDNotFound(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	_, err := s.FindUserByID(ctx, "65a000000000000000000000")
	assert.ErrorIs(t, err, ErrNotFound)

	// Malformed hex maps to the same sentinel.
	_, err = s.FindUserByID(ctx, "not-a-hex-id")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMemoryFindExercisesFiltersAndSorts(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	user, err := s.CreateUser(ctx, "alice")
	require.NoError(t, err)
	userID := user.ID.Hex()

	// Inserted out of order on purpose; results must come back ascending.
	for _, e := range []models.Exercise{
		{UserID: userID, Description: "swim", Duration: 45, Date: day(time.March, 10)},
		{UserID: userID, Description: "run", Duration: 30, Date: day(time.January, 1)},
		{UserID: userID, Description: "bike", Duration: 60, Date: day(time.February, 5)},
		{UserID: "someone-else", Description: "lift", Duration: 20, Date: day(time.January, 1)},
	} {
		_, err := s.CreateExercise(ctx, e)
		require.NoError(t, err)
	}

	log, err := s.FindExercises(ctx, userID, LogQuery{})
	require.NoError(t, err)
	require.Len(t, log, 3)
	assert.Equal(t, "run", log[0].Description)
	assert.Equal(t, "bike", log[1].Description)
	assert.Equal(t, "swim", log[2].Description)

	// Bounds are inclusive on both ends.
	from := day(time.January, 1)
	to := day(time.February, 5)
	log, err = s.FindExercises(ctx, userID, LogQuery{From: &from, To: &to})
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "run", log[0].Description)
	assert.Equal(t, "bike", log[1].Description)

	// Limit caps the result after filtering.
	log, err = s.FindExercises(ctx, userID, LogQuery{Limit: 2})
	require.NoError(t, err)
	require.Len(t, log, 2)
	assert.Equal(t, "run", log[0].Description)
}

func TestMemoryFindExercisesEmptyForUnknownUser(t *testing.T) {
	ctx := context.Background()
	s := NewMemory()

	log, err := s.FindExercises(ctx, "65a000000000000000000000", LogQuery{})
	require.NoError(t, err)
	assert.Empty(t, log)
}
