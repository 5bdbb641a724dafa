package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/fitlogapp/fitlog-backend/internal/models"
	"github.com/fitlogapp/fitlog-backend/internal/store"
)

// flexString decodes from either a JSON string or a JSON number, since
// clients send duration both ways ("30" via form posts, 30 via JSON).
type flexString string

func (s *flexString) UnmarshalJSON(b []byte) error {
	if len(b) > 0 && b[0] == '"' {
		var v string
		if err := json.Unmarshal(b, &v); err != nil {
			return err
		}
		*s = flexString(v)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*s = flexString(n.String())
	return nil
}

type addExerciseRequest struct {
	Description string     `json:"description"`
	Duration    flexString `json:"duration"`
	Date        string     `json:"date"`
}

// ExerciseResponse is the add-exercise shape. The _id field carries the
// owning user's identifier, not the exercise's own; existing clients depend
// on this.
type ExerciseResponse struct {
	Username    string `json:"username"`
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
	ID          string `json:"_id"`
}

type logEntry struct {
	Description string `json:"description"`
	Duration    int    `json:"duration"`
	Date        string `json:"date"`
}

// LogResponse is the log-retrieval shape. Count is the number of entries
// actually returned after limiting, not the total match count.
type LogResponse struct {
	Username string     `json:"username"`
	Count    int        `json:"count"`
	ID       string     `json:"_id"`
	Log      []logEntry `json:"log"`
}

// AddExercise handles POST /api/users/{_id}/exercises.
func (h *Handler) AddExercise(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.users.FindUserByID(ctx, chi.URLParam(r, "_id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, "User not found")
		return
	}
	if err != nil {
		respondError(w, err.Error())
		return
	}

	var req addExerciseRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "invalid request body")
			return
		}
	} else {
		req.Description = r.PostFormValue("description")
		req.Duration = flexString(r.PostFormValue("duration"))
		req.Date = r.PostFormValue("date")
	}

	if req.Description == "" {
		respondError(w, "description is required")
		return
	}

	duration, err := strconv.Atoi(string(req.Duration))
	if err != nil {
		respondError(w, "duration must be an integer")
		return
	}

	date := time.Now().UTC()
	if req.Date != "" {
		date, err = time.Parse(store.DateLayout, req.Date)
		if err != nil {
			respondError(w, "invalid date, expected YYYY-MM-DD")
			return
		}
	}

	exercise, err := h.exercises.CreateExercise(ctx, models.Exercise{
		UserID:      user.ID.Hex(),
		Description: req.Description,
		Duration:    duration,
		Date:        date,
	})
	if err != nil {
		respondError(w, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, ExerciseResponse{
		Username:    user.Username,
		Description: exercise.Description,
		Duration:    exercise.Duration,
		Date:        exercise.DateString(),
		ID:          user.ID.Hex(),
	})
}

// GetLogs handles GET /api/users/{_id}/logs with optional from, to and limit
// query parameters.
func (h *Handler) GetLogs(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.users.FindUserByID(ctx, chi.URLParam(r, "_id"))
	if errors.Is(err, store.ErrNotFound) {
		respondError(w, "User not found")
		return
	}
	if err != nil {
		respondError(w, err.Error())
		return
	}

	query, err := store.ParseLogQuery(r.URL.Query())
	if err != nil {
		respondError(w, err.Error())
		return
	}

	exercises, err := h.exercises.FindExercises(ctx, user.ID.Hex(), query)
	if err != nil {
		respondError(w, err.Error())
		return
	}

	log := make([]logEntry, 0, len(exercises))
	for _, e := range exercises {
		log = append(log, logEntry{
			Description: e.Description,
			Duration:    e.Duration,
			Date:        e.DateString(),
		})
	}

	respondJSON(w, http.StatusOK, LogResponse{
		Username: user.Username,
		Count:    len(log),
		ID:       user.ID.Hex(),
		Log:      log,
	})
}
