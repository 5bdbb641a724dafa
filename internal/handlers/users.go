package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

type createUserRequest struct {
	Username string `json:"username"`
}

// UserResponse is the created-user and user-listing shape: the username plus
// the store-assigned identifier.
type UserResponse struct {
	Username string `json:"username"`
	ID       string `json:"_id"`
}

// CreateUser handles POST /api/users.
func (h *Handler) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if isJSON(r) {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, "invalid request body")
			return
		}
	} else {
		req.Username = r.PostFormValue("username")
	}

	if req.Username == "" {
		respondError(w, "username is required")
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	user, err := h.users.CreateUser(ctx, req.Username)
	if err != nil {
		respondError(w, err.Error())
		return
	}

	respondJSON(w, http.StatusOK, UserResponse{
		Username: user.Username,
		ID:       user.ID.Hex(),
	})
}

// ListUsers handles GET /api/users. Users are projected to _id and username
// only; exercises are never embedded.
func (h *Handler) ListUsers(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), storeTimeout)
	defer cancel()

	users, err := h.users.AllUsers(ctx)
	if err != nil {
		respondError(w, err.Error())
		return
	}

	out := make([]UserResponse, 0, len(users))
	for _, user := range users {
		out = append(out, UserResponse{
			Username: user.Username,
			ID:       user.ID.Hex(),
		})
	}

	respondJSON(w, http.StatusOK, out)
}
