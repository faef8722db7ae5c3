package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/svolkov/ainotes/internal/middlewares"
	"github.com/svolkov/ainotes/internal/models"
)

// StatusResponse is the confirmation body returned by note mutations.
// swagger:model StatusResponse
type StatusResponse struct {
	// HTTP-style status code echoed in the body
	Status int `json:"status"`

	// Confirmation message
	Message string `json:"message"`
}

// currentUser pulls the authenticated user from the request context. The
// auth middleware guarantees it is present on protected routes; a missing
// user means the route was wired without the middleware.
func currentUser(w http.ResponseWriter, r *http.Request) (*models.UserDB, bool) {
	user := middlewares.GetUserFromContext(r.Context())
	if user == nil {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Unauthorized"})
		return nil, false
	}
	return user, true
}

// parseNoteID reads the {id} URL parameter.
func parseNoteID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid note id"})
		return 0, false
	}
	return id, true
}
