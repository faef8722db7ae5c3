package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/models"
)

// NoteLister defines the interface that the service must implement.
type NoteLister interface {
	List(ctx context.Context, ownerID int64) ([]models.NoteDB, error)
}

// NoteListResponse represents the list of notes owned by the caller
// swagger:model NoteListResponse
type NoteListResponse struct {
	// Notes owned by the authenticated user
	Notes []models.NoteDB `json:"notes"`
}

// NewListNotesHandler returns an HTTP handler listing the caller's notes.
// @Summary List notes
// @Description Returns all notes owned by the authenticated user
// @Tags notes
// @Produce json
// @Success 200 {object} handlers.NoteListResponse "Notes"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/notes/ [get]
// @Security BearerAuth
func NewListNotesHandler(svc NoteLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		notes, err := svc.List(r.Context(), user.ID)
		if err != nil {
			logger.Log.Errorw("failed to list notes", "userID", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NoteListResponse{Notes: notes})
	}
}
