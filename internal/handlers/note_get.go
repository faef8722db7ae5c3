package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/models"
	"github.com/svolkov/ainotes/internal/services"
)

// NoteGetter defines the interface that the service must implement.
type NoteGetter interface {
	GetByID(ctx context.Context, id, ownerID int64) (*models.NoteDB, error)
}

// NoteResponse wraps a single note
// swagger:model NoteResponse
type NoteResponse struct {
	Note *models.NoteDB `json:"note"`
}

// NewGetNoteHandler returns an HTTP handler fetching one owned note.
// A note owned by another user is reported as not found.
// @Summary Get a note
// @Description Returns the note with the given id when owned by the caller
// @Tags notes
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.NoteResponse "Note"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/notes/{id} [get]
// @Security BearerAuth
func NewGetNoteHandler(svc NoteGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user, ok := currentUser(w, r)
		if !ok {
			return
		}
		id, ok := parseNoteID(w, r)
		if !ok {
			return
		}

		note, err := svc.GetByID(r.Context(), id, user.ID)
		if err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Note not found"})
				return
			}
			logger.Log.Errorw("failed to get note", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(NoteResponse{Note: note})
	}
}
