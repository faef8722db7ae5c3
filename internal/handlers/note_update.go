package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/services"
)

// NoteUpdater defines the interface that the service must implement.
type NoteUpdater interface {
	Update(ctx context.Context, id, ownerID int64, title, content string) error
}

// NewUpdateNoteHandler returns an HTTP handler overwriting an owned note's
// title and content. A note owned by another user is reported as not found.
// @Summary Update a note
// @Description Overwrites title and content of an owned note
// @Tags notes
// @Accept json
// @Produce json
// @Param id path int true "Note id"
// @Param noteRequest body handlers.NoteRequest true "New title and content"
// @Success 200 {object} handlers.StatusResponse "Note updated"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/notes/update/{id} [put]
// @Security BearerAuth
func NewUpdateNoteHandler(svc NoteUpdater) http.HandlerFunc {
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

		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if err := svc.Update(r.Context(), id, user.ID, req.Title, req.Content); err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Note not found"})
				return
			}
			logger.Log.Errorw("failed to update note", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{
			Status:  http.StatusOK,
			Message: "Note updated successfully",
		})
	}
}
