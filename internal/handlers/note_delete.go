package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/services"
)

// NoteDeleter defines the interface that the service must implement.
type NoteDeleter interface {
	Delete(ctx context.Context, id, ownerID int64) error
}

// NewDeleteNoteHandler returns an HTTP handler deleting an owned note.
// A note owned by another user is reported as not found.
// @Summary Delete a note
// @Description Deletes an owned note
// @Tags notes
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.StatusResponse "Note deleted"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/notes/delete/{id} [delete]
// @Security BearerAuth
func NewDeleteNoteHandler(svc NoteDeleter) http.HandlerFunc {
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

		if err := svc.Delete(r.Context(), id, user.ID); err != nil {
			if errors.Is(err, services.ErrNoteNotFound) {
				w.WriteHeader(http.StatusNotFound)
				json.NewEncoder(w).Encode(ErrorResponse{Error: "Note not found"})
				return
			}
			logger.Log.Errorw("failed to delete note", "id", id, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(StatusResponse{
			Status:  http.StatusOK,
			Message: "Note deleted successfully",
		})
	}
}
