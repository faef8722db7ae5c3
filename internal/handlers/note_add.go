package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
)

// NoteAdder defines the interface that the service must implement.
type NoteAdder interface {
	Add(ctx context.Context, ownerID int64, title, content string) (int64, error)
}

// NoteRequest represents the JSON body for adding or updating a note
// swagger:model NoteRequest
type NoteRequest struct {
	// Note title
	// required: true
	Title string `json:"title"`

	// Note body
	// required: true
	Content string `json:"content"`
}

// NewAddNoteHandler returns an HTTP handler creating a note owned by the
// caller. The created note body is not echoed back.
// @Summary Add a note
// @Description Creates a new note owned by the authenticated user
// @Tags notes
// @Accept json
// @Produce json
// @Param noteRequest body handlers.NoteRequest true "Note to create"
// @Success 201 {object} handlers.StatusResponse "Note created"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Router /api/notes/add [post]
// @Security BearerAuth
func NewAddNoteHandler(svc NoteAdder) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		user, ok := currentUser(w, r)
		if !ok {
			return
		}

		var req NoteRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			w.WriteHeader(http.StatusBadRequest)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "invalid request body"})
			return
		}

		if _, err := svc.Add(r.Context(), user.ID, req.Title, req.Content); err != nil {
			logger.Log.Errorw("failed to add note", "userID", user.ID, "err", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(StatusResponse{
			Status:  http.StatusCreated,
			Message: "Note added successfully",
		})
	}
}
