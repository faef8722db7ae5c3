package handlers

import (
	"context"
	"encoding/json"
	"net/http"
)

// TitleSuggester defines the interface that the AI service must implement.
type TitleSuggester interface {
	SuggestTitle(ctx context.Context, noteID, ownerID int64) (string, error)
}

// TitleResponse carries a generated title
// swagger:model TitleResponse
type TitleResponse struct {
	Title string `json:"title"`
}

// NewSuggestTitleHandler returns an HTTP handler generating a title for an
// owned note's content.
// @Summary Suggest a note title
// @Description Generates a short title for an owned note's content
// @Tags ai
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.TitleResponse "Generated title"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Provider failed"
// @Failure 504 {object} handlers.ErrorResponse "Provider timed out"
// @Router /api/ai/notes/{id}/suggest-title [get]
// @Security BearerAuth
func NewSuggestTitleHandler(svc TitleSuggester) http.HandlerFunc {
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

		title, err := svc.SuggestTitle(r.Context(), id, user.ID)
		if err != nil {
			writeGenerationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(TitleResponse{Title: title})
	}
}
