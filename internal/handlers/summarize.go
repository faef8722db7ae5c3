package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/svolkov/ainotes/internal/logger"
	"github.com/svolkov/ainotes/internal/services"
)

// Summarizer defines the interface that the AI service must implement.
type Summarizer interface {
	Summarize(ctx context.Context, noteID, ownerID int64) (string, error)
}

// SummaryResponse carries a generated summary
// swagger:model SummaryResponse
type SummaryResponse struct {
	Summary string `json:"summary"`
}

// writeGenerationError maps text-generation failures to HTTP statuses:
// provider timeout becomes 504, any other provider failure 502.
func writeGenerationError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, services.ErrNoteNotFound):
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Note not found"})
	case errors.Is(err, services.ErrUpstreamTimeout):
		w.WriteHeader(http.StatusGatewayTimeout)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Text generation timed out"})
	case errors.Is(err, services.ErrUpstreamUnavailable):
		w.WriteHeader(http.StatusBadGateway)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Text generation provider failed"})
	default:
		logger.Log.Errorw("internal server error", "err", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(ErrorResponse{Error: "Internal server error"})
	}
}

// NewSummarizeNoteHandler returns an HTTP handler generating a summary of an
// owned note's content.
// @Summary Summarize a note
// @Description Generates a summary of an owned note's content
// @Tags ai
// @Produce json
// @Param id path int true "Note id"
// @Success 200 {object} handlers.SummaryResponse "Generated summary"
// @Failure 404 {object} handlers.ErrorResponse "Note not found"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 502 {object} handlers.ErrorResponse "Provider failed"
// @Failure 504 {object} handlers.ErrorResponse "Provider timed out"
// @Router /api/ai/notes/{id}/summarize [get]
// @Security BearerAuth
func NewSummarizeNoteHandler(svc Summarizer) http.HandlerFunc {
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

		summary, err := svc.Summarize(r.Context(), id, user.ID)
		if err != nil {
			writeGenerationError(w, err)
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(SummaryResponse{Summary: summary})
	}
}
