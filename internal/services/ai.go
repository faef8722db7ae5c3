package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/svolkov/ainotes/internal/logger"
)

// Error variables for the external text-generation provider.
var (
	ErrUpstreamTimeout     = errors.New("text generation timed out")
	ErrUpstreamUnavailable = errors.New("text generation provider failed")
)

// Cache kinds for generated text.
const (
	kindSummary = "summary"
	kindTitle   = "title"
)

// TextGenerator produces text for a prompt.
type TextGenerator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// GenerationCache caches generated text per note revision.
type GenerationCache interface {
	Get(ctx context.Context, kind string, noteID int64, updatedAt time.Time) (string, error)
	Set(ctx context.Context, kind string, noteID int64, updatedAt time.Time, text string) error
}

// AIService augments owned notes with generated summaries and titles.
type AIService struct {
	notes     NoteReader
	generator TextGenerator
	cache     GenerationCache
	timeout   time.Duration
}

// NewAIService creates a new AIService. A nil cache disables caching; every
// provider call runs under the given timeout.
func NewAIService(notes NoteReader, generator TextGenerator, cache GenerationCache, timeout time.Duration) *AIService {
	return &AIService{
		notes:     notes,
		generator: generator,
		cache:     cache,
		timeout:   timeout,
	}
}

// Summarize returns a generated summary of the owned note's content.
func (s *AIService) Summarize(ctx context.Context, noteID, ownerID int64) (string, error) {
	return s.generate(ctx, noteID, ownerID, kindSummary, "Summarize following text effectively: %s")
}

// SuggestTitle returns a generated title for the owned note's content.
func (s *AIService) SuggestTitle(ctx context.Context, noteID, ownerID int64) (string, error) {
	return s.generate(ctx, noteID, ownerID, kindTitle, "Generate one short title for:\n%s")
}

func (s *AIService) generate(ctx context.Context, noteID, ownerID int64, kind, promptFormat string) (string, error) {
	note, err := s.notes.GetByIDAndOwner(ctx, noteID, ownerID)
	if err != nil {
		logger.Log.Errorw("failed to get note for generation", "id", noteID, "ownerID", ownerID, "error", err)
		return "", err
	}
	if note == nil {
		return "", ErrNoteNotFound
	}

	if s.cache != nil {
		if text, err := s.cache.Get(ctx, kind, note.ID, note.UpdatedAt); err == nil {
			return text, nil
		}
	}

	genCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	text, err := s.generator.Generate(genCtx, fmt.Sprintf(promptFormat, note.Content))
	if err != nil {
		logger.Log.Errorw("text generation failed", "note_id", note.ID, "kind", kind, "error", err)
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(genCtx.Err(), context.DeadlineExceeded) {
			return "", ErrUpstreamTimeout
		}
		return "", ErrUpstreamUnavailable
	}

	if s.cache != nil {
		if err := s.cache.Set(ctx, kind, note.ID, note.UpdatedAt, text); err != nil {
			logger.Log.Errorw("failed to cache generation", "note_id", note.ID, "kind", kind, "error", err)
		}
	}

	return text, nil
}
