package services_test

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/svolkov/ainotes/internal/models"
	"github.com/svolkov/ainotes/internal/services"
)

func TestAIService_Summarize(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	note := &models.NoteDB{ID: 1, Title: "Shopping", Content: "milk, eggs", OwnerID: 7, UpdatedAt: updatedAt}

	t.Run("cache miss generates and caches", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		mockCache := services.NewMockGenerationCache(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, mockCache, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(1), int64(7)).Return(note, nil)
		mockCache.EXPECT().Get(gomock.Any(), "summary", int64(1), updatedAt).Return("", errors.New("cache miss"))
		mockGen.EXPECT().
			Generate(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, prompt string) (string, error) {
				assert.True(t, strings.HasPrefix(prompt, "Summarize following text effectively: "))
				assert.Contains(t, prompt, "milk, eggs")
				return "a short list", nil
			})
		mockCache.EXPECT().Set(gomock.Any(), "summary", int64(1), updatedAt, "a short list").Return(nil)

		summary, err := svc.Summarize(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, "a short list", summary)
	})

	t.Run("cache hit skips provider", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		mockCache := services.NewMockGenerationCache(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, mockCache, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(1), int64(7)).Return(note, nil)
		mockCache.EXPECT().Get(gomock.Any(), "summary", int64(1), updatedAt).Return("cached summary", nil)

		summary, err := svc.Summarize(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, "cached summary", summary)
	})

	t.Run("note not found", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, nil, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(9), int64(7)).Return(nil, nil)

		_, err := svc.Summarize(context.Background(), 9, 7)
		assert.ErrorIs(t, err, services.ErrNoteNotFound)
	})

	t.Run("provider failure maps to upstream error", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, nil, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(1), int64(7)).Return(note, nil)
		mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", errors.New("quota exceeded"))

		_, err := svc.Summarize(context.Background(), 1, 7)
		assert.ErrorIs(t, err, services.ErrUpstreamUnavailable)
	})

	t.Run("provider timeout maps to timeout error", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, nil, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(1), int64(7)).Return(note, nil)
		mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", context.DeadlineExceeded)

		_, err := svc.Summarize(context.Background(), 1, 7)
		assert.ErrorIs(t, err, services.ErrUpstreamTimeout)
	})

	t.Run("cache write failure does not fail the request", func(t *testing.T) {
		mockNotes := services.NewMockNoteReader(ctrl)
		mockGen := services.NewMockTextGenerator(ctrl)
		mockCache := services.NewMockGenerationCache(ctrl)
		svc := services.NewAIService(mockNotes, mockGen, mockCache, time.Second)

		mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(1), int64(7)).Return(note, nil)
		mockCache.EXPECT().Get(gomock.Any(), "summary", int64(1), updatedAt).Return("", errors.New("cache miss"))
		mockGen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("a short list", nil)
		mockCache.EXPECT().Set(gomock.Any(), "summary", int64(1), updatedAt, "a short list").Return(errors.New("redis down"))

		summary, err := svc.Summarize(context.Background(), 1, 7)
		assert.NoError(t, err)
		assert.Equal(t, "a short list", summary)
	})
}

func TestAIService_SuggestTitle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	updatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	note := &models.NoteDB{ID: 3, Content: "long rambling text", OwnerID: 7, UpdatedAt: updatedAt}

	mockNotes := services.NewMockNoteReader(ctrl)
	mockGen := services.NewMockTextGenerator(ctrl)
	mockCache := services.NewMockGenerationCache(ctrl)
	svc := services.NewAIService(mockNotes, mockGen, mockCache, time.Second)

	mockNotes.EXPECT().GetByIDAndOwner(gomock.Any(), int64(3), int64(7)).Return(note, nil)
	mockCache.EXPECT().Get(gomock.Any(), "title", int64(3), updatedAt).Return("", errors.New("cache miss"))
	mockGen.EXPECT().
		Generate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, prompt string) (string, error) {
			assert.True(t, strings.HasPrefix(prompt, "Generate one short title for:\n"))
			assert.Contains(t, prompt, "long rambling text")
			return "Rambles", nil
		})
	mockCache.EXPECT().Set(gomock.Any(), "title", int64(3), updatedAt, "Rambles").Return(nil)

	title, err := svc.SuggestTitle(context.Background(), 3, 7)
	assert.NoError(t, err)
	assert.Equal(t, "Rambles", title)
}
