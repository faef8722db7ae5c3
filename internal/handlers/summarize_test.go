package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/svolkov/ainotes/internal/services"
)

func TestSummarizeNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name          string
		target        string
		withUser      bool
		mockSetup     func(m *MockSummarizer)
		expectedCode  int
		expectedError string
	}{
		{
			name:     "success",
			target:   "/api/ai/notes/42/summarize",
			withUser: true,
			mockSetup: func(m *MockSummarizer) {
				m.EXPECT().Summarize(gomock.Any(), int64(42), testUser.ID).
					Return("a short summary", nil)
			},
			expectedCode: http.StatusOK,
		},
		{
			name:     "note not found",
			target:   "/api/ai/notes/99/summarize",
			withUser: true,
			mockSetup: func(m *MockSummarizer) {
				m.EXPECT().Summarize(gomock.Any(), int64(99), testUser.ID).
					Return("", services.ErrNoteNotFound)
			},
			expectedCode:  http.StatusNotFound,
			expectedError: "Note not found",
		},
		{
			name:     "provider timeout",
			target:   "/api/ai/notes/42/summarize",
			withUser: true,
			mockSetup: func(m *MockSummarizer) {
				m.EXPECT().Summarize(gomock.Any(), int64(42), testUser.ID).
					Return("", services.ErrUpstreamTimeout)
			},
			expectedCode:  http.StatusGatewayTimeout,
			expectedError: "Text generation timed out",
		},
		{
			name:     "provider failure",
			target:   "/api/ai/notes/42/summarize",
			withUser: true,
			mockSetup: func(m *MockSummarizer) {
				m.EXPECT().Summarize(gomock.Any(), int64(42), testUser.ID).
					Return("", services.ErrUpstreamUnavailable)
			},
			expectedCode:  http.StatusBadGateway,
			expectedError: "Text generation provider failed",
		},
		{
			name:         "invalid id",
			target:       "/api/ai/notes/abc/summarize",
			withUser:     true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no user in context",
			target:       "/api/ai/notes/42/summarize",
			withUser:     false,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "internal error",
			target:   "/api/ai/notes/42/summarize",
			withUser: true,
			mockSetup: func(m *MockSummarizer) {
				m.EXPECT().Summarize(gomock.Any(), int64(42), testUser.ID).
					Return("", errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockSummarizer(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewSummarizeNoteHandler(mockSvc)
			rr := serveNoteRoute(handler, http.MethodGet, "/api/ai/notes/{id}/summarize", tt.target, nil, tt.withUser)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedCode == http.StatusOK {
				var resp SummaryResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, "a short summary", resp.Summary)
			}
			if tt.expectedError != "" {
				var resp ErrorResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, tt.expectedError, resp.Error)
			}
		})
	}
}
