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

func TestDeleteNoteHandler(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	tests := []struct {
		name         string
		target       string
		withUser     bool
		mockSetup    func(m *MockNoteDeleter)
		expectedCode int
		expectedBody *StatusResponse
	}{
		{
			name:     "success",
			target:   "/api/notes/delete/42",
			withUser: true,
			mockSetup: func(m *MockNoteDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42), testUser.ID).Return(nil)
			},
			expectedCode: http.StatusOK,
			expectedBody: &StatusResponse{Status: http.StatusOK, Message: "Note deleted successfully"},
		},
		{
			name:     "note not found",
			target:   "/api/notes/delete/99",
			withUser: true,
			mockSetup: func(m *MockNoteDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(99), testUser.ID).
					Return(services.ErrNoteNotFound)
			},
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid id",
			target:       "/api/notes/delete/abc",
			withUser:     true,
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "no user in context",
			target:       "/api/notes/delete/42",
			withUser:     false,
			expectedCode: http.StatusUnauthorized,
		},
		{
			name:     "service error",
			target:   "/api/notes/delete/42",
			withUser: true,
			mockSetup: func(m *MockNoteDeleter) {
				m.EXPECT().Delete(gomock.Any(), int64(42), testUser.ID).
					Return(errors.New("database failure"))
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := NewMockNoteDeleter(ctrl)
			if tt.mockSetup != nil {
				tt.mockSetup(mockSvc)
			}

			handler := NewDeleteNoteHandler(mockSvc)
			rr := serveNoteRoute(handler, http.MethodDelete, "/api/notes/delete/{id}", tt.target, nil, tt.withUser)

			assert.Equal(t, tt.expectedCode, rr.Code)

			if tt.expectedBody != nil {
				var resp StatusResponse
				assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
				assert.Equal(t, *tt.expectedBody, resp)
			}
		})
	}
}
