package middlewares

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/svolkov/ainotes/internal/jwt"
	"github.com/svolkov/ainotes/internal/models"
)

func TestAuthMiddleware(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	user := &models.UserDB{ID: 7, Name: "Ann", Email: "ann@x.com"}

	tests := []struct {
		name             string
		mockSetup        func(tok *MockTokener, users *MockUserReader)
		expectedStatus   int
		expectNextCalled bool
		expectChallenge  bool
	}{
		{
			name: "NoToken",
			mockSetup: func(tok *MockTokener, users *MockUserReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("", errors.New("no token"))
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "InvalidToken",
			mockSetup: func(tok *MockTokener, users *MockUserReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("sometoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "sometoken").
					Return(nil, jwt.ErrInvalidToken)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "UnknownSubject",
			mockSetup: func(tok *MockTokener, users *MockUserReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Email: "ghost@x.com"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "ghost@x.com").
					Return(nil, nil)
			},
			expectedStatus:  http.StatusUnauthorized,
			expectChallenge: true,
		},
		{
			name: "UserLookupError",
			mockSetup: func(tok *MockTokener, users *MockUserReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Email: "ann@x.com"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "ann@x.com").
					Return(nil, errors.New("db down"))
			},
			expectedStatus: http.StatusInternalServerError,
		},
		{
			name: "ValidToken",
			mockSetup: func(tok *MockTokener, users *MockUserReader) {
				tok.EXPECT().GetTokenFromRequest(gomock.Any(), gomock.Any()).
					Return("validtoken", nil)
				tok.EXPECT().GetClaims(gomock.Any(), "validtoken").
					Return(&jwt.Claims{Email: "ann@x.com"}, nil)
				users.EXPECT().GetByEmail(gomock.Any(), "ann@x.com").
					Return(user, nil)
			},
			expectedStatus:   http.StatusOK,
			expectNextCalled: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockTokener := NewMockTokener(ctrl)
			mockUsers := NewMockUserReader(ctrl)
			tt.mockSetup(mockTokener, mockUsers)

			nextCalled := false
			nextHandler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				nextCalled = true
				// The resolved user must be attached to the context
				assert.Equal(t, user, GetUserFromContext(r.Context()))
				w.WriteHeader(http.StatusOK)
			})

			handler := AuthMiddleware(mockTokener, mockUsers)(nextHandler)

			req := httptest.NewRequest(http.MethodGet, "/", nil)
			rr := httptest.NewRecorder()

			handler.ServeHTTP(rr, req)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.expectNextCalled, nextCalled)
			if tt.expectChallenge {
				assert.Equal(t, "Bearer", rr.Header().Get("WWW-Authenticate"))
			}
		})
	}
}

func TestGetUserFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	assert.Nil(t, GetUserFromContext(req.Context()))
}
