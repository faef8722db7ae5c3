package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/svolkov/ainotes/internal/middlewares"
	"github.com/svolkov/ainotes/internal/models"
)

var testUser = &models.UserDB{ID: 7, Name: "Ann", Email: "ann@x.com"}

// authed attaches the test user to the request context, the way the auth
// middleware does on protected routes.
func authed(r *http.Request) *http.Request {
	return r.WithContext(middlewares.WithUser(r.Context(), testUser))
}

// serveNoteRoute dispatches the request through a chi router so that the
// {id} URL parameter is populated.
func serveNoteRoute(handler http.HandlerFunc, method, pattern, target string, body io.Reader, withUser bool) *httptest.ResponseRecorder {
	router := chi.NewRouter()
	router.Method(method, pattern, handler)

	req := httptest.NewRequest(method, target, body)
	if withUser {
		req = authed(req)
	}
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

func TestParseNoteID_Invalid(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		if _, ok := parseNoteID(w, r); !ok {
			return
		}
		t.Fatal("expected invalid id to be rejected")
	}

	rr := serveNoteRoute(handler, http.MethodGet, "/{id}", "/abc", nil, true)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}
