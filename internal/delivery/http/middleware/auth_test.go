package middleware

import (
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeVerifier struct {
	verifyAccessFn  func(token string) (string, error)
	verifyRefreshFn func(token string) (string, error)
}

func (f *fakeVerifier) VerifyAccess(token string) (string, error) {
	return f.verifyAccessFn(token)
}

func (f *fakeVerifier) VerifyRefresh(token string) (string, error) {
	return f.verifyRefreshFn(token)
}

func TestRequireAuth(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	verifier := &fakeVerifier{
		verifyAccessFn: func(token string) (string, error) {
			if token == "valid-token" {
				return "user-uuid-1", nil
			}
			return "", errors.New("invalid token")
		},
	}

	newHandler := func(called *bool, gotUserID *string) http.HandlerFunc {
		return RequireAuth(verifier, logger)(func(w http.ResponseWriter, r *http.Request) {
			*called = true
			if id, ok := UserIDFromContext(r.Context()); ok {
				*gotUserID = id
			}
			w.WriteHeader(http.StatusOK)
		})
	}

	t.Run("valid token sets user id in context", func(t *testing.T) {
		var called bool
		var userID string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer valid-token")
		rec := httptest.NewRecorder()
		newHandler(&called, &userID)(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.True(t, called)
		assert.Equal(t, "user-uuid-1", userID)
	})

	t.Run("missing header returns 401", func(t *testing.T) {
		var called bool
		var userID string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		newHandler(&called, &userID)(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("non-bearer scheme returns 401", func(t *testing.T) {
		var called bool
		var userID string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Basic dXNlcjpwYXNz")
		rec := httptest.NewRecorder()
		newHandler(&called, &userID)(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("invalid token returns 401", func(t *testing.T) {
		var called bool
		var userID string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer expired-token")
		rec := httptest.NewRecorder()
		newHandler(&called, &userID)(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})

	t.Run("empty token returns 401", func(t *testing.T) {
		var called bool
		var userID string
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Authorization", "Bearer ")
		rec := httptest.NewRecorder()
		newHandler(&called, &userID)(rec, req)

		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.False(t, called)
	})
}
