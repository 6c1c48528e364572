package auth

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"uniguide/internal/platform/config"
)

var authTestNow = time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

func newTestServer(t *testing.T) *chi.Mux {
	t.Helper()
	cfg := config.Config{
		SessionCookieName: "ug_auth",
		SessionSigningKey: "test-key",
		SessionTTL:        7 * 24 * time.Hour,
		AdminEmail:        "admin@uniguide.test",
		AdminPassword:     "hunter2",
	}
	h := New(cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.now = func() time.Time { return authTestNow }

	r := chi.NewRouter()
	h.Register(r)
	return r
}

func postLogin(t *testing.T, r http.Handler, email, password string) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(map[string]string{"email": email, "password": password})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader(raw))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func sessionCookie(t *testing.T, rec *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, c := range rec.Result().Cookies() {
		if c.Name == "ug_auth" {
			return c
		}
	}
	t.Fatal("session cookie not set")
	return nil
}

func TestLoginIssuesSignedSession(t *testing.T) {
	r := newTestServer(t)

	rec := postLogin(t, r, "admin@uniguide.test", "hunter2")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"email": "admin@uniguide.test"}`, rec.Body.String())

	cookie := sessionCookie(t, rec)
	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, "/", cookie.Path)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)

	token, err := jwt.Parse(cookie.Value, func(*jwt.Token) (any, error) {
		return []byte("test-key"), nil
	}, jwt.WithTimeFunc(func() time.Time { return authTestNow }))
	require.NoError(t, err)
	claims := token.Claims.(jwt.MapClaims)
	assert.Equal(t, "admin@uniguide.test", claims["sub"])
	assert.Equal(t, float64(authTestNow.Add(7*24*time.Hour).Unix()), claims["exp"])
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	r := newTestServer(t)

	cases := []struct{ email, password string }{
		{"admin@uniguide.test", "wrong"},
		{"intruder@uniguide.test", "hunter2"},
		{"", ""},
	}
	for _, tc := range cases {
		rec := postLogin(t, r, tc.email, tc.password)
		require.Equal(t, http.StatusUnauthorized, rec.Code)
		assert.JSONEq(t, `{"error": "invalid credentials"}`, rec.Body.String())
		assert.Empty(t, rec.Result().Cookies())
	}
}

func TestLoginMalformedBody(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestServer(t)

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNoContent, rec.Code)

	cookie := sessionCookie(t, rec)
	assert.Empty(t, cookie.Value)
	assert.Negative(t, cookie.MaxAge)
}
