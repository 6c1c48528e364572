// Package auth issues and clears the admin session cookie. The session gate
// only checks cookie presence, but the value is still a signed token so the
// gate can be hardened later without changing the issuer.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/golang-jwt/jwt/v5"

	"uniguide/internal/platform/config"
	"uniguide/internal/platform/middleware"
	dErrors "uniguide/pkg/domain-errors"
	"uniguide/pkg/platform/httputil"
)

// Handler serves the login and logout endpoints for the single admin
// account.
type Handler struct {
	logger        *slog.Logger
	cookieName    string
	signingKey    []byte
	ttl           time.Duration
	adminEmail    string
	adminPassword string
	now           func() time.Time
}

func New(cfg config.Config, logger *slog.Logger) *Handler {
	return &Handler{
		logger:        logger,
		cookieName:    cfg.SessionCookieName,
		signingKey:    []byte(cfg.SessionSigningKey),
		ttl:           cfg.SessionTTL,
		adminEmail:    cfg.AdminEmail,
		adminPassword: cfg.AdminPassword,
		now:           time.Now,
	}
}

// Register mounts the auth routes.
func (h *Handler) Register(r chi.Router) {
	r.Post("/api/auth/login", h.handleLogin)
	r.Post("/api/auth/logout", h.handleLogout)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid request body"))
		return
	}

	emailOK := subtle.ConstantTimeCompare([]byte(req.Email), []byte(h.adminEmail)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.adminPassword)) == 1
	if !emailOK || !passOK {
		h.logger.WarnContext(r.Context(), "login rejected",
			"request_id", middleware.GetRequestID(r.Context()),
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeUnauthorized, "invalid credentials"))
		return
	}

	now := h.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": req.Email,
		"iat": now.Unix(),
		"exp": now.Add(h.ttl).Unix(),
	})
	signed, err := token.SignedString(h.signingKey)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "session token signing failed",
			"request_id", middleware.GetRequestID(r.Context()),
			"error", err,
		)
		httputil.WriteError(w, dErrors.New(dErrors.CodeInternal, "failed to create session"))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    signed,
		Path:     "/",
		Expires:  now.Add(h.ttl),
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	httputil.WriteJSON(w, http.StatusOK, map[string]string{"email": req.Email})
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     h.cookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}
