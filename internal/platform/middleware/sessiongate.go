package middleware

import (
	"net/http"
	"regexp"
	"strings"
)

// fileExt matches paths whose last segment carries an extension, e.g.
// /logo.png or /static/app.js. Those are public assets.
var fileExt = regexp.MustCompile(`\.[^/]+$`)

// SessionGate guards every page route behind the admin session cookie.
//
// The check is presence-only: any non-empty cookie value counts as a session.
// Signature and expiry of the token are intentionally not verified here; the
// login handler is the only issuer and this mirrors the deployed contract.
//
// API routes, public assets and operational endpoints bypass the gate. The
// login page inverts the check so a signed-in admin lands on the dashboard.
func SessionGate(cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			path := r.URL.Path

			if isPublicPath(path) {
				next.ServeHTTP(w, r)
				return
			}

			loggedIn := false
			if c, err := r.Cookie(cookieName); err == nil && c.Value != "" {
				loggedIn = true
			}

			if path == "/login" {
				if loggedIn {
					http.Redirect(w, r, "/dashboard", http.StatusTemporaryRedirect)
					return
				}
				next.ServeHTTP(w, r)
				return
			}

			if !loggedIn {
				http.Redirect(w, r, "/login", http.StatusTemporaryRedirect)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

func isPublicPath(path string) bool {
	switch {
	case strings.HasPrefix(path, "/api"),
		strings.HasPrefix(path, "/static"),
		strings.HasPrefix(path, "/favicon"),
		path == "/healthz",
		path == "/metrics":
		return true
	}
	return fileExt.MatchString(path)
}
