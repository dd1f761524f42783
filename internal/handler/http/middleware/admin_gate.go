package middleware

import (
	"crypto/subtle"
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/infrastructure/metrics"
)

const (
	// SessionCookieName is the cookie written by the login endpoint.
	SessionCookieName = "qs_admin"
	// SessionSentinel marks a session established via password login.
	SessionSentinel = "1"
	// LoginPath is where unauthenticated admin UI requests are sent.
	LoginPath = "/admin/login"
)

// sessionCookieNames is the fixed set of cookies recognized as a session
// credential, checked in order.
var sessionCookieNames = []string{"qs_admin_session", "qs_admin", "qs_admin_token"}

// AdminGate authorizes admin requests against a single shared secret. This is
// deliberately not a session system: no per-user identity, no server-side
// store, no revocation. Possession of the secret (or the sentinel cookie the
// login endpoint writes) is the whole signal.
type AdminGate struct {
	secret string
}

// NewAdminGate creates the gate. An empty secret closes the admin surface
// entirely.
func NewAdminGate(secret string) *AdminGate {
	return &AdminGate{secret: secret}
}

// bearerToken extracts the token from an "Authorization: Bearer <t>" header.
func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	kind, token, found := strings.Cut(auth, " ")
	if !found || kind != "Bearer" || token == "" {
		return "", false
	}
	return token, true
}

// sessionToken extracts the value of the first recognized session cookie.
// This is the single normalized extraction step: gate logic below never
// touches raw headers.
func sessionToken(r *http.Request) (string, bool) {
	for _, name := range sessionCookieNames {
		if cookie, err := r.Cookie(name); err == nil && cookie.Value != "" {
			if val, err := url.QueryUnescape(cookie.Value); err == nil {
				return val, true
			}
			return cookie.Value, true
		}
	}
	return "", false
}

// Authorized decides the request. Fails closed when no secret is configured.
func (g *AdminGate) Authorized(r *http.Request) bool {
	if g.secret == "" {
		return false
	}
	if token, ok := bearerToken(r); ok && secretsEqual(token, g.secret) {
		return true
	}
	if token, ok := sessionToken(r); ok {
		if secretsEqual(token, g.secret) || token == SessionSentinel {
			return true
		}
	}
	return false
}

// Handler returns the gin middleware for admin-prefixed routes. API paths get
// a 401 JSON body; UI paths redirect to the login page with a "from"
// parameter so the UI can return the user after login.
func (g *AdminGate) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		if g.Authorized(c.Request) {
			metrics.AdminGateDecisions.WithLabelValues("authorized").Inc()
			c.Next()
			return
		}
		metrics.AdminGateDecisions.WithLabelValues("unauthorized").Inc()

		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		redirect := LoginPath + "?from=" + url.QueryEscape(c.Request.URL.Path)
		c.Redirect(http.StatusFound, redirect)
		c.Abort()
	}
}

// secretsEqual compares credential strings in constant time.
func secretsEqual(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
