package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/digipants/quicksquad-api/internal/handler/http/middleware"
)

const testSecret = "correct-horse-battery-staple"

func setupAdminGate(secret string) *gin.Engine {
	r := gin.New()
	gate := middleware.NewAdminGate(secret)

	api := r.Group("/api/admin")
	api.Use(gate.Handler())
	api.GET("/blogs", func(c *gin.Context) { c.String(http.StatusOK, "blogs") })

	ui := r.Group("/admin")
	ui.Use(gate.Handler())
	ui.GET("", func(c *gin.Context) { c.String(http.StatusOK, "dashboard") })
	return r
}

func TestAdminGate_NoCredentials(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Unauthorized")
}

func TestAdminGate_BearerToken(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.Header.Set("Authorization", "Bearer "+testSecret)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "blogs", w.Body.String())
}

func TestAdminGate_WrongBearerToken(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.Header.Set("Authorization", "Bearer not-the-secret")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_SentinelCookie(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: middleware.SessionSentinel})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate_SecretCookie(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.AddCookie(&http.Cookie{Name: "qs_admin_session", Value: testSecret})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAdminGate_UnrecognizedCookieName(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.AddCookie(&http.Cookie{Name: "some_other_cookie", Value: testSecret})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_EmptySecretFailsClosed(t *testing.T) {
	r := setupAdminGate("")

	// even a correct-looking session cookie must be rejected
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.AddCookie(&http.Cookie{Name: middleware.SessionCookieName, Value: middleware.SessionSentinel})
	req.Header.Set("Authorization", "Bearer ")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_EmptySecretRejectsEmptyBearer(t *testing.T) {
	r := setupAdminGate("")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/admin/blogs", nil)
	req.Header.Set("Authorization", "Bearer")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAdminGate_UIRedirectsToLogin(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, "/admin/login?from=%2Fadmin", w.Header().Get("Location"))
}

func TestAdminGate_UIPassesWithSession(t *testing.T) {
	r := setupAdminGate(testSecret)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/admin", nil)
	req.AddCookie(&http.Cookie{Name: "qs_admin_token", Value: testSecret})
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "dashboard", w.Body.String())
}
