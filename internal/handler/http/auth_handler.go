package http

import (
	"crypto/subtle"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/digipants/quicksquad-api/internal/handler/http/dto"
	"github.com/digipants/quicksquad-api/internal/handler/http/middleware"
	usecasecontract "github.com/digipants/quicksquad-api/internal/usecase/contract"
)

// AuthHandler implements the shared-secret login protocol: a matching
// password sets the sentinel session cookie, logout clears it. There is no
// user identity behind the cookie.
type AuthHandler struct {
	secret        string
	secureCookies bool
	maxAge        int
	logger        usecasecontract.IAppLogger
}

func NewAuthHandler(secret string, secureCookies bool, maxAge int, logger usecasecontract.IAppLogger) *AuthHandler {
	return &AuthHandler{
		secret:        secret,
		secureCookies: secureCookies,
		maxAge:        maxAge,
		logger:        logger,
	}
}

// Login verifies the password and establishes the admin session cookie.
func (h *AuthHandler) Login(c *gin.Context) {
	if h.secret == "" {
		h.logger.Warnf("ADMIN_PASSWORD not configured - rejecting admin login")
		ErrorHandler(c, http.StatusInternalServerError, "Server not configured")
		return
	}

	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil || subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.secret)) != 1 {
		ErrorHandler(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, middleware.SessionSentinel, h.maxAge, "/", "", h.secureCookies, true)
	SuccessHandler(c, http.StatusOK, dto.OKResponse{OK: true})
}

// Logout clears the admin session cookie.
func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookieName, "", -1, "/", "", h.secureCookies, true)
	SuccessHandler(c, http.StatusOK, dto.OKResponse{OK: true})
}
