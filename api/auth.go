package api

import (
	"crypto/subtle"
	"net/http"

	"github.com/labstack/echo/v4"

	"workshopapi/auth"
)

// TokenRequest is the request to obtain a bearer token.
type TokenRequest struct {
	Password string `json:"password"`
}

// TokenResponse carries a freshly issued bearer token.
type TokenResponse struct {
	Token string `json:"token"`
}

// CreateToken issues a short-lived admin token after validating the
// configured demo password.
// POST /api/auth/token
func (h *Handler) CreateToken(c echo.Context) error {
	// Refuse to issue tokens at all when no password is configured.
	if h.demoPassword == "" {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": "demo password is not configured"})
	}

	var req TokenRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	if subtle.ConstantTimeCompare([]byte(req.Password), []byte(h.demoPassword)) != 1 {
		return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid credentials"})
	}

	token, err := auth.Issue(h.authConfig)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
	}

	return c.JSON(http.StatusOK, TokenResponse{Token: token})
}
