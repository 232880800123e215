package api

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"workshopapi/auth"
)

// authorize guards workshop and session routes. Anonymous callers carry an
// empty role; the policy engine decides what each role may do. A token that
// is present but fails verification is always rejected.
func (h *Handler) authorize(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		role := ""

		header := c.Request().Header.Get(echo.HeaderAuthorization)
		if header != "" {
			token, ok := cutBearer(header)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "malformed authorization header"})
			}
			claims, err := auth.Verify(h.authConfig, token)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "invalid token"})
			}
			role = claims.Role
		}

		allowed, err := h.policyEngine.Allow(c.Request().Context(), role, c.Request().Method)
		if err != nil {
			return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
		}
		if !allowed {
			if role == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "authentication required"})
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
		}

		return next(c)
	}
}

// cutBearer splits a bearer credential off an Authorization header. The
// scheme comparison is case-insensitive per RFC 7235.
func cutBearer(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) < len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return header[len(prefix):], true
}
