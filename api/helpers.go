package api

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"workshopapi/domain"
)

// respondError maps service errors to status codes: validation failures
// become 400 with the aggregated field error list, missing entities become
// 404, everything else is a 500.
func respondError(c echo.Context, err error) error {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return c.JSON(http.StatusBadRequest, map[string]interface{}{
			"errors": verr.Errors,
		})
	}
	if errors.Is(err, domain.ErrNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": err.Error()})
}
