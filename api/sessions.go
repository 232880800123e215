package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workshopapi/domain"
)

// ListSessions lists the sessions of a workshop ordered by start time.
// GET /api/workshops/:workshop_id/sessions
func (h *Handler) ListSessions(c echo.Context) error {
	ctx := c.Request().Context()

	sessions, err := h.service.ListSessions(ctx, c.Param("workshop_id"))
	if err != nil {
		return respondError(c, err)
	}

	if sessions == nil {
		sessions = []domain.SessionSummary{}
	}
	return c.JSON(http.StatusOK, sessions)
}

// GetSession returns a single session matched by workshop and session ID.
// GET /api/workshops/:workshop_id/sessions/:session_id
func (h *Handler) GetSession(c echo.Context) error {
	ctx := c.Request().Context()

	session, err := h.service.GetSession(ctx, c.Param("workshop_id"), c.Param("session_id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// CreateSession creates a new session under a workshop.
// POST /api/workshops/:workshop_id/sessions
func (h *Handler) CreateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.SessionPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session, err := h.service.CreateSession(ctx, c.Param("workshop_id"), payload)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, session)
}

// UpdateSession overwrites the mutable fields of a session.
// PUT /api/workshops/:workshop_id/sessions/:session_id
func (h *Handler) UpdateSession(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.SessionPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	session, err := h.service.UpdateSession(ctx, c.Param("workshop_id"), c.Param("session_id"), payload)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, session)
}

// DeleteSession removes a session.
// DELETE /api/workshops/:workshop_id/sessions/:session_id
func (h *Handler) DeleteSession(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.service.DeleteSession(ctx, c.Param("workshop_id"), c.Param("session_id"))
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.NoContent(http.StatusNoContent)
}
