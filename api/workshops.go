package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"workshopapi/domain"
)

// ListWorkshops lists workshops, optionally filtered by a title substring.
// GET /api/workshops?search=term
func (h *Handler) ListWorkshops(c echo.Context) error {
	ctx := c.Request().Context()

	workshops, err := h.service.ListWorkshops(ctx, c.QueryParam("search"))
	if err != nil {
		return respondError(c, err)
	}

	if workshops == nil {
		workshops = []domain.WorkshopSummary{}
	}
	return c.JSON(http.StatusOK, workshops)
}

// GetWorkshop returns a single workshop.
// GET /api/workshops/:workshop_id
func (h *Handler) GetWorkshop(c echo.Context) error {
	ctx := c.Request().Context()

	workshop, err := h.service.GetWorkshop(ctx, c.Param("workshop_id"))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, workshop)
}

// CreateWorkshop creates a new workshop.
// POST /api/workshops
func (h *Handler) CreateWorkshop(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.WorkshopPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	workshop, err := h.service.CreateWorkshop(ctx, payload)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, workshop)
}

// UpdateWorkshop overwrites the mutable fields of a workshop.
// PUT /api/workshops/:workshop_id
func (h *Handler) UpdateWorkshop(c echo.Context) error {
	ctx := c.Request().Context()

	var payload domain.WorkshopPayload
	if err := c.Bind(&payload); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "invalid request body"})
	}

	workshop, err := h.service.UpdateWorkshop(ctx, c.Param("workshop_id"), payload)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, workshop)
}

// DeleteWorkshop removes a workshop and, through the store's referential
// integrity, its sessions.
// DELETE /api/workshops/:workshop_id
func (h *Handler) DeleteWorkshop(c echo.Context) error {
	ctx := c.Request().Context()

	deleted, err := h.service.DeleteWorkshop(ctx, c.Param("workshop_id"))
	if err != nil {
		return respondError(c, err)
	}
	if !deleted {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "not found"})
	}

	return c.NoContent(http.StatusNoContent)
}
