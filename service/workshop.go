package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"workshopapi/domain"
)

// ListWorkshops returns every workshop ordered by date ascending. A
// non-blank search term narrows the result to titles containing it as a
// case-insensitive substring.
func (s *Service) ListWorkshops(ctx context.Context, search string) ([]domain.WorkshopSummary, error) {
	workshops, err := s.store.ListWorkshops(ctx, strings.TrimSpace(search))
	if err != nil {
		return nil, fmt.Errorf("failed to list workshops: %w", err)
	}

	summaries := make([]domain.WorkshopSummary, len(workshops))
	for i := range workshops {
		summaries[i] = workshops[i].Summary()
	}
	return summaries, nil
}

// GetWorkshop returns a single workshop or domain.ErrNotFound.
func (s *Service) GetWorkshop(ctx context.Context, workshopID string) (*domain.WorkshopSummary, error) {
	workshop, err := s.store.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}
	if workshop == nil {
		return nil, fmt.Errorf("workshop %s: %w", workshopID, domain.ErrNotFound)
	}

	summary := workshop.Summary()
	return &summary, nil
}

// CreateWorkshop validates the payload, persists a new workshop with a
// generated identifier and returns its summary. Title and description are
// trimmed before persistence.
func (s *Service) CreateWorkshop(ctx context.Context, payload domain.WorkshopPayload) (*domain.WorkshopSummary, error) {
	if errs := payload.Validate(s.now()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	workshop := &domain.Workshop{
		ID:              uuid.NewString(),
		Title:           strings.TrimSpace(payload.Title),
		Description:     strings.TrimSpace(payload.Description),
		Date:            payload.Date,
		MaxParticipants: payload.MaxParticipants,
	}

	if err := s.store.CreateWorkshop(ctx, workshop); err != nil {
		return nil, fmt.Errorf("failed to create workshop: %w", err)
	}

	summary := workshop.Summary()
	return &summary, nil
}

// UpdateWorkshop validates the payload and overwrites all mutable fields of
// an existing workshop. The identifier and session list are untouched.
// Returns domain.ErrNotFound without writing if the workshop is missing.
func (s *Service) UpdateWorkshop(ctx context.Context, workshopID string, payload domain.WorkshopPayload) (*domain.WorkshopSummary, error) {
	if errs := payload.Validate(s.now()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	workshop, err := s.store.GetWorkshop(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to get workshop: %w", err)
	}
	if workshop == nil {
		return nil, fmt.Errorf("workshop %s: %w", workshopID, domain.ErrNotFound)
	}

	workshop.Title = strings.TrimSpace(payload.Title)
	workshop.Description = strings.TrimSpace(payload.Description)
	workshop.Date = payload.Date
	workshop.MaxParticipants = payload.MaxParticipants

	if err := s.store.UpdateWorkshop(ctx, workshop); err != nil {
		return nil, fmt.Errorf("failed to update workshop: %w", err)
	}

	summary := workshop.Summary()
	return &summary, nil
}

// DeleteWorkshop removes a workshop. Returns false, without error, if the
// workshop does not exist. Deletion cascades to the workshop's sessions at
// the store level.
func (s *Service) DeleteWorkshop(ctx context.Context, workshopID string) (bool, error) {
	deleted, err := s.store.DeleteWorkshop(ctx, workshopID)
	if err != nil {
		return false, fmt.Errorf("failed to delete workshop: %w", err)
	}
	return deleted, nil
}
