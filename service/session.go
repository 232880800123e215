package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"workshopapi/domain"
)

// ListSessions returns every session of a workshop ordered by start time
// ascending. Returns domain.ErrNotFound if the workshop does not exist.
func (s *Service) ListSessions(ctx context.Context, workshopID string) ([]domain.SessionSummary, error) {
	exists, err := s.store.WorkshopExists(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workshop: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workshop %s: %w", workshopID, domain.ErrNotFound)
	}

	sessions, err := s.store.ListSessions(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sessions: %w", err)
	}

	summaries := make([]domain.SessionSummary, len(sessions))
	for i := range sessions {
		summaries[i] = sessions[i].Summary()
	}
	return summaries, nil
}

// GetSession returns a single session matched by its compound key, or
// domain.ErrNotFound. Workshop existence is not separately checked; a match
// on both keys is sufficient.
func (s *Service) GetSession(ctx context.Context, workshopID, sessionID string) (*domain.SessionSummary, error) {
	session, err := s.store.GetSession(ctx, workshopID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	summary := session.Summary()
	return &summary, nil
}

// CreateSession validates the payload and persists a new session scoped to
// the workshop. Returns domain.ErrNotFound, persisting nothing, if the
// workshop does not exist.
func (s *Service) CreateSession(ctx context.Context, workshopID string, payload domain.SessionPayload) (*domain.SessionSummary, error) {
	if errs := payload.Validate(s.now()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	exists, err := s.store.WorkshopExists(ctx, workshopID)
	if err != nil {
		return nil, fmt.Errorf("failed to check workshop: %w", err)
	}
	if !exists {
		return nil, fmt.Errorf("workshop %s: %w", workshopID, domain.ErrNotFound)
	}

	session := &domain.Session{
		ID:         uuid.NewString(),
		WorkshopID: workshopID,
		Title:      strings.TrimSpace(payload.Title),
		StartTime:  payload.StartTime,
		EndTime:    payload.EndTime,
	}

	if err := s.store.CreateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	summary := session.Summary()
	return &summary, nil
}

// UpdateSession validates the payload and overwrites title, start and end
// time of an existing session. Returns domain.ErrNotFound if no session
// matches the compound key.
func (s *Service) UpdateSession(ctx context.Context, workshopID, sessionID string, payload domain.SessionPayload) (*domain.SessionSummary, error) {
	if errs := payload.Validate(s.now()); len(errs) > 0 {
		return nil, &domain.ValidationError{Errors: errs}
	}

	session, err := s.store.GetSession(ctx, workshopID, sessionID)
	if err != nil {
		return nil, fmt.Errorf("failed to get session: %w", err)
	}
	if session == nil {
		return nil, fmt.Errorf("session %s: %w", sessionID, domain.ErrNotFound)
	}

	session.Title = strings.TrimSpace(payload.Title)
	session.StartTime = payload.StartTime
	session.EndTime = payload.EndTime

	if err := s.store.UpdateSession(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to update session: %w", err)
	}

	summary := session.Summary()
	return &summary, nil
}

// DeleteSession removes a session matched by its compound key. Returns
// false, without error, if no session matches.
func (s *Service) DeleteSession(ctx context.Context, workshopID, sessionID string) (bool, error) {
	deleted, err := s.store.DeleteSession(ctx, workshopID, sessionID)
	if err != nil {
		return false, fmt.Errorf("failed to delete session: %w", err)
	}
	return deleted, nil
}
