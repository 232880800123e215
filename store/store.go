// Package store defines the storage interface and implementations.
package store

import (
	"context"

	"workshopapi/domain"
)

// Store defines the interface for data persistence. Lookups that miss
// return (nil, nil); the service layer turns that into a not-found result.
type Store interface {
	// Workshop operations
	CreateWorkshop(ctx context.Context, workshop *domain.Workshop) error
	GetWorkshop(ctx context.Context, workshopID string) (*domain.Workshop, error)
	ListWorkshops(ctx context.Context, search string) ([]domain.Workshop, error)
	UpdateWorkshop(ctx context.Context, workshop *domain.Workshop) error
	DeleteWorkshop(ctx context.Context, workshopID string) (bool, error)
	WorkshopExists(ctx context.Context, workshopID string) (bool, error)

	// Session operations
	CreateSession(ctx context.Context, session *domain.Session) error
	GetSession(ctx context.Context, workshopID, sessionID string) (*domain.Session, error)
	ListSessions(ctx context.Context, workshopID string) ([]domain.Session, error)
	UpdateSession(ctx context.Context, session *domain.Session) error
	DeleteSession(ctx context.Context, workshopID, sessionID string) (bool, error)

	// Lifecycle
	Close() error
}
