// Package service implements the workshop and session use cases on top of
// the store.
package service

import (
	"time"

	"workshopapi/store"
)

// Service orchestrates validation and persistence for workshops and
// sessions. The transport layer maps its results to status codes.
type Service struct {
	store store.Store
	now   func() time.Time
}

// New creates a new service backed by the given store.
func New(st store.Store) *Service {
	return &Service{
		store: st,
		now:   time.Now,
	}
}

// NewWithClock creates a service with an injected clock. Tests use it to
// pin validation time.
func NewWithClock(st store.Store, now func() time.Time) *Service {
	return &Service{
		store: st,
		now:   now,
	}
}
