// Package domain defines the core domain models for the workshop API.
package domain

import "time"

// Workshop is the aggregate root. It owns zero or more Sessions.
type Workshop struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	MaxParticipants int       `json:"maxParticipants"`
	Sessions        []Session `json:"sessions,omitempty"`
}

// Session is a child entity scoped to exactly one Workshop.
type Session struct {
	ID         string    `json:"id"`
	WorkshopID string    `json:"workshopId"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// WorkshopSummary is the response shape for workshops. Description is
// deliberately omitted so list and detail responses stay lightweight.
type WorkshopSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Date            time.Time `json:"date"`
	MaxParticipants int       `json:"maxParticipants"`
}

// SessionSummary is the response shape for sessions.
type SessionSummary struct {
	ID         string    `json:"id"`
	WorkshopID string    `json:"workshopId"`
	Title      string    `json:"title"`
	StartTime  time.Time `json:"startTime"`
	EndTime    time.Time `json:"endTime"`
}

// Summary projects a Workshop into its response shape.
func (w *Workshop) Summary() WorkshopSummary {
	return WorkshopSummary{
		ID:              w.ID,
		Title:           w.Title,
		Date:            w.Date,
		MaxParticipants: w.MaxParticipants,
	}
}

// Summary projects a Session into its response shape.
func (s *Session) Summary() SessionSummary {
	return SessionSummary{
		ID:         s.ID,
		WorkshopID: s.WorkshopID,
		Title:      s.Title,
		StartTime:  s.StartTime,
		EndTime:    s.EndTime,
	}
}
