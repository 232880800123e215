package domain

import (
	"strings"
	"time"
	"unicode/utf8"
)

const minTitleLength = 3

// WorkshopPayload carries the mutable fields of a workshop for create and
// update operations. Both share the same validation rules.
type WorkshopPayload struct {
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	Date            time.Time `json:"date"`
	MaxParticipants int       `json:"maxParticipants"`
}

// SessionPayload carries the mutable fields of a session.
type SessionPayload struct {
	Title     string    `json:"title"`
	StartTime time.Time `json:"startTime"`
	EndTime   time.Time `json:"endTime"`
}

// Validate checks every rule and returns the full list of failures.
// The workshop date is compared at date-only granularity in UTC, so a
// timestamp earlier today still passes.
func (p *WorkshopPayload) Validate(now time.Time) []FieldError {
	var errs []FieldError
	errs = appendTitleErrors(errs, p.Title)

	if strings.TrimSpace(p.Description) == "" {
		errs = append(errs, FieldError{
			Field:   "description",
			Code:    CodeRequiredField,
			Message: "description is required",
		})
	}

	if truncateToDate(p.Date).Before(truncateToDate(now)) {
		errs = append(errs, FieldError{
			Field:   "date",
			Code:    CodeInvalidDate,
			Message: "date must be today or in the future",
		})
	}

	if p.MaxParticipants < 1 {
		errs = append(errs, FieldError{
			Field:   "maxParticipants",
			Code:    CodeOutOfRange,
			Message: "max participants must be at least 1",
		})
	}

	return errs
}

// Validate checks every rule and returns the full list of failures.
// Start time is compared against the current instant, not the current day.
func (p *SessionPayload) Validate(now time.Time) []FieldError {
	var errs []FieldError
	errs = appendTitleErrors(errs, p.Title)

	if !p.StartTime.After(now) {
		errs = append(errs, FieldError{
			Field:   "startTime",
			Code:    CodeNotInFuture,
			Message: "start time must be in the future",
		})
	}

	if !p.EndTime.After(p.StartTime) {
		errs = append(errs, FieldError{
			Field:   "endTime",
			Code:    CodeEndBeforeStart,
			Message: "end time must be after the start time",
		})
	}

	return errs
}

func appendTitleErrors(errs []FieldError, title string) []FieldError {
	trimmed := strings.TrimSpace(title)
	switch {
	case trimmed == "":
		errs = append(errs, FieldError{
			Field:   "title",
			Code:    CodeRequiredField,
			Message: "title is required",
		})
	case utf8.RuneCountInString(trimmed) < minTitleLength:
		errs = append(errs, FieldError{
			Field:   "title",
			Code:    CodeTooShort,
			Message: "title must be at least 3 characters",
		})
	}
	return errs
}

func truncateToDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
