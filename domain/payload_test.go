package domain

import (
	"testing"
	"time"
)

func findError(errs []FieldError, field string) *FieldError {
	for i := range errs {
		if errs[i].Field == field {
			return &errs[i]
		}
	}
	return nil
}

func validWorkshopPayload(now time.Time) WorkshopPayload {
	return WorkshopPayload{
		Title:           "Intro to Go",
		Description:     "A hands-on introduction",
		Date:            now.AddDate(0, 0, 7),
		MaxParticipants: 20,
	}
}

func TestWorkshopPayloadValid(t *testing.T) {
	now := time.Now().UTC()
	payload := validWorkshopPayload(now)

	if errs := payload.Validate(now); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestWorkshopPayloadTitleRequired(t *testing.T) {
	now := time.Now().UTC()
	payload := validWorkshopPayload(now)
	payload.Title = "   "

	errs := payload.Validate(now)
	fe := findError(errs, "title")
	if fe == nil || fe.Code != CodeRequiredField {
		t.Fatalf("expected RequiredField on title, got %+v", errs)
	}
}

func TestWorkshopPayloadTitleTooShort(t *testing.T) {
	now := time.Now().UTC()
	payload := validWorkshopPayload(now)
	payload.Title = " Go "

	errs := payload.Validate(now)
	fe := findError(errs, "title")
	if fe == nil || fe.Code != CodeTooShort {
		t.Fatalf("expected TooShort on title, got %+v", errs)
	}
}

func TestWorkshopPayloadDescriptionRequired(t *testing.T) {
	now := time.Now().UTC()
	payload := validWorkshopPayload(now)
	payload.Description = ""

	errs := payload.Validate(now)
	fe := findError(errs, "description")
	if fe == nil || fe.Code != CodeRequiredField {
		t.Fatalf("expected RequiredField on description, got %+v", errs)
	}
}

func TestWorkshopPayloadDateInPast(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	payload := validWorkshopPayload(now)
	payload.Date = now.AddDate(0, 0, -1)

	errs := payload.Validate(now)
	fe := findError(errs, "date")
	if fe == nil || fe.Code != CodeInvalidDate {
		t.Fatalf("expected InvalidDate on date, got %+v", errs)
	}
}

func TestWorkshopPayloadDateEarlierTodayIsValid(t *testing.T) {
	// A timestamp earlier today still counts: the comparison is date-only.
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	payload := validWorkshopPayload(now)
	payload.Date = time.Date(2026, 3, 15, 8, 0, 0, 0, time.UTC)

	if errs := payload.Validate(now); findError(errs, "date") != nil {
		t.Fatalf("expected date earlier today to pass, got %+v", errs)
	}
}

func TestWorkshopPayloadMaxParticipantsOutOfRange(t *testing.T) {
	now := time.Now().UTC()
	payload := validWorkshopPayload(now)
	payload.MaxParticipants = 0

	errs := payload.Validate(now)
	fe := findError(errs, "maxParticipants")
	if fe == nil || fe.Code != CodeOutOfRange {
		t.Fatalf("expected OutOfRange on maxParticipants, got %+v", errs)
	}
}

func TestWorkshopPayloadCollectsAllFailures(t *testing.T) {
	now := time.Now().UTC()
	payload := WorkshopPayload{
		Title:           "ab",
		Description:     " ",
		Date:            now.AddDate(0, 0, -2),
		MaxParticipants: -1,
	}

	errs := payload.Validate(now)
	if len(errs) != 4 {
		t.Fatalf("expected 4 errors, got %d: %+v", len(errs), errs)
	}
}

func TestSessionPayloadValid(t *testing.T) {
	now := time.Now().UTC()
	payload := SessionPayload{
		Title:     "Morning block",
		StartTime: now.Add(time.Hour),
		EndTime:   now.Add(2 * time.Hour),
	}

	if errs := payload.Validate(now); len(errs) != 0 {
		t.Fatalf("expected no errors, got %+v", errs)
	}
}

func TestSessionPayloadStartNotInFuture(t *testing.T) {
	now := time.Now().UTC()
	payload := SessionPayload{
		Title:     "Morning block",
		StartTime: now,
		EndTime:   now.Add(time.Hour),
	}

	errs := payload.Validate(now)
	fe := findError(errs, "startTime")
	if fe == nil || fe.Code != CodeNotInFuture {
		t.Fatalf("expected NotInFuture on startTime, got %+v", errs)
	}
}

func TestSessionPayloadEndBeforeStart(t *testing.T) {
	now := time.Now().UTC()
	start := now.Add(2 * time.Hour)
	payload := SessionPayload{
		Title:     "Morning block",
		StartTime: start,
		EndTime:   start,
	}

	errs := payload.Validate(now)
	fe := findError(errs, "endTime")
	if fe == nil || fe.Code != CodeEndBeforeStart {
		t.Fatalf("expected EndBeforeStart on endTime, got %+v", errs)
	}
}

func TestSessionPayloadCollectsAllFailures(t *testing.T) {
	now := time.Now().UTC()
	payload := SessionPayload{
		Title:     "",
		StartTime: now.Add(-time.Hour),
		EndTime:   now.Add(-2 * time.Hour),
	}

	errs := payload.Validate(now)
	if len(errs) != 3 {
		t.Fatalf("expected 3 errors, got %d: %+v", len(errs), errs)
	}
}
