package domain

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound is returned when a workshop or session does not exist.
// Callers branch on it with errors.Is rather than inspecting nil results.
var ErrNotFound = errors.New("not found")

// ValidationCode identifies which rule a payload field violated.
type ValidationCode string

const (
	CodeRequiredField  ValidationCode = "RequiredField"
	CodeTooShort       ValidationCode = "TooShort"
	CodeInvalidDate    ValidationCode = "InvalidDate"
	CodeOutOfRange     ValidationCode = "OutOfRange"
	CodeNotInFuture    ValidationCode = "NotInFuture"
	CodeEndBeforeStart ValidationCode = "EndBeforeStart"
)

// FieldError describes a single validation failure on a payload field.
type FieldError struct {
	Field   string         `json:"field"`
	Code    ValidationCode `json:"code"`
	Message string         `json:"message"`
}

// ValidationError aggregates every failure found in one validation pass.
// Validation never short-circuits, so a caller sees all problems at once.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Errors))
	for i, fe := range e.Errors {
		msgs[i] = fmt.Sprintf("%s: %s", fe.Field, fe.Message)
	}
	return "validation failed: " + strings.Join(msgs, "; ")
}
