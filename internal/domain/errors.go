package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound indicates that a requested assessment does not exist.
	ErrNotFound = errors.New("not found")

	// ErrNotReady indicates that an assessment has not been scored yet.
	ErrNotReady = errors.New("assessment not scored")

	// ErrInvalidInput is matched by errors.Is for any *ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// ValidationError collects every failure found while validating an entity.
type ValidationError struct {
	// Entity names what was validated, e.g. "responses".
	Entity string

	// Errors holds one message per failure.
	Errors []string
}

// Error implements the error interface for ValidationError.
func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation error for %s: %s", e.Entity, e.Errors[0])
	}
	return fmt.Sprintf("validation errors for %s: %v", e.Entity, e.Errors)
}

// Is lets errors.Is match ErrInvalidInput.
func (e *ValidationError) Is(target error) bool { return target == ErrInvalidInput }

// AddError appends a failure message.
func (e *ValidationError) AddError(msg string) { e.Errors = append(e.Errors, msg) }

// HasErrors returns true if there are any validation errors.
func (e *ValidationError) HasErrors() bool { return len(e.Errors) > 0 }

// NewValidationError creates an empty ValidationError for entity.
func NewValidationError(entity string) *ValidationError {
	return &ValidationError{Entity: entity, Errors: make([]string, 0)}
}

// ValidateResponses is the strict boundary check applied before responses
// reach the scoring core: question ids must be 1..36 and answers 1..5.
// Scoring itself never validates or clamps.
func ValidateResponses(responses []Response) error {
	verr := NewValidationError("responses")
	if len(responses) == 0 {
		verr.AddError("at least one response is required")
	}
	for i, r := range responses {
		if r.QuestionID < 1 || r.QuestionID > NumQuestions {
			verr.AddError(fmt.Sprintf("responses[%d]: questionId %d out of range 1..%d", i, r.QuestionID, NumQuestions))
		}
		if r.Answer < MinAnswer || r.Answer > MaxAnswer {
			verr.AddError(fmt.Sprintf("responses[%d]: answer %d out of range %d..%d", i, r.Answer, MinAnswer, MaxAnswer))
		}
	}
	if verr.HasErrors() {
		return verr
	}
	return nil
}
