package marketerrors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinels, match with errors.Is.
var (
	ErrAuthentication  = errors.New("invalid authentication token")
	ErrPhaseViolation  = errors.New("operation not allowed in current phase")
	ErrValidation      = errors.New("validation failed")
	ErrNotFound        = errors.New("not found")
	ErrOwnership       = errors.New("you can only update your own products")
	ErrRankingConflict = errors.New("rankings changed concurrently")
)

// PhaseViolation reports the phase a battle was in and the phases the
// rejected operation needed.
type PhaseViolation struct {
	Current string
	Allowed []string
}

func (e *PhaseViolation) Error() string {
	allowed := strings.Join(e.Allowed, ", ")
	if allowed == "" {
		allowed = "none"
	}
	return fmt.Sprintf("Operation not allowed during phase '%s'. Allowed phases: %s", e.Current, allowed)
}

func (e *PhaseViolation) Is(target error) bool { return target == ErrPhaseViolation }

type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return e.Reason }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// Invalid builds a ValidationError with a formatted reason.
func Invalid(format string, args ...any) error {
	return &ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// NotFoundError names the kind of entity and every id that was missing.
type NotFoundError struct {
	Kind string
	IDs  []string
}

func (e *NotFoundError) Error() string {
	switch len(e.IDs) {
	case 0:
		return e.Kind + " not found"
	case 1:
		return fmt.Sprintf("%s not found: %s", e.Kind, e.IDs[0])
	default:
		return fmt.Sprintf("%ss not found: %s", e.Kind, strings.Join(e.IDs, ", "))
	}
}

func (e *NotFoundError) Is(target error) bool { return target == ErrNotFound }

// Missing builds a NotFoundError for the given kind and ids.
func Missing(kind string, ids ...string) error {
	return &NotFoundError{Kind: kind, IDs: ids}
}
