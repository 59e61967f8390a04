package services

import (
	"errors"
	"fmt"

	"github.com/pressline/pressline-backend/internal/models"
	"github.com/pressline/pressline-backend/internal/repositories"
)

// Service-level error taxonomy. Handlers match these with errors.Is/As and
// map them to HTTP status codes; nothing below ever carries internal detail.
var (
	// ErrNotFound means a referenced story/comment/user/edge does not exist.
	ErrNotFound = errors.New("not found")
	// ErrForbidden means the caller lacks the role or ownership required.
	ErrForbidden = errors.New("forbidden")
	// ErrConflict means a duplicate edge creation or self-targeting action.
	ErrConflict = errors.New("conflict")
	// ErrUnauthorized means the caller's credential could not be resolved.
	ErrUnauthorized = errors.New("unauthorized")
)

// InvalidStateTransitionError reports a lifecycle move that is not legal
// from the story's current status.
type InvalidStateTransitionError struct {
	Current   models.StoryStatus
	Requested models.StoryStatus
}

func (e *InvalidStateTransitionError) Error() string {
	return fmt.Sprintf("invalid state transition: %s -> %s", e.Current, e.Requested)
}

// ValidationError reports malformed input detected before any mutation.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + e.Reason
}

// translateStoreErr lifts storage sentinels into the service taxonomy.
func translateStoreErr(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repositories.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, repositories.ErrDuplicate):
		return ErrConflict
	default:
		return err
	}
}
