package usecase

import (
	"errors"
	"fmt"
	"strings"

	"grantcompass/internal/domain/entities"
)

var (
	ErrGrantNotFound         = errors.New("grant not found")
	ErrInvalidGrantID        = errors.New("invalid grant id")
	ErrNotificationNotFound  = errors.New("notification not found")
	ErrInvalidNotificationID = errors.New("invalid notification id")
	ErrEmptyReviewComments   = errors.New("review comments are required")
	ErrInvalidDecision       = errors.New("invalid review decision")
	ErrInvalidRecipient      = errors.New("invalid notification recipient")
	ErrEmptyMessage          = errors.New("notification message is required")
	ErrInvalidNotifType      = errors.New("invalid notification type")
	ErrOpportunityInvalid    = errors.New("invalid opportunity")
)

// FieldViolation names one failing field in a validation error.
type FieldViolation struct {
	Field  string `json:"field"`
	Reason string `json:"reason"`
}

// ValidationError carries every failing field, not just the first, so the
// caller can surface all of them at once.
type ValidationError struct {
	Fields []FieldViolation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Reason)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// InvalidTransitionError reports an operation attempted from a state the
// transition table does not allow it in. The grant is left unchanged.
type InvalidTransitionError struct {
	From      entities.GrantStatus
	Operation entities.Operation
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot %s a grant in status %q", e.Operation, e.From)
}

// UnauthorizedError reports an actor lacking the role (or ownership) the
// operation requires. Not recoverable by retry.
type UnauthorizedError struct {
	ActorID   string
	Operation entities.Operation
}

func (e *UnauthorizedError) Error() string {
	return fmt.Sprintf("actor %s is not allowed to %s", e.ActorID, e.Operation)
}

// BudgetMismatchError reports budget line items that do not sum to the
// declared amount. The caller either corrects the amount or submits again
// with an explicit override.
type BudgetMismatchError struct {
	Sum    float64
	Amount float64
}

func (e *BudgetMismatchError) Error() string {
	return fmt.Sprintf("budget line items sum to %.2f but declared amount is %.2f", e.Sum, e.Amount)
}

// ConcurrentModificationError reports a lost compare-and-swap: another writer
// changed the grant between read and write. The caller refetches and retries;
// the engine never retries on its own.
type ConcurrentModificationError struct {
	GrantID string
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("grant %s was modified concurrently", e.GrantID)
}
