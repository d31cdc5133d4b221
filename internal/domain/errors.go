package domain

import (
	"errors"
	"fmt"
)

var ErrRecordNotFound = errors.New("record not found")
var ErrConflict = errors.New("stale transfer version, retry the operation")

// ValidationError carries the individual input problems found at creation.
type ValidationError struct {
	Problems []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %v", e.Problems)
}

// AuthorizationError is returned when the acting user lacks a required role.
type AuthorizationError struct {
	Actor        string
	RequiredRole string
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("user %q is not authorized, requires role %s", e.Actor, e.RequiredRole)
}

// InvalidStateError is returned when an action is not legal for the transfer's
// current status or stage position. Illegal transitions never silently succeed.
type InvalidStateError struct {
	TransferID string
	Action     string
	Status     TransferStatus
	Reason     string
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("cannot %s transfer %s in status %q: %s", e.Action, e.TransferID, e.Status, e.Reason)
}
