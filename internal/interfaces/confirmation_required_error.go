package interfaces

import (
	"errors"
	"fmt"
)

var (
	ErrNothingPending       = errors.New("no deletion is pending")
	ErrConfirmationMismatch = errors.New("confirmation does not match the pending deletion")
)

// ConfirmationRequiredError is returned when a delete is confirmed for a record
// that is not the one pending in the caller's session.
type ConfirmationRequiredError struct {
	RecordID int64
	Pending  int64
}

func (e *ConfirmationRequiredError) Error() string {
	if e.Pending == 0 {
		return fmt.Sprintf("record %d is not marked for deletion", e.RecordID)
	}
	return fmt.Sprintf("record %d is not marked for deletion (pending: %d)", e.RecordID, e.Pending)
}

func (e *ConfirmationRequiredError) Unwrap() error {
	if e.Pending == 0 {
		return ErrNothingPending
	}
	return ErrConfirmationMismatch
}
