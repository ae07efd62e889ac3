// Package guard decides who may change a record and tracks the two-step delete.
package guard

import (
	"simsea/internal/interfaces"
	"simsea/internal/models"
)

// CanMutate reports whether actor may update or delete a record created by createdBy.
func CanMutate(createdBy string, actor models.Actor) bool {
	if actor.IsAdmin() {
		return true
	}
	return actor.Username != "" && actor.Username == createdBy
}

// CanMutateRecord is CanMutate for a loaded record.
func CanMutateRecord(rec *models.ProjectRecord, actor models.Actor) bool {
	return CanMutate(rec.CreatedBy, actor)
}

// DeleteFlow is the per-session delete confirmation state. The zero value is idle.
// Requesting a deletion never touches the record; only a matching Confirm does.
type DeleteFlow struct {
	Pending int64
}

func (f DeleteFlow) Idle() bool {
	return f.Pending == 0
}

// Request marks id for deletion, replacing any earlier pending id.
func (f DeleteFlow) Request(id int64) DeleteFlow {
	return DeleteFlow{Pending: id}
}

// Confirm returns the idle flow when id is the pending record. Otherwise the
// flow is returned unchanged along with the reason.
func (f DeleteFlow) Confirm(id int64) (DeleteFlow, error) {
	if f.Idle() {
		return f, &interfaces.ConfirmationRequiredError{RecordID: id}
	}
	if f.Pending != id {
		return f, &interfaces.ConfirmationRequiredError{RecordID: id, Pending: f.Pending}
	}
	return DeleteFlow{}, nil
}

func (f DeleteFlow) Cancel() DeleteFlow {
	return DeleteFlow{}
}
