// Package history holds the immutable audit trail of assignment status
// changes. Entries are append-only: once written they are never updated or
// deleted, and they outlive the assignment they describe.
package history

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrEntryIsNotConstructed is returned when an Entry instance was not
	// created through NewEntry or RestoreEntry.
	ErrEntryIsNotConstructed = errors.New("Entry must be created via NewEntry or RestoreEntry constructor")

	// ErrChangedByIsRequired is returned when the acting operator identity
	// is missing.
	ErrChangedByIsRequired = errors.New("changed by is required")
)

// Entry is a single record in an assignment's audit trail. OldStatus is nil
// for the entry written at assignment creation.
type Entry struct {
	id           kernel.UUID
	assignmentID kernel.UUID
	oldStatus    *assignment.Status
	newStatus    assignment.Status
	changedBy    string
	notes        string
	createdAt    time.Time

	guard guard.ConstructorGuard
}

// NewEntry records a status change. Pass a nil oldStatus for the creation
// entry of a fresh assignment.
func NewEntry(
	assignmentID kernel.UUID,
	oldStatus *assignment.Status,
	newStatus assignment.Status,
	changedBy string,
	notes string,
	at time.Time,
) (*Entry, error) {
	return RestoreEntry(kernel.NewUUID(), assignmentID, oldStatus, newStatus, changedBy, notes, at)
}

// RestoreEntry reconstructs an entry from the audit store.
func RestoreEntry(
	id kernel.UUID,
	assignmentID kernel.UUID,
	oldStatus *assignment.Status,
	newStatus assignment.Status,
	changedBy string,
	notes string,
	createdAt time.Time,
) (*Entry, error) {
	e := &Entry{
		notes:     notes,
		createdAt: createdAt,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		e.setID(id),
		e.setAssignmentID(assignmentID),
		e.setOldStatus(oldStatus),
		e.setNewStatus(newStatus),
		e.setChangedBy(changedBy),
	); err != nil {
		return nil, err
	}

	return e, nil
}

// Validate ensures the Entry was built through a constructor.
func (e *Entry) Validate() error {
	if e == nil {
		return ErrEntryIsNotConstructed
	}
	return e.guard.Validate(ErrEntryIsNotConstructed)
}

// ID returns the entry's unique identifier.
func (e *Entry) ID() kernel.UUID {
	return e.id
}

// AssignmentID returns the identifier of the assignment the entry belongs to.
func (e *Entry) AssignmentID() kernel.UUID {
	return e.assignmentID
}

// OldStatus returns the status before the change, or nil for the creation
// entry.
func (e *Entry) OldStatus() *assignment.Status {
	return e.oldStatus
}

// NewStatus returns the status after the change.
func (e *Entry) NewStatus() assignment.Status {
	return e.newStatus
}

// ChangedBy returns the operator identity that made the change.
func (e *Entry) ChangedBy() string {
	return e.changedBy
}

// Notes returns the free-form notes attached to the change, if any.
func (e *Entry) Notes() string {
	return e.notes
}

// CreatedAt returns when the change was recorded.
func (e *Entry) CreatedAt() time.Time {
	return e.createdAt
}

func (e *Entry) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	e.id = id
	return nil
}

func (e *Entry) setAssignmentID(assignmentID kernel.UUID) error {
	if err := assignmentID.Validate(); err != nil {
		return err
	}
	e.assignmentID = assignmentID
	return nil
}

func (e *Entry) setOldStatus(oldStatus *assignment.Status) error {
	if oldStatus == nil {
		return nil
	}
	if err := oldStatus.Validate(); err != nil {
		return err
	}
	old := *oldStatus
	e.oldStatus = &old
	return nil
}

func (e *Entry) setNewStatus(newStatus assignment.Status) error {
	if err := newStatus.Validate(); err != nil {
		return err
	}
	e.newStatus = newStatus
	return nil
}

func (e *Entry) setChangedBy(changedBy string) error {
	if changedBy == "" {
		return ErrChangedByIsRequired
	}
	e.changedBy = changedBy
	return nil
}
