// Package historyrepo persists the assignment audit trail. The table carries
// no foreign key to assignments on purpose: entries must survive assignment
// deletion.
package historyrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// HistoryEntryDTO represents the database structure for audit trail entries.
// OldStatus is null for the entry written at assignment creation.
type HistoryEntryDTO struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	AssignmentID uuid.UUID `gorm:"type:uuid;index"`
	OldStatus    *int      `gorm:"type:smallint"`
	NewStatus    int       `gorm:"type:smallint"`
	ChangedBy    string
	Notes        string
	CreatedAt    time.Time `gorm:"autoCreateTime:false"`
}

// TableName specifies the database table name for audit trail entries.
func (HistoryEntryDTO) TableName() string {
	return "assignment_status_history"
}

// fromDomain converts a history entry to its database representation.
func fromDomain(entry *history.Entry) HistoryEntryDTO {
	var oldStatus *int
	if old := entry.OldStatus(); old != nil {
		raw := int(*old)
		oldStatus = &raw
	}

	return HistoryEntryDTO{
		ID:           entry.ID().Bytes(),
		AssignmentID: entry.AssignmentID().Bytes(),
		OldStatus:    oldStatus,
		NewStatus:    int(entry.NewStatus()),
		ChangedBy:    entry.ChangedBy(),
		Notes:        entry.Notes(),
		CreatedAt:    entry.CreatedAt(),
	}
}

// toDomain converts a database DTO to a history entry using RestoreEntry.
func toDomain(dto HistoryEntryDTO) (*history.Entry, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	assignmentID, err := kernel.UUIDFromBytes(dto.AssignmentID[:])
	if err != nil {
		return nil, err
	}

	var oldStatus *assignment.Status
	if dto.OldStatus != nil {
		old := assignment.Status(*dto.OldStatus)
		oldStatus = &old
	}

	return history.RestoreEntry(
		id,
		assignmentID,
		oldStatus,
		assignment.Status(dto.NewStatus),
		dto.ChangedBy,
		dto.Notes,
		dto.CreatedAt,
	)
}
