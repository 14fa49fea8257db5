package historyrepo

import (
	"context"

	"dispatch/internal/core/domain/model/history"
	"dispatch/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GormHistoryRepository implements HistoryRepository using GORM.
type GormHistoryRepository struct {
	db *gorm.DB
}

// NewGormHistoryRepository creates a new GORM history repository.
func NewGormHistoryRepository(db *gorm.DB) *GormHistoryRepository {
	return &GormHistoryRepository{db: db}
}

// Add saves a new audit trail entry. Entries are never updated or deleted.
func (r *GormHistoryRepository) Add(ctx context.Context, entry *history.Entry) error {
	if err := entry.Validate(); err != nil {
		return err
	}

	dto := fromDomain(entry)
	return r.db.WithContext(ctx).Create(&dto).Error
}

// GetByAssignmentID retrieves all entries for an assignment, oldest first.
// An assignment with no entries yields an empty slice, not an error; deleted
// assignments legitimately keep their trail.
func (r *GormHistoryRepository) GetByAssignmentID(
	ctx context.Context,
	assignmentID kernel.UUID,
) ([]*history.Entry, error) {
	if err := assignmentID.Validate(); err != nil {
		return nil, err
	}

	var dtos []HistoryEntryDTO
	err := r.db.WithContext(ctx).
		Order("created_at, id").
		Find(&dtos, "assignment_id = ?", assignmentID.Bytes()).Error
	if err != nil {
		return nil, err
	}

	entries := make([]*history.Entry, 0, len(dtos))
	for _, dto := range dtos {
		entry, entryErr := toDomain(dto)
		if entryErr != nil {
			return nil, entryErr
		}
		entries = append(entries, entry)
	}

	return entries, nil
}
