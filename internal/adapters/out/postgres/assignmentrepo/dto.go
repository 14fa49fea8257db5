// Package assignmentrepo provides data transfer objects and mapping functions
// for assignment persistence. Implements the repository pattern for the
// delivery assignment aggregate, handling the conversion between domain
// entities and database representations.
package assignmentrepo

import (
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssignmentDTO represents the database structure for persisting assignment
// aggregates. The partial unique index on order_id covers only rows whose
// status still blocks new work (assigned through delivered); failed and
// returned rows fall outside it, so the database itself enforces the
// one-active-assignment-per-order rule even under concurrent inserts.
type AssignmentDTO struct {
	ID                uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID           uuid.UUID `gorm:"type:uuid;index:idx_assignments_active_order,unique,where:status < 5"`
	RiderID           uuid.UUID `gorm:"type:uuid;index"`
	Status            int       `gorm:"type:smallint"`
	Priority          int       `gorm:"type:smallint"`
	DeliveryNotes     string
	DeliveryFee       decimal.Decimal `gorm:"type:numeric(10,2)"`
	EstimatedDelivery *time.Time
	ProofOfDelivery   string
	FailureReason     string
	AssignedBy        string
	AssignedAt        time.Time
	PickedUpAt        *time.Time
	InTransitAt       *time.Time
	DeliveredAt       *time.Time
	FailedAt          *time.Time
	UpdatedAt         time.Time `gorm:"autoUpdateTime:false"`
}

// TableName specifies the database table name for assignment entities.
// Overrides GORM's default naming convention to use "assignments".
func (AssignmentDTO) TableName() string {
	return "assignments"
}

// fromDomain converts an assignment domain aggregate to its database
// representation.
func fromDomain(aggregate *assignment.Assignment) AssignmentDTO {
	return AssignmentDTO{
		ID:                aggregate.ID().Bytes(),
		OrderID:           aggregate.OrderID().Bytes(),
		RiderID:           aggregate.RiderID().Bytes(),
		Status:            int(aggregate.Status()),
		Priority:          int(aggregate.Priority()),
		DeliveryNotes:     aggregate.DeliveryNotes(),
		DeliveryFee:       aggregate.DeliveryFee(),
		EstimatedDelivery: aggregate.EstimatedDelivery(),
		ProofOfDelivery:   aggregate.ProofOfDelivery(),
		FailureReason:     aggregate.FailureReason(),
		AssignedBy:        aggregate.AssignedBy(),
		AssignedAt:        aggregate.AssignedAt(),
		PickedUpAt:        aggregate.PickedUpAt(),
		InTransitAt:       aggregate.InTransitAt(),
		DeliveredAt:       aggregate.DeliveredAt(),
		FailedAt:          aggregate.FailedAt(),
		UpdatedAt:         aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to an assignment domain aggregate using
// RestoreAssignment.
func toDomain(dto AssignmentDTO) (*assignment.Assignment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}

	riderID, err := kernel.UUIDFromBytes(dto.RiderID[:])
	if err != nil {
		return nil, err
	}

	return assignment.RestoreAssignment(
		id, orderID, riderID,
		assignment.Status(dto.Status),
		assignment.Priority(dto.Priority),
		dto.AssignedBy,
		assignment.Snapshot{
			DeliveryNotes:     dto.DeliveryNotes,
			ProofOfDelivery:   dto.ProofOfDelivery,
			FailureReason:     dto.FailureReason,
			DeliveryFee:       dto.DeliveryFee,
			EstimatedDelivery: dto.EstimatedDelivery,
			AssignedAt:        dto.AssignedAt,
			PickedUpAt:        dto.PickedUpAt,
			InTransitAt:       dto.InTransitAt,
			DeliveredAt:       dto.DeliveredAt,
			FailedAt:          dto.FailedAt,
			UpdatedAt:         dto.UpdatedAt,
		},
	)
}
