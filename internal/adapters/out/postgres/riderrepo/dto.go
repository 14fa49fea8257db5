// Package riderrepo provides the read-only repository for rider projections.
// Riders are owned by a separate system; dispatch only looks them up.
package riderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/rider"

	"github.com/google/uuid"
)

// RiderDTO represents the database structure of the rider projection.
type RiderDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	FullName    string
	Phone       string
	VehicleType string
	Status      int `gorm:"type:smallint"`
}

// TableName specifies the database table name for rider entities.
// Overrides GORM's default naming convention to use "riders".
func (RiderDTO) TableName() string {
	return "riders"
}

// toDomain converts a database DTO to a rider projection using RestoreRider.
func toDomain(dto RiderDTO) (*rider.Rider, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return rider.RestoreRider(
		id,
		dto.FullName,
		dto.Phone,
		dto.VehicleType,
		rider.Status(dto.Status),
	)
}
