// Package orderrepo provides data transfer objects and mapping functions for
// the order projection. Orders originate in the storefront; this repository
// reads them and writes back only the status column.
package orderrepo

import (
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO represents the database structure of the order projection.
type OrderDTO struct {
	ID              uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderNumber     string    `gorm:"uniqueIndex"`
	Status          int       `gorm:"type:smallint;index"`
	CustomerName    string
	CustomerPhone   string
	ShippingAddress string
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// toDomain converts a database DTO to an order projection using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		dto.OrderNumber,
		order.Status(dto.Status),
		dto.CustomerName,
		dto.CustomerPhone,
		dto.ShippingAddress,
	)
}
