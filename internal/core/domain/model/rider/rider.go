// Package rider holds the dispatch core's projection of a courier. Riders are
// managed elsewhere; this core only reads them to check availability at
// assignment time and to decorate assignment listings with rider details.
package rider

import (
	"errors"

	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/guard"
)

var (
	// ErrRiderIsNotConstructed is returned when a Rider instance was not
	// created through the RestoreRider factory method.
	ErrRiderIsNotConstructed = errors.New("Rider must be created via RestoreRider constructor")

	// ErrFullNameIsRequired is returned when the rider's full name is missing.
	ErrFullNameIsRequired = errors.New("full name is required")
)

// Rider is a read-only projection of a courier: identity, display details and
// duty status. The dispatch core never mutates riders.
type Rider struct {
	id          kernel.UUID
	fullName    string
	phone       string
	vehicleType string
	status      Status

	guard guard.ConstructorGuard
}

// RestoreRider reconstructs a rider projection from the rider store.
func RestoreRider(
	id kernel.UUID,
	fullName string,
	phone string,
	vehicleType string,
	status Status,
) (*Rider, error) {
	r := &Rider{
		phone:       phone,
		vehicleType: vehicleType,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		r.setID(id),
		r.setFullName(fullName),
		r.setStatus(status),
	); err != nil {
		return nil, err
	}

	return r, nil
}

// Validate ensures the Rider was built through RestoreRider.
func (r *Rider) Validate() error {
	if r == nil {
		return ErrRiderIsNotConstructed
	}
	return r.guard.Validate(ErrRiderIsNotConstructed)
}

// ID returns the rider's unique identifier.
func (r *Rider) ID() kernel.UUID {
	return r.id
}

// FullName returns the rider's display name.
func (r *Rider) FullName() string {
	return r.fullName
}

// Phone returns the rider's contact phone number.
func (r *Rider) Phone() string {
	return r.phone
}

// VehicleType returns the rider's vehicle type, e.g. "bicycle" or "scooter".
func (r *Rider) VehicleType() string {
	return r.vehicleType
}

// Status returns the rider's duty status.
func (r *Rider) Status() Status {
	return r.status
}

// IsAvailable reports whether the rider may take new assignments. Only active
// riders are available; off-duty and inactive riders are not.
func (r *Rider) IsAvailable() bool {
	return r.status == Active
}

func (r *Rider) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rider) setFullName(fullName string) error {
	if fullName == "" {
		return ErrFullNameIsRequired
	}
	r.fullName = fullName
	return nil
}

func (r *Rider) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	r.status = status
	return nil
}
