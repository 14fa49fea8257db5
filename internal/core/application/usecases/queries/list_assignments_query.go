// Package queries contains read-only operations for the dispatch API.
// Query handlers bypass the domain model and read the database directly,
// implementing the read side of the CQRS architecture.
package queries

import (
	"errors"
	"time"

	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/pkg/errs"
	"dispatch/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

const (
	defaultPageLimit = 20
	maxPageLimit     = 100
)

var ErrListAssignmentsQueryIsNotConstructed = errors.New(
	"ListAssignmentsQuery must be created via NewListAssignmentsQuery constructor",
)

// ListFilter narrows an assignment listing. Zero-value fields are ignored.
type ListFilter struct {
	Status   *assignment.Status
	RiderID  *kernel.UUID
	DateFrom *time.Time
	DateTo   *time.Time
}

// ListAssignmentsQuery retrieves a page of assignments decorated with rider
// and order display fields.
//
// Example:
//
//	status := assignment.InTransit
//	query, err := NewListAssignmentsQuery(ListFilter{Status: &status}, 1, 50)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewListAssignmentsQueryHandler(db)
//	page, err := handler.Handle(ctx, query)
type ListAssignmentsQuery struct { //nolint:recvcheck //using for validation
	filter ListFilter
	page   int
	limit  int

	guard guard.ConstructorGuard
}

// NewListAssignmentsQuery creates a listing query. Page defaults to 1 and
// limit to 20 when zero; limits above 100 are rejected.
func NewListAssignmentsQuery(filter ListFilter, page, limit int) (ListAssignmentsQuery, error) {
	if page == 0 {
		page = 1
	}
	if limit == 0 {
		limit = defaultPageLimit
	}

	if page < 1 {
		return ListAssignmentsQuery{}, errs.NewValueIsInvalidError("page")
	}
	if limit < 1 || limit > maxPageLimit {
		return ListAssignmentsQuery{}, errs.NewValueIsOutOfRangeError("limit", limit, 1, maxPageLimit)
	}

	if filter.Status != nil {
		if err := filter.Status.Validate(); err != nil {
			return ListAssignmentsQuery{}, err
		}
	}
	if filter.RiderID != nil {
		if err := filter.RiderID.Validate(); err != nil {
			return ListAssignmentsQuery{}, err
		}
	}

	return ListAssignmentsQuery{
		filter: filter,
		page:   page,
		limit:  limit,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrListAssignmentsQueryIsNotConstructed if validation fails.
func (q ListAssignmentsQuery) Validate() error {
	return q.guard.Validate(ErrListAssignmentsQueryIsNotConstructed)
}

// Filter returns the listing filter.
func (q ListAssignmentsQuery) Filter() ListFilter {
	return q.filter
}

// Page returns the 1-based page number.
func (q ListAssignmentsQuery) Page() int {
	return q.page
}

// Limit returns the page size.
func (q ListAssignmentsQuery) Limit() int {
	return q.limit
}

// AssignmentSummary is one row of an assignment listing, joined with the
// order number and the rider's display fields.
type AssignmentSummary struct {
	ID                kernel.UUID
	OrderID           kernel.UUID
	OrderNumber       string
	RiderID           kernel.UUID
	RiderName         string
	RiderVehicleType  string
	Status            assignment.Status
	Priority          assignment.Priority
	DeliveryFee       decimal.Decimal
	EstimatedDelivery *time.Time
	AssignedBy        string
	AssignedAt        time.Time
	UpdatedAt         time.Time
}

// ListAssignmentsQueryResponse is a page of assignment summaries together
// with the unpaged total.
type ListAssignmentsQueryResponse struct {
	Assignments []AssignmentSummary
	Total       int64
	Page        int
	Limit       int
}
