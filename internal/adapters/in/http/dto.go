package http

import (
	"time"

	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the uniform error body for every non-2xx answer.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateAssignmentRequest is the body of POST /api/v1/assignments. The acting
// operator comes from the bearer token, not the body.
type CreateAssignmentRequest struct {
	OrderID           string          `json:"order_id"`
	RiderID           string          `json:"rider_id"`
	Priority          string          `json:"priority,omitempty"`
	DeliveryNotes     string          `json:"delivery_notes,omitempty"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee,omitempty"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
}

// UpdateAssignmentRequest is the body of PATCH /api/v1/assignments.
type UpdateAssignmentRequest struct {
	ID              string `json:"id"`
	Status          string `json:"status"`
	DeliveryNotes   string `json:"delivery_notes,omitempty"`
	FailureReason   string `json:"failure_reason,omitempty"`
	ProofOfDelivery string `json:"proof_of_delivery,omitempty"`
}

// AssignmentResponse is the full wire representation of one assignment.
type AssignmentResponse struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	RiderID           string          `json:"rider_id"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	DeliveryNotes     string          `json:"delivery_notes,omitempty"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	ProofOfDelivery   string          `json:"proof_of_delivery,omitempty"`
	FailureReason     string          `json:"failure_reason,omitempty"`
	AssignedBy        string          `json:"assigned_by"`
	AssignedAt        time.Time       `json:"assigned_at"`
	PickedUpAt        *time.Time      `json:"picked_up_at,omitempty"`
	InTransitAt       *time.Time      `json:"in_transit_at,omitempty"`
	DeliveredAt       *time.Time      `json:"delivered_at,omitempty"`
	FailedAt          *time.Time      `json:"failed_at,omitempty"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

func fromAssignment(a *assignment.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:                a.ID().String(),
		OrderID:           a.OrderID().String(),
		RiderID:           a.RiderID().String(),
		Status:            a.Status().String(),
		Priority:          a.Priority().String(),
		DeliveryNotes:     a.DeliveryNotes(),
		DeliveryFee:       a.DeliveryFee(),
		EstimatedDelivery: a.EstimatedDelivery(),
		ProofOfDelivery:   a.ProofOfDelivery(),
		FailureReason:     a.FailureReason(),
		AssignedBy:        a.AssignedBy(),
		AssignedAt:        a.AssignedAt(),
		PickedUpAt:        a.PickedUpAt(),
		InTransitAt:       a.InTransitAt(),
		DeliveredAt:       a.DeliveredAt(),
		FailedAt:          a.FailedAt(),
		UpdatedAt:         a.UpdatedAt(),
	}
}

// AssignmentSummaryResponse is one row of a listing, decorated with the
// order number and rider display fields.
type AssignmentSummaryResponse struct {
	ID                string          `json:"id"`
	OrderID           string          `json:"order_id"`
	OrderNumber       string          `json:"order_number"`
	RiderID           string          `json:"rider_id"`
	RiderName         string          `json:"rider_name"`
	RiderVehicleType  string          `json:"rider_vehicle_type"`
	Status            string          `json:"status"`
	Priority          string          `json:"priority"`
	DeliveryFee       decimal.Decimal `json:"delivery_fee"`
	EstimatedDelivery *time.Time      `json:"estimated_delivery,omitempty"`
	AssignedBy        string          `json:"assigned_by"`
	AssignedAt        time.Time       `json:"assigned_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}

// ListAssignmentsResponse is the body of GET /api/v1/assignments.
type ListAssignmentsResponse struct {
	Assignments []AssignmentSummaryResponse `json:"assignments"`
	Total       int64                       `json:"total"`
	Page        int                         `json:"page"`
	Limit       int                         `json:"limit"`
}

func fromListResponse(page queries.ListAssignmentsQueryResponse) ListAssignmentsResponse {
	assignments := make([]AssignmentSummaryResponse, len(page.Assignments))
	for i, summary := range page.Assignments {
		assignments[i] = AssignmentSummaryResponse{
			ID:                summary.ID.String(),
			OrderID:           summary.OrderID.String(),
			OrderNumber:       summary.OrderNumber,
			RiderID:           summary.RiderID.String(),
			RiderName:         summary.RiderName,
			RiderVehicleType:  summary.RiderVehicleType,
			Status:            summary.Status.String(),
			Priority:          summary.Priority.String(),
			DeliveryFee:       summary.DeliveryFee,
			EstimatedDelivery: summary.EstimatedDelivery,
			AssignedBy:        summary.AssignedBy,
			AssignedAt:        summary.AssignedAt,
			UpdatedAt:         summary.UpdatedAt,
		}
	}

	return ListAssignmentsResponse{
		Assignments: assignments,
		Total:       page.Total,
		Page:        page.Page,
		Limit:       page.Limit,
	}
}

// HistoryEntryResponse is one audit trail entry. old_status is absent for
// the creation entry.
type HistoryEntryResponse struct {
	ID        string    `json:"id"`
	OldStatus *string   `json:"old_status,omitempty"`
	NewStatus string    `json:"new_status"`
	ChangedBy string    `json:"changed_by"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// AssignmentHistoryResponse is the body of GET /api/v1/assignments/:id/history.
type AssignmentHistoryResponse struct {
	History []HistoryEntryResponse `json:"history"`
}

func fromHistory(entries []queries.GetAssignmentHistoryQueryResponse) AssignmentHistoryResponse {
	response := make([]HistoryEntryResponse, len(entries))
	for i, entry := range entries {
		var oldStatus *string
		if entry.OldStatus != nil {
			old := entry.OldStatus.String()
			oldStatus = &old
		}

		response[i] = HistoryEntryResponse{
			ID:        entry.ID.String(),
			OldStatus: oldStatus,
			NewStatus: entry.NewStatus.String(),
			ChangedBy: entry.ChangedBy,
			Notes:     entry.Notes,
			CreatedAt: entry.CreatedAt,
		}
	}

	return AssignmentHistoryResponse{History: response}
}

// DeleteAssignmentResponse is the body of DELETE /api/v1/assignments.
type DeleteAssignmentResponse struct {
	Success bool `json:"success"`
}
