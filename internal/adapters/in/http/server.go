// Package http exposes the dispatch use cases over a JSON API built on echo.
// It translates wire requests into commands and queries, and domain errors
// into HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"dispatch/internal/core/application/usecases/commands"
	"dispatch/internal/core/application/usecases/queries"
	"dispatch/internal/core/domain/model/assignment"
	"dispatch/internal/core/domain/model/kernel"
	"dispatch/internal/core/ports"
	"dispatch/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createAssignmentHandler commands.CreateAssignmentCommandHandler
	updateStatusHandler     commands.UpdateAssignmentStatusCommandHandler
	deleteAssignmentHandler commands.DeleteAssignmentCommandHandler

	// Query handlers
	listAssignmentsHandler queries.ListAssignmentsQueryHandler
	historyHandler         queries.GetAssignmentHistoryQueryHandler
}

// NewServer creates a new HTTP server with the required command and query
// handlers.
func NewServer(
	createAssignmentHandler commands.CreateAssignmentCommandHandler,
	updateStatusHandler commands.UpdateAssignmentStatusCommandHandler,
	deleteAssignmentHandler commands.DeleteAssignmentCommandHandler,
	listAssignmentsHandler queries.ListAssignmentsQueryHandler,
	historyHandler queries.GetAssignmentHistoryQueryHandler,
) *Server {
	return &Server{
		createAssignmentHandler: createAssignmentHandler,
		updateStatusHandler:     updateStatusHandler,
		deleteAssignmentHandler: deleteAssignmentHandler,
		listAssignmentsHandler:  listAssignmentsHandler,
		historyHandler:          historyHandler,
	}
}

// RegisterRoutes mounts the API under /api/v1 behind the given auth
// middleware. The health endpoint stays open for load balancer probes.
func (s *Server) RegisterRoutes(e *echo.Echo, auth echo.MiddlewareFunc) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1", auth)
	api.GET("/assignments", s.ListAssignments)
	api.POST("/assignments", s.CreateAssignment)
	api.PATCH("/assignments", s.UpdateAssignmentStatus)
	api.DELETE("/assignments", s.DeleteAssignment)
	api.GET("/assignments/:id/history", s.GetAssignmentHistory)
}

// Health handles GET /health.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.String(http.StatusOK, "Healthy")
}

// ListAssignments handles GET /api/v1/assignments.
func (s *Server) ListAssignments(ctx echo.Context) error {
	filter, page, limit, err := parseListParams(ctx)
	if err != nil {
		return badRequest(ctx, "Invalid listing parameters: "+err.Error())
	}

	query, err := queries.NewListAssignmentsQuery(filter, page, limit)
	if err != nil {
		return badRequest(ctx, "Invalid listing parameters: "+err.Error())
	}

	result, err := s.listAssignmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromListResponse(result))
}

// CreateAssignment handles POST /api/v1/assignments.
func (s *Server) CreateAssignment(ctx echo.Context) error {
	var req CreateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(req.OrderID)
	if err != nil {
		return badRequest(ctx, "Invalid order_id: "+err.Error())
	}

	riderID, err := kernel.UUIDFromString(req.RiderID)
	if err != nil {
		return badRequest(ctx, "Invalid rider_id: "+err.Error())
	}

	priority, err := assignment.PriorityFromString(req.Priority)
	if err != nil {
		return badRequest(ctx, "Invalid priority: "+err.Error())
	}

	cmd, err := commands.NewCreateAssignmentCommand(orderID, riderID, CurrentPrincipal(ctx).Name,
		assignment.Details{
			Priority:          priority,
			DeliveryNotes:     req.DeliveryNotes,
			DeliveryFee:       req.DeliveryFee,
			EstimatedDelivery: req.EstimatedDelivery,
		})
	if err != nil {
		return badRequest(ctx, "Invalid assignment data: "+err.Error())
	}

	created, err := s.createAssignmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, fromAssignment(created))
}

// UpdateAssignmentStatus handles PATCH /api/v1/assignments.
func (s *Server) UpdateAssignmentStatus(ctx echo.Context) error {
	var req UpdateAssignmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	assignmentID, err := kernel.UUIDFromString(req.ID)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	targetStatus, err := assignment.StatusFromString(req.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	cmd, err := commands.NewUpdateAssignmentStatusCommand(assignmentID, targetStatus,
		CurrentPrincipal(ctx).Name, assignment.StatusChange{
			DeliveryNotes:   req.DeliveryNotes,
			FailureReason:   req.FailureReason,
			ProofOfDelivery: req.ProofOfDelivery,
		})
	if err != nil {
		return badRequest(ctx, "Invalid status change: "+err.Error())
	}

	updated, err := s.updateStatusHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromAssignment(updated))
}

// DeleteAssignment handles DELETE /api/v1/assignments?id=.
func (s *Server) DeleteAssignment(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.QueryParam("id"))
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	cmd, err := commands.NewDeleteAssignmentCommand(assignmentID)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	if err = s.deleteAssignmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, DeleteAssignmentResponse{Success: true})
}

// GetAssignmentHistory handles GET /api/v1/assignments/:id/history.
func (s *Server) GetAssignmentHistory(ctx echo.Context) error {
	assignmentID, err := kernel.UUIDFromString(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	query, err := queries.NewGetAssignmentHistoryQuery(assignmentID)
	if err != nil {
		return badRequest(ctx, "Invalid id: "+err.Error())
	}

	entries, err := s.historyHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, fromHistory(entries))
}

func parseListParams(ctx echo.Context) (queries.ListFilter, int, int, error) {
	var filter queries.ListFilter

	if raw := ctx.QueryParam("status"); raw != "" {
		status, err := assignment.StatusFromString(raw)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.Status = &status
	}

	if raw := ctx.QueryParam("rider_id"); raw != "" {
		riderID, err := kernel.UUIDFromString(raw)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.RiderID = &riderID
	}

	if raw := ctx.QueryParam("date_from"); raw != "" {
		from, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.DateFrom = &from
	}

	if raw := ctx.QueryParam("date_to"); raw != "" {
		to, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, 0, 0, err
		}
		filter.DateTo = &to
	}

	var page, limit int
	var err error
	if raw := ctx.QueryParam("page"); raw != "" {
		if page, err = strconv.Atoi(raw); err != nil {
			return filter, 0, 0, err
		}
	}
	if raw := ctx.QueryParam("limit"); raw != "" {
		if limit, err = strconv.Atoi(raw); err != nil {
			return filter, 0, 0, err
		}
	}

	return filter, page, limit, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps domain errors onto HTTP status codes: missing objects to
// 404, the active-assignment conflict to 409, guard and validation failures
// to 400, everything else to 500.
func writeError(ctx echo.Context, err error) error {
	code := http.StatusInternalServerError

	switch {
	case errors.Is(err, errs.ErrObjectNotFound):
		code = http.StatusNotFound
	case errors.Is(err, ports.ErrActiveAssignmentExists):
		code = http.StatusConflict
	case errors.Is(err, commands.ErrRiderUnavailable),
		errors.Is(err, commands.ErrAssignmentInProgress),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		code = http.StatusBadRequest
	}

	// Unclassified errors are infrastructure failures; their details belong in
	// the logs, not on the wire.
	message := err.Error()
	if code == http.StatusInternalServerError {
		ctx.Logger().Error(err)
		message = "Internal server error"
	}

	return ctx.JSON(code, ErrorResponse{
		Code:    code,
		Message: message,
	})
}
