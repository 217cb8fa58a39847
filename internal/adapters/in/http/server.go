// Package http exposes the order intake use cases over a REST API.
// The conversational layer is the primary client: it opens a session per
// conversation, patches the draft after every turn and commits at the end.
package http

import (
	"errors"
	"net/http"
	"time"

	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/application/usecases/queries"
	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/services"
	"barista/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	startSessionHandler commands.StartSessionCommandHandler
	updateOrderHandler  commands.UpdateOrderCommandHandler
	commitOrderHandler  commands.CommitOrderCommandHandler
	endSessionHandler   commands.EndSessionCommandHandler

	// Query handlers
	getOrderHandler            queries.GetOrderQueryHandler
	listCommittedOrdersHandler queries.ListCommittedOrdersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	startSessionHandler commands.StartSessionCommandHandler,
	updateOrderHandler commands.UpdateOrderCommandHandler,
	commitOrderHandler commands.CommitOrderCommandHandler,
	endSessionHandler commands.EndSessionCommandHandler,
	getOrderHandler queries.GetOrderQueryHandler,
	listCommittedOrdersHandler queries.ListCommittedOrdersQueryHandler,
) *Server {
	return &Server{
		startSessionHandler:        startSessionHandler,
		updateOrderHandler:         updateOrderHandler,
		commitOrderHandler:         commitOrderHandler,
		endSessionHandler:          endSessionHandler,
		getOrderHandler:            getOrderHandler,
		listCommittedOrdersHandler: listCommittedOrdersHandler,
	}
}

// RegisterRoutes wires all endpoints onto the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", s.Health)

	api := e.Group("/api/v1")
	api.POST("/sessions", s.StartSession)
	api.GET("/sessions/:sessionId/order", s.GetOrder)
	api.PATCH("/sessions/:sessionId/order", s.UpdateOrder)
	api.POST("/sessions/:sessionId/order/commit", s.CommitOrder)
	api.DELETE("/sessions/:sessionId", s.EndSession)
	api.GET("/orders", s.ListOrders)
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// StartSession handles POST /api/v1/sessions - opens a conversation session.
func (s *Server) StartSession(ctx echo.Context) error {
	cmd := commands.NewStartSessionCommand()

	sessionID, err := s.startSessionHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, Session{SessionID: sessionID.String()})
}

// GetOrder handles GET /api/v1/sessions/:sessionId/order - reads the draft.
func (s *Server) GetOrder(ctx echo.Context) error {
	sessionID, err := s.sessionIDParam(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "Invalid session id")
	}

	query, err := queries.NewGetOrderQuery(sessionID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, draftFromResponse(response))
}

// UpdateOrder handles PATCH /api/v1/sessions/:sessionId/order - merges one
// turn's attributes into the draft and returns the merged state.
func (s *Server) UpdateOrder(ctx echo.Context) error {
	sessionID, err := s.sessionIDParam(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "Invalid session id")
	}

	var update OrderUpdate
	if err = ctx.Bind(&update); err != nil {
		return s.writeBadRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateOrderCommand(sessionID, order.Update{
		ItemType:      update.ItemType,
		Size:          update.Size,
		Modifier:      update.Modifier,
		Extras:        update.Extras,
		SubmitterName: update.SubmitterName,
	})
	if err != nil {
		if errors.Is(err, commands.ErrUpdateIsEmpty) {
			return s.writeBadRequest(ctx, "Update must carry at least one attribute")
		}
		return s.writeDomainError(ctx, err)
	}

	if _, err = s.updateOrderHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	// Re-read through the query side so the client sees completeness and
	// state along with the merged draft.
	query, err := queries.NewGetOrderQuery(sessionID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	response, err := s.getOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, draftFromResponse(response))
}

// CommitOrder handles POST /api/v1/sessions/:sessionId/order/commit -
// validates the draft and durably records it.
func (s *Server) CommitOrder(ctx echo.Context) error {
	sessionID, err := s.sessionIDParam(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "Invalid session id")
	}

	cmd, err := commands.NewCommitOrderCommand(sessionID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	committed, err := s.commitOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CommittedOrder{
		OrderID:       committed.ID().String(),
		ItemType:      committed.ItemType(),
		Size:          committed.Size().String(),
		Modifier:      committed.Modifier(),
		Extras:        emptyIfNil(committed.Extras()),
		SubmitterName: committed.SubmitterName(),
		Timestamp:     committed.CreatedAt().Format(time.RFC3339),
	})
}

// EndSession handles DELETE /api/v1/sessions/:sessionId - abandons the
// conversation and discards any uncommitted draft.
func (s *Server) EndSession(ctx echo.Context) error {
	sessionID, err := s.sessionIDParam(ctx)
	if err != nil {
		return s.writeBadRequest(ctx, "Invalid session id")
	}

	cmd, err := commands.NewEndSessionCommand(sessionID)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	if err = s.endSessionHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.writeDomainError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// ListOrders handles GET /api/v1/orders - lists every committed order.
func (s *Server) ListOrders(ctx echo.Context) error {
	query := queries.NewListCommittedOrdersQuery()

	orders, err := s.listCommittedOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.writeDomainError(ctx, err)
	}

	response := make([]CommittedOrder, len(orders))
	for i, o := range orders {
		response[i] = CommittedOrder{
			OrderID:       o.ID.String(),
			ItemType:      o.ItemType,
			Size:          o.Size,
			Modifier:      o.Modifier,
			Extras:        emptyIfNil(o.Extras),
			SubmitterName: o.SubmitterName,
			Timestamp:     o.CreatedAt.Format(time.RFC3339),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) sessionIDParam(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("sessionId"))
}

func (s *Server) writeBadRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeDomainError maps domain errors onto HTTP statuses. Validation
// failures carry the offending field so the client can steer the
// conversation toward it.
func (s *Server) writeDomainError(ctx echo.Context, err error) error {
	var required *errs.ValueIsRequiredError
	var invalid *errs.ValueIsInvalidError

	switch {
	case errors.As(err, &required):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			Field:   required.ParamName,
		})
	case errors.As(err, &invalid):
		return ctx.JSON(http.StatusUnprocessableEntity, Error{
			Code:    http.StatusUnprocessableEntity,
			Message: err.Error(),
			Field:   invalid.ParamName,
		})
	case errors.Is(err, errs.ErrObjectNotFound):
		return ctx.JSON(http.StatusNotFound, Error{
			Code:    http.StatusNotFound,
			Message: "Session not found",
		})
	case errors.Is(err, services.ErrLedgerAlreadyCommitted):
		return ctx.JSON(http.StatusConflict, Error{
			Code:    http.StatusConflict,
			Message: "Order is already committed",
		})
	case errors.Is(err, services.ErrPersistenceFailed):
		return ctx.JSON(http.StatusServiceUnavailable, Error{
			Code:    http.StatusServiceUnavailable,
			Message: "Failed to record order, please retry",
		})
	default:
		return ctx.JSON(http.StatusInternalServerError, Error{
			Code:    http.StatusInternalServerError,
			Message: "Internal server error",
		})
	}
}

func draftFromResponse(response queries.GetOrderQueryResponse) OrderDraft {
	return OrderDraft{
		ItemType:      response.Snapshot.ItemType,
		Size:          response.Snapshot.Size,
		Modifier:      response.Snapshot.Modifier,
		Extras:        emptyIfNil(response.Snapshot.Extras),
		SubmitterName: response.Snapshot.SubmitterName,
		IsComplete:    response.IsComplete,
		State:         response.State.String(),
	}
}

func emptyIfNil(extras []string) []string {
	if extras == nil {
		return []string{}
	}
	return extras
}
