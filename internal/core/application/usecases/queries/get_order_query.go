package queries

import (
	"errors"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/core/domain/model/order"
	"barista/internal/core/domain/services"
	"barista/internal/pkg/guard"
)

// ErrGetOrderQueryIsNotConstructed is returned when a GetOrderQuery was not
// created via its constructor.
var ErrGetOrderQueryIsNotConstructed = errors.New(
	"GetOrderQuery must be created via NewGetOrderQuery constructor",
)

// GetOrderQuery retrieves the current draft of a session's in-progress
// order. The conversational layer polls this between turns to decide what
// to ask for next.
//
// Example:
//
//	query, err := NewGetOrderQuery(sessionID)
//	if err != nil {
//	    return err
//	}
//	response, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return err
//	}
//	if response.IsComplete {
//	    // every required field captured, ready to commit
//	}
type GetOrderQuery struct { //nolint:recvcheck //using for validation
	sessionID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query for a session's draft state.
func NewGetOrderQuery(sessionID kernel.UUID) (GetOrderQuery, error) {
	if err := sessionID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		sessionID: sessionID,
		guard:     guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// SessionID returns the session whose draft is read.
func (q GetOrderQuery) SessionID() kernel.UUID {
	return q.sessionID
}

// GetOrderQueryResponse is the read model for a session's in-progress order.
// Snapshot holds raw captured values exactly as last supplied, so the
// conversational layer can echo them back verbatim.
type GetOrderQueryResponse struct {
	Snapshot   order.Snapshot
	IsComplete bool
	State      services.State
}
