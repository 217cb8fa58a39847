package queries

import (
	"errors"
	"time"

	"barista/internal/core/domain/model/kernel"
	"barista/internal/pkg/guard"
)

// ErrListCommittedOrdersQueryIsNotConstructed is returned when a
// ListCommittedOrdersQuery was not created via its constructor.
var ErrListCommittedOrdersQueryIsNotConstructed = errors.New(
	"ListCommittedOrdersQuery must be created via NewListCommittedOrdersQuery constructor",
)

// ListCommittedOrdersQuery retrieves every committed order from the store.
// Returns records in chronological order for review and fulfillment.
//
// Example:
//
//	query := NewListCommittedOrdersQuery()
//	handler := NewListCommittedOrdersQueryHandler(store)
//
//	orders, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to list orders: %w", err)
//	}
//	for _, o := range orders {
//	    fmt.Printf("%s: %s %s for %s\n", o.ID, o.Size, o.ItemType, o.SubmitterName)
//	}
type ListCommittedOrdersQuery struct {
	guard guard.ConstructorGuard
}

// NewListCommittedOrdersQuery creates a query to retrieve all committed
// orders. This is a parameterless query that fetches the complete history.
func NewListCommittedOrdersQuery() ListCommittedOrdersQuery {
	return ListCommittedOrdersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q ListCommittedOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListCommittedOrdersQueryIsNotConstructed)
}

// ListCommittedOrdersQueryResponse represents one committed order in the
// read model.
type ListCommittedOrdersQueryResponse struct {
	ID            kernel.OrderID
	ItemType      string
	Size          string
	Modifier      string
	Extras        []string
	SubmitterName string
	CreatedAt     time.Time
}
