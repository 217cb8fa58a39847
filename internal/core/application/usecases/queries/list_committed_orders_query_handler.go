package queries

import (
	"context"

	"barista/internal/core/domain/model/order"
	"barista/internal/core/ports"
)

// ListCommittedOrdersQueryHandler reads committed records back from the
// order store. Bypasses the session layer entirely: committed orders are
// owned by the store, not by any live session.
type ListCommittedOrdersQueryHandler struct {
	store ports.OrderStore
}

// NewListCommittedOrdersQueryHandler creates a handler backed by the given
// order store.
func NewListCommittedOrdersQueryHandler(store ports.OrderStore) ListCommittedOrdersQueryHandler {
	return ListCommittedOrdersQueryHandler{store: store}
}

// Handle lists the store and parses each record into the read model.
// Records come back sorted by id, which sorts them chronologically with
// same-second commits ordered by suffix.
func (h ListCommittedOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListCommittedOrdersQuery,
) ([]ListCommittedOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	ids, err := h.store.List(ctx)
	if err != nil {
		return nil, err
	}

	orders := make([]ListCommittedOrdersQueryResponse, 0, len(ids))
	for _, id := range ids {
		data, err := h.store.Read(ctx, id)
		if err != nil {
			return nil, err
		}

		record, err := order.ParseOrder(id, data)
		if err != nil {
			return nil, err
		}

		orders = append(orders, ListCommittedOrdersQueryResponse{
			ID:            record.ID(),
			ItemType:      record.ItemType(),
			Size:          record.Size().String(),
			Modifier:      record.Modifier(),
			Extras:        record.Extras(),
			SubmitterName: record.SubmitterName(),
			CreatedAt:     record.CreatedAt(),
		})
	}

	return orders, nil
}
