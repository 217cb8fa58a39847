package cmd

import (
	"barista/internal/adapters/out/filestore"
	"barista/internal/adapters/out/inmemory"
	"barista/internal/core/application/usecases/commands"
	"barista/internal/core/application/usecases/queries"
	"barista/internal/pkg/clock"
)

type CompositionRoot struct {
	store    *filestore.OrderStore
	registry *inmemory.SessionRegistry
}

func NewCompositionRoot(configs Config) (CompositionRoot, error) {
	store, err := filestore.NewOrderStore(configs.OrdersDir)
	if err != nil {
		return CompositionRoot{}, err
	}

	registry, err := inmemory.NewSessionRegistry(store, clock.NewSystem())
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		store:    store,
		registry: registry,
	}, nil
}

// SessionRegistry exposes the registry for background jobs.
func (c *CompositionRoot) SessionRegistry() *inmemory.SessionRegistry {
	return c.registry
}

// OrderStore exposes the store for startup checks.
func (c *CompositionRoot) OrderStore() *filestore.OrderStore {
	return c.store
}

func (c *CompositionRoot) CreateStartSessionCommandHandler() commands.StartSessionCommandHandler {
	return commands.NewStartSessionCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateUpdateOrderCommandHandler() commands.UpdateOrderCommandHandler {
	return commands.NewUpdateOrderCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateCommitOrderCommandHandler() commands.CommitOrderCommandHandler {
	return commands.NewCommitOrderCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateEndSessionCommandHandler() commands.EndSessionCommandHandler {
	return commands.NewEndSessionCommandHandler(c.registry)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.registry)
}

func (c *CompositionRoot) CreateListCommittedOrdersQueryHandler() queries.ListCommittedOrdersQueryHandler {
	return queries.NewListCommittedOrdersQueryHandler(c.store)
}
