package ports

import (
	"context"

	"pocketmart/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order and backfills the store-generated
	// identifier into the aggregate.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by identifier.
	// Returns errs.ErrObjectNotFound if no such order exists.
	Get(ctx context.Context, id int64) (*order.Order, error)
}
