package ports

import (
	"context"

	"pocketmart/internal/core/domain/model/delivery"
)

// DeliveryRepository defines the persistence contract for delivery records.
type DeliveryRepository interface {
	// Add persists a new delivery record and backfills the
	// store-generated identifier into the aggregate. The store enforces
	// at most one delivery per order.
	Add(ctx context.Context, aggregate *delivery.Delivery) error

	// Update persists changes to an existing delivery record.
	Update(ctx context.Context, aggregate *delivery.Delivery) error

	// GetByOrderID retrieves the delivery record for an order.
	// Returns errs.ErrObjectNotFound if the order has no delivery.
	GetByOrderID(ctx context.Context, orderID int64) (*delivery.Delivery, error)
}
