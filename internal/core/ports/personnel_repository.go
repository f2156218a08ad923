package ports

import (
	"context"

	"pocketmart/internal/core/domain/model/personnel"
)

// PersonnelRepository defines the persistence contract for delivery
// personnel aggregates.
type PersonnelRepository interface {
	// Add persists a new delivery person and backfills the
	// store-generated identifier into the aggregate.
	Add(ctx context.Context, person *personnel.DeliveryPerson) error

	// Update persists changes to an existing delivery person,
	// including the daily assignment counter.
	Update(ctx context.Context, person *personnel.DeliveryPerson) error

	// Get retrieves a delivery person by identifier.
	// Returns errs.ErrObjectNotFound if no such person exists.
	Get(ctx context.Context, id int64) (*personnel.DeliveryPerson, error)

	// ResetAllDailyCounts zeroes order_count_today for every delivery
	// person. Used by the scheduled midnight reset.
	ResetAllDailyCounts(ctx context.Context) error
}
