package commands

import (
	"errors"

	"pocketmart/internal/pkg/guard"
)

var ErrCompleteDeliveryCommandIsNotConstructed = errors.New(
	"CompleteDeliveryCommand must be created via NewCompleteDeliveryCommand constructor",
)

// CompleteDeliveryCommand requests completion of an order's delivery.
// Handling it moves the order to Delivered and the delivery record to
// Completed in one transaction.
type CompleteDeliveryCommand struct {
	orderID int64

	guard guard.ConstructorGuard
}

// NewCompleteDeliveryCommand creates a completion command for the given
// order.
func NewCompleteDeliveryCommand(orderID int64) (CompleteDeliveryCommand, error) {
	if orderID <= 0 {
		return CompleteDeliveryCommand{}, ErrOrderIDIsInvalid
	}

	return CompleteDeliveryCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrCompleteDeliveryCommandIsNotConstructed)
}

// OrderID returns the order whose delivery is being completed.
func (c CompleteDeliveryCommand) OrderID() int64 {
	return c.orderID
}
