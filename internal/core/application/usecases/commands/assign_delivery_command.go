package commands

import (
	"errors"

	"pocketmart/internal/pkg/guard"
)

var (
	ErrAssignDeliveryCommandIsNotConstructed = errors.New(
		"AssignDeliveryCommand must be created via NewAssignDeliveryCommand constructor",
	)
	ErrOrderIDIsInvalid          = errors.New("order_id must be a positive identifier")
	ErrDeliveryPersonIDIsInvalid = errors.New("delivery_person_id must be a positive identifier")
	ErrClientIDIsInvalid         = errors.New("client_id must be a positive identifier")
)

// AssignDeliveryCommand requests the assignment of an order to a delivery
// person. Handling it creates the delivery record, moves the order to
// "On Way", and increments the assignee's daily counter — all inside one
// transaction.
//
// Example:
//
//	cmd, err := NewAssignDeliveryCommand(orderID, personID, clientID)
//	if err != nil {
//	    return err
//	}
//	record, err := handler.Handle(ctx, cmd)
type AssignDeliveryCommand struct {
	orderID          int64
	deliveryPersonID int64
	clientID         int64

	guard guard.ConstructorGuard
}

// NewAssignDeliveryCommand creates an assignment command.
// All three identifiers must be positive.
func NewAssignDeliveryCommand(orderID, deliveryPersonID, clientID int64) (AssignDeliveryCommand, error) {
	if orderID <= 0 {
		return AssignDeliveryCommand{}, ErrOrderIDIsInvalid
	}
	if deliveryPersonID <= 0 {
		return AssignDeliveryCommand{}, ErrDeliveryPersonIDIsInvalid
	}
	if clientID <= 0 {
		return AssignDeliveryCommand{}, ErrClientIDIsInvalid
	}

	return AssignDeliveryCommand{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		clientID:         clientID,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c AssignDeliveryCommand) Validate() error {
	return c.guard.Validate(ErrAssignDeliveryCommandIsNotConstructed)
}

// OrderID returns the order to assign.
func (c AssignDeliveryCommand) OrderID() int64 {
	return c.orderID
}

// DeliveryPersonID returns the delivery person receiving the order.
func (c AssignDeliveryCommand) DeliveryPersonID() int64 {
	return c.deliveryPersonID
}

// ClientID returns the order's owning client.
func (c AssignDeliveryCommand) ClientID() int64 {
	return c.clientID
}
