package commands

import (
	"errors"

	"pocketmart/internal/pkg/guard"

	"github.com/google/uuid"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrClientUserIDIsInvalid = errors.New("client user id must be a positive identifier")
	ErrTotalPriceIsInvalid   = errors.New("total price must not be negative")
)

// CreateOrderCommand represents a client placing an order.
// The public order reference is generated here, so the caller knows it
// before the transaction runs.
type CreateOrderCommand struct {
	clientUserID int64
	totalPrice   float64
	ref          string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates an order-placement command and generates
// a fresh UUID reference for the order.
func NewCreateOrderCommand(clientUserID int64, totalPrice float64) (CreateOrderCommand, error) {
	if clientUserID <= 0 {
		return CreateOrderCommand{}, ErrClientUserIDIsInvalid
	}
	if totalPrice < 0 {
		return CreateOrderCommand{}, ErrTotalPriceIsInvalid
	}

	return CreateOrderCommand{
		clientUserID: clientUserID,
		totalPrice:   totalPrice,
		ref:          uuid.NewString(),
		guard:        guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// ClientUserID returns the placing client's user identifier.
func (c CreateOrderCommand) ClientUserID() int64 {
	return c.clientUserID
}

// TotalPrice returns the order total.
func (c CreateOrderCommand) TotalPrice() float64 {
	return c.totalPrice
}

// Ref returns the generated public order reference.
func (c CreateOrderCommand) Ref() string {
	return c.ref
}
