// Package order contains the Order aggregate and its status state machine.
package order

import (
	"errors"
	"fmt"
	"time"

	"pocketmart/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder constructor")

	// ErrIDAlreadyAssigned is returned when SetID is called on an aggregate
	// that already carries a store-generated identifier.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Order represents a client order. It is the aggregate root that manages
// the order lifecycle from placement through assignment to delivery.
//
// Invariants:
//   - must reference the owning client's user row
//   - total price is never negative
//   - the public reference is non-empty and immutable
//   - status transitions follow the Placed -> On Way -> Delivered machine;
//     the On Way transition is driven only by the assignment workflow
type Order struct {
	id           int64
	clientUserID int64
	totalPrice   float64
	orderDate    time.Time
	status       Status
	ref          string

	isConstructed bool
}

// NewOrder creates an Order in Placed status. The ref is the public
// reference exposed to clients (a UUID generated by the placement command).
// The identifier stays zero until the store assigns one.
func NewOrder(clientUserID int64, totalPrice float64, orderDate time.Time, ref string) (*Order, error) {
	o := &Order{
		status:        Placed,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setClientUserID(clientUserID),
		o.setTotalPrice(totalPrice),
		o.setRef(ref),
	); err != nil {
		return nil, err
	}

	o.orderDate = orderDate
	return o, nil
}

// RestoreOrder reconstructs an Order from its persisted state.
func RestoreOrder(
	id, clientUserID int64,
	totalPrice float64,
	orderDate time.Time,
	status Status,
	ref string,
) (*Order, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("orderId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	o, err := NewOrder(clientUserID, totalPrice, orderDate, ref)
	if err != nil {
		return nil, err
	}

	o.id = id
	o.status = status
	return o, nil
}

// Validate ensures the Order was created through a constructor.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// ID returns the store-generated identifier, or 0 if not yet persisted.
func (o *Order) ID() int64 {
	return o.id
}

// ClientUserID returns the owning client's user identifier.
func (o *Order) ClientUserID() int64 {
	return o.clientUserID
}

// TotalPrice returns the order total.
func (o *Order) TotalPrice() float64 {
	return o.totalPrice
}

// OrderDate returns when the order was placed.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// Ref returns the public order reference.
func (o *Order) Ref() string {
	return o.ref
}

// Assign moves the order to On Way. Only the assignment workflow calls
// this, after it has created the Delivery record in the same transaction.
func (o *Order) Assign() error {
	newStatus, err := o.status.Assign()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Complete marks the order as Delivered.
func (o *Order) Complete() error {
	newStatus, err := o.status.Complete()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// SetID records the identifier generated by the store on insert.
// It may be called exactly once, with a positive value.
func (o *Order) SetID(id int64) error {
	if o.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("orderId")
	}
	o.id = id
	return nil
}

func (o *Order) setClientUserID(clientUserID int64) error {
	if clientUserID <= 0 {
		return errs.NewValueIsInvalidError("clientUserId")
	}
	o.clientUserID = clientUserID
	return nil
}

func (o *Order) setTotalPrice(totalPrice float64) error {
	if totalPrice < 0 {
		return errs.NewValueIsInvalidErrorWithCause("totalPrice",
			fmt.Errorf("%v is negative", totalPrice))
	}
	o.totalPrice = totalPrice
	return nil
}

func (o *Order) setRef(ref string) error {
	if ref == "" {
		return errs.NewValueIsRequiredError("ref")
	}
	o.ref = ref
	return nil
}
