// Package delivery contains the Delivery aggregate: the record linking an
// order to the delivery person carrying it. Exactly one delivery record
// exists per assigned order.
package delivery

import (
	"errors"

	"pocketmart/internal/pkg/errs"
)

var (
	// ErrDeliveryIsNotConstructed is returned when a Delivery instance was
	// not created through NewDelivery or RestoreDelivery.
	ErrDeliveryIsNotConstructed = errors.New(
		"Delivery must be created via NewDelivery or RestoreDelivery constructor",
	)

	// ErrIDAlreadyAssigned is returned when SetID is called on an aggregate
	// that already carries a store-generated identifier.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Delivery links an order to a delivery person and the owning client.
// Created exactly once per successful assignment; the uniqueness
// constraint on the order reference in the store enforces this.
type Delivery struct {
	id               int64
	orderID          int64
	deliveryPersonID int64
	clientID         int64
	status           Status

	isConstructed bool
}

// NewDelivery creates a Delivery in Assigned status. All three references
// must be positive identifiers of existing rows; the store's foreign keys
// back this up inside the assignment transaction.
func NewDelivery(orderID, deliveryPersonID, clientID int64) (*Delivery, error) {
	if orderID <= 0 {
		return nil, errs.NewValueIsInvalidError("orderId")
	}
	if deliveryPersonID <= 0 {
		return nil, errs.NewValueIsInvalidError("deliveryPersonId")
	}
	if clientID <= 0 {
		return nil, errs.NewValueIsInvalidError("clientId")
	}

	return &Delivery{
		orderID:          orderID,
		deliveryPersonID: deliveryPersonID,
		clientID:         clientID,
		status:           Assigned,
		isConstructed:    true,
	}, nil
}

// RestoreDelivery reconstructs a Delivery from its persisted state.
func RestoreDelivery(id, orderID, deliveryPersonID, clientID int64, status Status) (*Delivery, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("deliveryId")
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	d, err := NewDelivery(orderID, deliveryPersonID, clientID)
	if err != nil {
		return nil, err
	}

	d.id = id
	d.status = status
	return d, nil
}

// Validate ensures the Delivery was created through a constructor.
func (d *Delivery) Validate() error {
	if d == nil || !d.isConstructed {
		return ErrDeliveryIsNotConstructed
	}
	return nil
}

// ID returns the store-generated identifier, or 0 if not yet persisted.
func (d *Delivery) ID() int64 {
	return d.id
}

// OrderID returns the delivered order's identifier.
func (d *Delivery) OrderID() int64 {
	return d.orderID
}

// DeliveryPersonID returns the assigned courier's identifier.
func (d *Delivery) DeliveryPersonID() int64 {
	return d.deliveryPersonID
}

// ClientID returns the owning client's user identifier.
func (d *Delivery) ClientID() int64 {
	return d.clientID
}

// Status returns the current delivery status.
func (d *Delivery) Status() Status {
	return d.status
}

// Complete marks the delivery as Completed.
func (d *Delivery) Complete() error {
	newStatus, err := d.status.Complete()
	if err != nil {
		return err
	}

	d.status = newStatus
	return nil
}

// SetID records the identifier generated by the store on insert.
// It may be called exactly once, with a positive value.
func (d *Delivery) SetID(id int64) error {
	if d.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("deliveryId")
	}
	d.id = id
	return nil
}
