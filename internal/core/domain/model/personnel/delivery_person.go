// Package personnel contains the DeliveryPerson aggregate: the courier
// profile linked to a credential User row, carrying the daily assignment
// counter that the assignment workflow increments.
package personnel

import (
	"errors"
	"time"

	"pocketmart/internal/pkg/errs"
)

var (
	// ErrDeliveryPersonIsNotConstructed is returned when a DeliveryPerson
	// was not created through NewDeliveryPerson or RestoreDeliveryPerson.
	ErrDeliveryPersonIsNotConstructed = errors.New(
		"DeliveryPerson must be created via NewDeliveryPerson or RestoreDeliveryPerson constructor",
	)

	// ErrIDAlreadyAssigned is returned when SetID is called on an aggregate
	// that already carries a store-generated identifier.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// Age bounds for onboarded personnel. A delivery person must hold a
// driving license, so the lower bound is the licensing age.
const (
	minAge = 18
	maxAge = 100
)

// DeliveryPerson represents a courier profile.
//
// Invariants:
//   - never exists without a corresponding User row (userID is mandatory
//     and the onboarding workflow creates both inside one transaction)
//   - orderCountToday is never negative; it increments exactly once per
//     successful assignment and is reset only by the daily job
type DeliveryPerson struct {
	id               int64
	userID           int64
	dateStarted      time.Time
	name             string
	address          string
	age              int
	contactNumber    string
	licenseNumber    string
	carPlateAssigned string
	orderCountToday  int

	isConstructed bool
}

// NewDeliveryPerson creates a courier profile for an already persisted user.
// The daily assignment counter starts at zero. The identifier stays zero
// until the store assigns one.
func NewDeliveryPerson(
	userID int64,
	dateStarted time.Time,
	name, address string,
	age int,
	contactNumber, licenseNumber, carPlateAssigned string,
) (*DeliveryPerson, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("userId")
	}
	if name == "" {
		return nil, errs.NewValueIsRequiredError("name")
	}
	if age < minAge || age > maxAge {
		return nil, errs.NewValueIsOutOfRangeError("age", age, minAge, maxAge)
	}

	return &DeliveryPerson{
		userID:           userID,
		dateStarted:      dateStarted,
		name:             name,
		address:          address,
		age:              age,
		contactNumber:    contactNumber,
		licenseNumber:    licenseNumber,
		carPlateAssigned: carPlateAssigned,
		isConstructed:    true,
	}, nil
}

// RestoreDeliveryPerson reconstructs a courier profile from its persisted
// state, including the current daily assignment counter.
func RestoreDeliveryPerson(
	id, userID int64,
	dateStarted time.Time,
	name, address string,
	age int,
	contactNumber, licenseNumber, carPlateAssigned string,
	orderCountToday int,
) (*DeliveryPerson, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("deliveryPersonId")
	}
	if orderCountToday < 0 {
		return nil, errs.NewValueIsInvalidError("orderCountToday")
	}

	person, err := NewDeliveryPerson(
		userID, dateStarted, name, address, age,
		contactNumber, licenseNumber, carPlateAssigned,
	)
	if err != nil {
		return nil, err
	}

	person.id = id
	person.orderCountToday = orderCountToday
	return person, nil
}

// Validate ensures the DeliveryPerson was created through a constructor.
func (p *DeliveryPerson) Validate() error {
	if p == nil || !p.isConstructed {
		return ErrDeliveryPersonIsNotConstructed
	}
	return nil
}

// ID returns the store-generated identifier, or 0 if not yet persisted.
func (p *DeliveryPerson) ID() int64 {
	return p.id
}

// UserID returns the backing credential user's identifier.
func (p *DeliveryPerson) UserID() int64 {
	return p.userID
}

// DateStarted returns the employment start date.
func (p *DeliveryPerson) DateStarted() time.Time {
	return p.dateStarted
}

// Name returns the courier's name.
func (p *DeliveryPerson) Name() string {
	return p.name
}

// Address returns the courier's address.
func (p *DeliveryPerson) Address() string {
	return p.address
}

// Age returns the courier's age.
func (p *DeliveryPerson) Age() int {
	return p.age
}

// ContactNumber returns the courier's phone number.
func (p *DeliveryPerson) ContactNumber() string {
	return p.contactNumber
}

// LicenseNumber returns the courier's driving license number.
func (p *DeliveryPerson) LicenseNumber() string {
	return p.licenseNumber
}

// CarPlateAssigned returns the plate of the vehicle assigned to the courier.
func (p *DeliveryPerson) CarPlateAssigned() string {
	return p.carPlateAssigned
}

// OrderCountToday returns the number of assignments recorded since the
// last daily reset.
func (p *DeliveryPerson) OrderCountToday() int {
	return p.orderCountToday
}

// RecordAssignment increments the daily assignment counter. Called by the
// assignment workflow exactly once per successful assignment; the counter
// is never decremented here.
func (p *DeliveryPerson) RecordAssignment() {
	p.orderCountToday++
}

// ResetDailyCount zeroes the daily assignment counter. Used by the
// scheduled midnight reset.
func (p *DeliveryPerson) ResetDailyCount() {
	p.orderCountToday = 0
}

// SetID records the identifier generated by the store on insert.
// It may be called exactly once, with a positive value.
func (p *DeliveryPerson) SetID(id int64) error {
	if p.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("deliveryPersonId")
	}
	p.id = id
	return nil
}
