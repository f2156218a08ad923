package commands

import (
	"errors"
	"time"

	"pocketmart/internal/pkg/errs"
	"pocketmart/internal/pkg/guard"
)

var (
	ErrCreatePersonnelCommandIsNotConstructed = errors.New(
		"CreatePersonnelCommand must be created via NewCreatePersonnelCommand constructor",
	)
	ErrNameIsRequired     = errors.New("name is required")
	ErrUsernameIsRequired = errors.New("username is required")
	ErrPasswordIsRequired = errors.New("password is required")
)

// Age bounds accepted for onboarded personnel; kept in sync with the
// personnel aggregate's own validation.
const (
	minPersonnelAge = 18
	maxPersonnelAge = 100
)

// CreatePersonnelCommand represents a request to onboard a new delivery
// person together with their credential record.
type CreatePersonnelCommand struct {
	dateStarted      time.Time
	name             string
	address          string
	age              int
	contactNumber    string
	licenseNumber    string
	carPlateAssigned string
	username         string
	password         string

	guard guard.ConstructorGuard
}

// NewCreatePersonnelCommand creates an onboarding command.
// Requires a name, a username, and a plaintext password (the password is
// hashed by the handler before the transaction opens, never stored as-is).
func NewCreatePersonnelCommand(
	dateStarted time.Time,
	name, address string,
	age int,
	contactNumber, licenseNumber, carPlateAssigned string,
	username, password string,
) (CreatePersonnelCommand, error) {
	if name == "" {
		return CreatePersonnelCommand{}, ErrNameIsRequired
	}
	if username == "" {
		return CreatePersonnelCommand{}, ErrUsernameIsRequired
	}
	if password == "" {
		return CreatePersonnelCommand{}, ErrPasswordIsRequired
	}
	if age < minPersonnelAge || age > maxPersonnelAge {
		return CreatePersonnelCommand{}, errs.NewValueIsOutOfRangeError(
			"age", age, minPersonnelAge, maxPersonnelAge,
		)
	}

	return CreatePersonnelCommand{
		dateStarted:      dateStarted,
		name:             name,
		address:          address,
		age:              age,
		contactNumber:    contactNumber,
		licenseNumber:    licenseNumber,
		carPlateAssigned: carPlateAssigned,
		username:         username,
		password:         password,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CreatePersonnelCommand) Validate() error {
	return c.guard.Validate(ErrCreatePersonnelCommandIsNotConstructed)
}

// DateStarted returns the employment start date.
func (c CreatePersonnelCommand) DateStarted() time.Time {
	return c.dateStarted
}

// Name returns the delivery person's name.
func (c CreatePersonnelCommand) Name() string {
	return c.name
}

// Address returns the delivery person's address.
func (c CreatePersonnelCommand) Address() string {
	return c.address
}

// Age returns the delivery person's age.
func (c CreatePersonnelCommand) Age() int {
	return c.age
}

// ContactNumber returns the delivery person's phone number.
func (c CreatePersonnelCommand) ContactNumber() string {
	return c.contactNumber
}

// LicenseNumber returns the driving license number.
func (c CreatePersonnelCommand) LicenseNumber() string {
	return c.licenseNumber
}

// CarPlateAssigned returns the assigned vehicle plate.
func (c CreatePersonnelCommand) CarPlateAssigned() string {
	return c.carPlateAssigned
}

// Username returns the account name for the credential record.
func (c CreatePersonnelCommand) Username() string {
	return c.username
}

// Password returns the plaintext password submitted for onboarding.
func (c CreatePersonnelCommand) Password() string {
	return c.password
}
