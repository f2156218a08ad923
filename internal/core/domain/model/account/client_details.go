package account

import (
	"errors"

	"pocketmart/internal/pkg/errs"
)

// ErrClientDetailsIsNotConstructed is returned when a ClientDetails instance
// was not created through NewClientDetails or RestoreClientDetails.
var ErrClientDetailsIsNotConstructed = errors.New(
	"ClientDetails must be created via NewClientDetails or RestoreClientDetails constructor",
)

// ClientDetails is the one-to-one client profile attached to a User row.
type ClientDetails struct {
	userID   int64
	fullName string
	address  string

	isConstructed bool
}

// NewClientDetails creates a client profile for an already persisted user.
// The user identifier must be known, so client registration inserts the
// User row first and attaches the profile inside the same transaction.
func NewClientDetails(userID int64, fullName, address string) (*ClientDetails, error) {
	if userID <= 0 {
		return nil, errs.NewValueIsInvalidError("userId")
	}
	if fullName == "" {
		return nil, errs.NewValueIsRequiredError("fullName")
	}
	if address == "" {
		return nil, errs.NewValueIsRequiredError("address")
	}

	return &ClientDetails{
		userID:        userID,
		fullName:      fullName,
		address:       address,
		isConstructed: true,
	}, nil
}

// RestoreClientDetails reconstructs a profile from its persisted state.
func RestoreClientDetails(userID int64, fullName, address string) (*ClientDetails, error) {
	return NewClientDetails(userID, fullName, address)
}

// Validate ensures the profile was created through a constructor.
func (c *ClientDetails) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrClientDetailsIsNotConstructed
	}
	return nil
}

// UserID returns the owning user's identifier.
func (c *ClientDetails) UserID() int64 {
	return c.userID
}

// FullName returns the client's display name.
func (c *ClientDetails) FullName() string {
	return c.fullName
}

// Address returns the client's delivery address.
func (c *ClientDetails) Address() string {
	return c.address
}
