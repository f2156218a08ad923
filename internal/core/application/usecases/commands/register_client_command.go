package commands

import (
	"errors"

	"pocketmart/internal/pkg/guard"
)

var (
	ErrRegisterClientCommandIsNotConstructed = errors.New(
		"RegisterClientCommand must be created via NewRegisterClientCommand constructor",
	)
	ErrFullNameIsRequired = errors.New("full_name is required")
	ErrAddressIsRequired  = errors.New("address is required")
)

// RegisterClientCommand represents a request to register a client account:
// a credential record plus the one-to-one client profile.
type RegisterClientCommand struct {
	fullName string
	address  string
	username string
	password string

	guard guard.ConstructorGuard
}

// NewRegisterClientCommand creates a client-registration command.
func NewRegisterClientCommand(fullName, address, username, password string) (RegisterClientCommand, error) {
	if fullName == "" {
		return RegisterClientCommand{}, ErrFullNameIsRequired
	}
	if address == "" {
		return RegisterClientCommand{}, ErrAddressIsRequired
	}
	if username == "" {
		return RegisterClientCommand{}, ErrUsernameIsRequired
	}
	if password == "" {
		return RegisterClientCommand{}, ErrPasswordIsRequired
	}

	return RegisterClientCommand{
		fullName: fullName,
		address:  address,
		username: username,
		password: password,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c RegisterClientCommand) Validate() error {
	return c.guard.Validate(ErrRegisterClientCommandIsNotConstructed)
}

// FullName returns the client's display name.
func (c RegisterClientCommand) FullName() string {
	return c.fullName
}

// Address returns the client's delivery address.
func (c RegisterClientCommand) Address() string {
	return c.address
}

// Username returns the account name for the credential record.
func (c RegisterClientCommand) Username() string {
	return c.username
}

// Password returns the plaintext password submitted at registration.
func (c RegisterClientCommand) Password() string {
	return c.password
}
