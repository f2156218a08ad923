// Package account contains the credential and client-profile aggregates.
// A User row backs every account in the system: clients carry an attached
// ClientDetails profile, delivery personnel are linked from their own
// aggregate in the personnel package.
package account

import (
	"errors"

	"pocketmart/internal/pkg/errs"

	"golang.org/x/crypto/bcrypt"
)

var (
	// ErrUserIsNotConstructed is returned when a User instance was not
	// created through NewUser or RestoreUser.
	ErrUserIsNotConstructed = errors.New("User must be created via NewUser or RestoreUser constructor")

	// ErrIDAlreadyAssigned is returned when SetID is called on an aggregate
	// that already carries a store-generated identifier.
	ErrIDAlreadyAssigned = errors.New("identifier is already assigned")
)

// bcryptCost is the work factor applied to stored credentials.
const bcryptCost = 10

// User is the credential aggregate. It stores a username together with a
// salted bcrypt hash of the password; the plaintext never leaves NewUser.
//
// Invariants:
//   - username is non-empty and unique in the store
//   - the stored password value is always a bcrypt hash, never plaintext
//   - the identifier is assigned exactly once, by the store on insert
type User struct {
	id           int64
	username     string
	passwordHash string

	isConstructed bool
}

// NewUser creates a User from a username and a plaintext password.
// The password is hashed immediately with bcrypt (cost 10); hashing happens
// here so that callers can do the expensive work before opening a
// transaction. The identifier stays zero until the store assigns one.
func NewUser(username, plaintextPassword string) (*User, error) {
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if plaintextPassword == "" {
		return nil, errs.NewValueIsRequiredError("password")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintextPassword), bcryptCost)
	if err != nil {
		return nil, err
	}

	return &User{
		username:      username,
		passwordHash:  string(hash),
		isConstructed: true,
	}, nil
}

// RestoreUser reconstructs a User from its persisted state.
func RestoreUser(id int64, username, passwordHash string) (*User, error) {
	if id <= 0 {
		return nil, errs.NewValueIsInvalidError("userId")
	}
	if username == "" {
		return nil, errs.NewValueIsRequiredError("username")
	}
	if passwordHash == "" {
		return nil, errs.NewValueIsRequiredError("passwordHash")
	}

	return &User{
		id:            id,
		username:      username,
		passwordHash:  passwordHash,
		isConstructed: true,
	}, nil
}

// Validate ensures the User was created through a constructor.
func (u *User) Validate() error {
	if u == nil || !u.isConstructed {
		return ErrUserIsNotConstructed
	}
	return nil
}

// ID returns the store-generated identifier, or 0 if not yet persisted.
func (u *User) ID() int64 {
	return u.id
}

// Username returns the unique account name.
func (u *User) Username() string {
	return u.username
}

// PasswordHash returns the stored bcrypt hash.
func (u *User) PasswordHash() string {
	return u.passwordHash
}

// VerifyPassword reports whether the plaintext matches the stored hash.
func (u *User) VerifyPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.passwordHash), []byte(plaintext)) == nil
}

// SetID records the identifier generated by the store on insert.
// It may be called exactly once, with a positive value.
func (u *User) SetID(id int64) error {
	if u.id != 0 {
		return ErrIDAlreadyAssigned
	}
	if id <= 0 {
		return errs.NewValueIsInvalidError("userId")
	}
	u.id = id
	return nil
}
