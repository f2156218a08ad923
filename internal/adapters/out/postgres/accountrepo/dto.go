// Package accountrepo provides data transfer objects and mapping functions
// for user credential and client profile persistence. It implements the
// repository pattern for the account domain aggregates, handling conversion
// between domain entities and database rows.
package accountrepo

import (
	"pocketmart/internal/core/domain/model/account"
)

// UserDTO maps credential records onto the users table. The identifier is
// store-generated, so inserts leave UserID zero and read it back from the
// created row.
type UserDTO struct {
	UserID   int64  `gorm:"column:userid;primaryKey;autoIncrement"`
	Username string `gorm:"column:username;type:varchar(255);not null;uniqueIndex"`
	Password string `gorm:"column:password;type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "users".
func (UserDTO) TableName() string {
	return "users"
}

// ClientDetailsDTO maps client profiles onto the client_details table.
// One profile per user.
type ClientDetailsDTO struct {
	UserID   int64  `gorm:"column:user_id;primaryKey"`
	FullName string `gorm:"column:full_name;type:varchar(255);not null"`
	Address  string `gorm:"column:address;type:varchar(255);not null"`
}

// TableName overrides GORM's default naming to use "client_details".
func (ClientDetailsDTO) TableName() string {
	return "client_details"
}

func userFromDomain(user *account.User) UserDTO {
	return UserDTO{
		UserID:   user.ID(),
		Username: user.Username(),
		Password: user.PasswordHash(),
	}
}

func userToDomain(dto UserDTO) (*account.User, error) {
	return account.RestoreUser(dto.UserID, dto.Username, dto.Password)
}

func clientFromDomain(details *account.ClientDetails) ClientDetailsDTO {
	return ClientDetailsDTO{
		UserID:   details.UserID(),
		FullName: details.FullName(),
		Address:  details.Address(),
	}
}
