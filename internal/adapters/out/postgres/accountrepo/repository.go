package accountrepo

import (
	"context"
	"errors"

	"pocketmart/internal/core/domain/model/account"
	"pocketmart/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates modified
// within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// GormUserRepository implements UserRepository using GORM.
type GormUserRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormUserRepository creates a new GORM user repository.
func NewGormUserRepository(db *gorm.DB, tracker aggregateTracker) *GormUserRepository {
	return &GormUserRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new credential record and backfills the store-generated
// identifier into the aggregate.
func (r *GormUserRepository) Add(ctx context.Context, user *account.User) error {
	if err := user.Validate(); err != nil {
		return err
	}

	dto := userFromDomain(user)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := user.SetID(dto.UserID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(user.ID(), user)
	return nil
}

// GetByUsername retrieves a credential record by its unique username.
func (r *GormUserRepository) GetByUsername(ctx context.Context, username string) (*account.User, error) {
	var dto UserDTO
	if err := r.db.WithContext(ctx).First(&dto, "username = ?", username).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("username", username)
		}
		return nil, err
	}

	return userToDomain(dto)
}

// GormClientRepository implements ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormClientRepository creates a new GORM client repository.
func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a client profile keyed by its owning user.
func (r *GormClientRepository) Add(ctx context.Context, details *account.ClientDetails) error {
	if err := details.Validate(); err != nil {
		return err
	}

	dto := clientFromDomain(details)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(details.UserID(), details)
	return nil
}
