package personnelrepo

import (
	"context"
	"errors"

	"pocketmart/internal/core/domain/model/personnel"
	"pocketmart/internal/pkg/errs"

	"gorm.io/gorm"
)

// aggregateTracker defines the interface for tracking aggregates modified
// within a unit of work.
type aggregateTracker interface {
	TrackAggregate(id int64, aggregate any)
}

// GormPersonnelRepository implements PersonnelRepository using GORM.
type GormPersonnelRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// NewGormPersonnelRepository creates a new GORM personnel repository.
func NewGormPersonnelRepository(db *gorm.DB, tracker aggregateTracker) *GormPersonnelRepository {
	return &GormPersonnelRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts a new delivery person and backfills the store-generated
// identifier into the aggregate.
func (r *GormPersonnelRepository) Add(ctx context.Context, person *personnel.DeliveryPerson) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := fromDomain(person)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if err := person.SetID(dto.ID); err != nil {
		return err
	}

	r.tracker.TrackAggregate(person.ID(), person)
	return nil
}

// Update saves an existing delivery person.
func (r *GormPersonnelRepository) Update(ctx context.Context, person *personnel.DeliveryPerson) error {
	if err := person.Validate(); err != nil {
		return err
	}

	dto := fromDomain(person)
	result := r.db.WithContext(ctx).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(person.ID(), person)
	return nil
}

// Get retrieves a delivery person by ID.
func (r *GormPersonnelRepository) Get(ctx context.Context, id int64) (*personnel.DeliveryPerson, error) {
	var dto DeliveryPersonDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryPersonId", id)
		}
		return nil, err
	}

	return toDomain(dto)
}

// ResetAllDailyCounts zeroes order_count_today for the whole roster in one
// statement. Runs at midnight via the scheduled reset job.
func (r *GormPersonnelRepository) ResetAllDailyCounts(ctx context.Context) error {
	return r.db.WithContext(ctx).
		Model(&DeliveryPersonDTO{}).
		Where("order_count_today <> 0").
		Update("order_count_today", 0).Error
}
