// Package personnelrepo provides data transfer objects and mapping
// functions for delivery-personnel persistence.
package personnelrepo

import (
	"time"

	"pocketmart/internal/core/domain/model/personnel"
)

// DeliveryPersonDTO maps courier profiles onto the delivery_person table.
type DeliveryPersonDTO struct {
	ID               int64     `gorm:"column:id;primaryKey;autoIncrement"`
	UserID           int64     `gorm:"column:user_id;not null;uniqueIndex"`
	DateStarted      time.Time `gorm:"column:date_started;type:date;not null"`
	Name             string    `gorm:"column:name;type:varchar(255);not null"`
	Address          string    `gorm:"column:address;type:varchar(255)"`
	Age              int       `gorm:"column:age;not null"`
	ContactNumber    string    `gorm:"column:contact_number;type:varchar(50)"`
	LicenseNumber    string    `gorm:"column:license_number;type:varchar(50)"`
	CarPlateAssigned string    `gorm:"column:car_plate_assigned;type:varchar(20)"`
	OrderCountToday  int       `gorm:"column:order_count_today;not null;default:0"`
}

// TableName overrides GORM's default naming to use "delivery_person".
func (DeliveryPersonDTO) TableName() string {
	return "delivery_person"
}

func fromDomain(person *personnel.DeliveryPerson) DeliveryPersonDTO {
	return DeliveryPersonDTO{
		ID:               person.ID(),
		UserID:           person.UserID(),
		DateStarted:      person.DateStarted(),
		Name:             person.Name(),
		Address:          person.Address(),
		Age:              person.Age(),
		ContactNumber:    person.ContactNumber(),
		LicenseNumber:    person.LicenseNumber(),
		CarPlateAssigned: person.CarPlateAssigned(),
		OrderCountToday:  person.OrderCountToday(),
	}
}

func toDomain(dto DeliveryPersonDTO) (*personnel.DeliveryPerson, error) {
	return personnel.RestoreDeliveryPerson(
		dto.ID,
		dto.UserID,
		dto.DateStarted,
		dto.Name,
		dto.Address,
		dto.Age,
		dto.ContactNumber,
		dto.LicenseNumber,
		dto.CarPlateAssigned,
		dto.OrderCountToday,
	)
}
