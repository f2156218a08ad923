// Package deliveryrepo provides data transfer objects and mapping
// functions for delivery-record persistence. The unique index on order_id
// is the storage-level half of the double-assignment guard; the other half
// is the order status machine.
package deliveryrepo

import (
	"pocketmart/internal/core/domain/model/delivery"
)

// DeliveryDTO maps delivery records onto the deliveries table.
type DeliveryDTO struct {
	ID               int64  `gorm:"column:id;primaryKey;autoIncrement"`
	OrderID          int64  `gorm:"column:order_id;not null;uniqueIndex"`
	DeliveryPersonID int64  `gorm:"column:delivery_person_id;not null;index"`
	ClientID         int64  `gorm:"column:client_id;not null"`
	Status           string `gorm:"column:status;type:varchar(20);not null"`
}

// TableName overrides GORM's default naming to use "deliveries".
func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(record *delivery.Delivery) DeliveryDTO {
	return DeliveryDTO{
		ID:               record.ID(),
		OrderID:          record.OrderID(),
		DeliveryPersonID: record.DeliveryPersonID(),
		ClientID:         record.ClientID(),
		Status:           record.Status().String(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	status, err := delivery.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(
		dto.ID,
		dto.OrderID,
		dto.DeliveryPersonID,
		dto.ClientID,
		status,
	)
}
