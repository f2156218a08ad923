// Package orderrepo provides data transfer objects and mapping functions
// for order persistence. Statuses are stored as their string
// representations, so rows stay readable in ad-hoc SQL.
package orderrepo

import (
	"time"

	"pocketmart/internal/core/domain/model/order"
)

// OrderDTO maps order aggregates onto the orders table.
type OrderDTO struct {
	OrderID    int64     `gorm:"column:orderid;primaryKey;autoIncrement"`
	UserID     int64     `gorm:"column:userid;not null;index"`
	TotalPrice float64   `gorm:"column:totalprice;type:numeric(10,2);not null"`
	OrderDate  time.Time `gorm:"column:orderdate;not null"`
	Status     string    `gorm:"column:status;type:varchar(20);not null"`
	Ref        string    `gorm:"column:ref;type:varchar(64);not null;uniqueIndex"`
}

// TableName overrides GORM's default naming to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:    aggregate.ID(),
		UserID:     aggregate.ClientUserID(),
		TotalPrice: aggregate.TotalPrice(),
		OrderDate:  aggregate.OrderDate(),
		Status:     aggregate.Status().String(),
		Ref:        aggregate.Ref(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		dto.OrderID,
		dto.UserID,
		dto.TotalPrice,
		dto.OrderDate,
		status,
		dto.Ref,
	)
}
