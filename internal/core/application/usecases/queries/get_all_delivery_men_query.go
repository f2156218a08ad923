package queries

import (
	"errors"
	"time"

	"pocketmart/internal/pkg/guard"
)

var ErrGetAllDeliveryMenQueryIsNotConstructed = errors.New(
	"GetAllDeliveryMenQuery must be created via NewGetAllDeliveryMenQuery constructor",
)

// GetAllDeliveryMenQuery retrieves the full delivery-personnel roster,
// including each person's daily assignment counter for dispatch decisions.
type GetAllDeliveryMenQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllDeliveryMenQuery creates a query to retrieve all delivery
// personnel. This is a parameterless query that fetches the complete
// roster.
func NewGetAllDeliveryMenQuery() GetAllDeliveryMenQuery {
	return GetAllDeliveryMenQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAllDeliveryMenQuery) Validate() error {
	return q.guard.Validate(ErrGetAllDeliveryMenQueryIsNotConstructed)
}

// GetAllDeliveryMenQueryResponse is the delivery-person read model.
type GetAllDeliveryMenQueryResponse struct {
	ID               int64
	UserID           int64
	DateStarted      time.Time
	Name             string
	Address          string
	Age              int
	ContactNumber    string
	LicenseNumber    string
	CarPlateAssigned string
	OrderCountToday  int
}
