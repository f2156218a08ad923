package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllDeliveryMenQueryHandler retrieves the delivery-personnel roster
// from the database. Uses direct SQL for read performance.
type GetAllDeliveryMenQueryHandler struct {
	db *gorm.DB
}

// NewGetAllDeliveryMenQueryHandler creates a handler for roster retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetAllDeliveryMenQueryHandler(db *gorm.DB) GetAllDeliveryMenQueryHandler {
	return GetAllDeliveryMenQueryHandler{db: db}
}

// Handle executes the query to retrieve all delivery personnel sorted by
// name.
func (h GetAllDeliveryMenQueryHandler) Handle(
	ctx context.Context,
	query GetAllDeliveryMenQuery,
) ([]GetAllDeliveryMenQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	roster := make([]GetAllDeliveryMenQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			user_id,
			date_started,
			name,
			address,
			age,
			contact_number,
			license_number,
			car_plate_assigned,
			order_count_today
		FROM delivery_person
		ORDER BY name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllDeliveryMenQueryResponse

		err = rows.Scan(
			&response.ID,
			&response.UserID,
			&response.DateStarted,
			&response.Name,
			&response.Address,
			&response.Age,
			&response.ContactNumber,
			&response.LicenseNumber,
			&response.CarPlateAssigned,
			&response.OrderCountToday,
		)
		if err != nil {
			return nil, err
		}

		roster = append(roster, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return roster, nil
}
