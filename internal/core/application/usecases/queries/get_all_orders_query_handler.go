package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetAllOrdersQueryHandler retrieves all orders joined with client details.
// Uses direct SQL for read performance; only clients with a registered
// profile appear, since the join to client_details is inner.
type GetAllOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllOrdersQueryHandler creates a handler for order retrieval
// queries. Requires a GORM database connection for query execution.
func NewGetAllOrdersQueryHandler(db *gorm.DB) GetAllOrdersQueryHandler {
	return GetAllOrdersQueryHandler{db: db}
}

// Handle executes the query to retrieve all orders with their client
// details, newest order first.
func (h GetAllOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetAllOrdersQuery,
) ([]GetAllOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	orders := make([]GetAllOrdersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			o.orderid,
			o.userid,
			o.totalprice,
			o.orderdate,
			o.status,
			o.ref,
			c.full_name,
			c.address
		FROM orders o
		JOIN users u ON o.userid = u.userid
		JOIN client_details c ON u.userid = c.user_id
		ORDER BY o.orderdate DESC, o.orderid DESC
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllOrdersQueryResponse

		err = rows.Scan(
			&response.OrderID,
			&response.ClientID,
			&response.TotalPrice,
			&response.OrderDate,
			&response.Status,
			&response.Ref,
			&response.FullName,
			&response.Address,
		)
		if err != nil {
			return nil, err
		}

		orders = append(orders, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
