// Package http exposes the delivery API over REST. Handlers translate
// JSON payloads into commands and queries and map their results back to
// the wire format.
package http

import (
	"net/http"
	"time"

	"pocketmart/internal/core/application/usecases/commands"
	"pocketmart/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const dateLayout = "2006-01-02"

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	assignDeliveryHandler   commands.AssignDeliveryCommandHandler
	createPersonnelHandler  commands.CreatePersonnelCommandHandler
	registerClientHandler   commands.RegisterClientCommandHandler
	createOrderHandler      commands.CreateOrderCommandHandler
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler

	getAllOrdersHandler      queries.GetAllOrdersQueryHandler
	getAllDeliveryMenHandler queries.GetAllDeliveryMenQueryHandler
}

// NewServer creates an HTTP server wired to the given command and query
// handlers.
func NewServer(
	assignDeliveryHandler commands.AssignDeliveryCommandHandler,
	createPersonnelHandler commands.CreatePersonnelCommandHandler,
	registerClientHandler commands.RegisterClientCommandHandler,
	createOrderHandler commands.CreateOrderCommandHandler,
	completeDeliveryHandler commands.CompleteDeliveryCommandHandler,
	getAllOrdersHandler queries.GetAllOrdersQueryHandler,
	getAllDeliveryMenHandler queries.GetAllDeliveryMenQueryHandler,
) *Server {
	return &Server{
		assignDeliveryHandler:    assignDeliveryHandler,
		createPersonnelHandler:   createPersonnelHandler,
		registerClientHandler:    registerClientHandler,
		createOrderHandler:       createOrderHandler,
		completeDeliveryHandler:  completeDeliveryHandler,
		getAllOrdersHandler:      getAllOrdersHandler,
		getAllDeliveryMenHandler: getAllDeliveryMenHandler,
	}
}

// RegisterRoutes mounts every API route on the given echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")

	api.GET("/orders", s.GetOrders)
	api.GET("/delivery-men", s.GetDeliveryMen)
	api.POST("/create-personnel", s.CreatePersonnel)
	api.POST("/assign-delivery", s.AssignDelivery)
	api.POST("/register-client", s.RegisterClient)
	api.POST("/orders", s.CreateOrder)
	api.POST("/complete-delivery", s.CompleteDelivery)
}

type errorResponse struct {
	Error string `json:"error"`
}

// internalError is the generic 500 body. Store and hash failures are not
// detailed to callers.
func internalError(ctx echo.Context) error {
	return ctx.JSON(http.StatusInternalServerError, errorResponse{
		Error: "Internal Server Error",
	})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{Error: message})
}

type orderResponse struct {
	OrderID    int64   `json:"orderid"`
	UserID     int64   `json:"userid"`
	TotalPrice float64 `json:"totalprice"`
	OrderDate  string  `json:"orderdate"`
	Status     string  `json:"status"`
	Ref        string  `json:"ref"`
	FullName   string  `json:"full_name"`
	Address    string  `json:"address"`
}

// GetOrders handles GET /api/orders. Returns every order joined with the
// placing client's registered details.
func (s *Server) GetOrders(ctx echo.Context) error {
	query := queries.NewGetAllOrdersQuery()

	orders, err := s.getAllOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]orderResponse, len(orders))
	for i, o := range orders {
		response[i] = orderResponse{
			OrderID:    o.OrderID,
			UserID:     o.ClientID,
			TotalPrice: o.TotalPrice,
			OrderDate:  o.OrderDate.Format(time.RFC3339),
			Status:     o.Status,
			Ref:        o.Ref,
			FullName:   o.FullName,
			Address:    o.Address,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type deliveryPersonResponse struct {
	ID               int64  `json:"id"`
	UserID           int64  `json:"user_id"`
	DateStarted      string `json:"date_started"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Age              int    `json:"age"`
	ContactNumber    string `json:"contact_number"`
	LicenseNumber    string `json:"license_number"`
	CarPlateAssigned string `json:"car_plate_assigned"`
	OrderCountToday  int    `json:"order_count_today"`
}

// GetDeliveryMen handles GET /api/delivery-men. Returns the full roster.
func (s *Server) GetDeliveryMen(ctx echo.Context) error {
	query := queries.NewGetAllDeliveryMenQuery()

	roster, err := s.getAllDeliveryMenHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return internalError(ctx)
	}

	response := make([]deliveryPersonResponse, len(roster))
	for i, p := range roster {
		response[i] = deliveryPersonResponse{
			ID:               p.ID,
			UserID:           p.UserID,
			DateStarted:      p.DateStarted.Format(dateLayout),
			Name:             p.Name,
			Address:          p.Address,
			Age:              p.Age,
			ContactNumber:    p.ContactNumber,
			LicenseNumber:    p.LicenseNumber,
			CarPlateAssigned: p.CarPlateAssigned,
			OrderCountToday:  p.OrderCountToday,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

type createPersonnelRequest struct {
	DateStarted      string `json:"date_started"`
	Name             string `json:"name"`
	Address          string `json:"address"`
	Age              int    `json:"age"`
	ContactNumber    string `json:"contact_number"`
	LicenseNumber    string `json:"license_number"`
	CarPlateAssigned string `json:"car_plate_assigned"`
	Username         string `json:"username"`
	Password         string `json:"password"`
}

// CreatePersonnel handles POST /api/create-personnel. Onboards a delivery
// person together with their credential record in one transaction.
func (s *Server) CreatePersonnel(ctx echo.Context) error {
	var request createPersonnelRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	dateStarted, err := time.Parse(dateLayout, request.DateStarted)
	if err != nil {
		return badRequest(ctx, "date_started must be formatted YYYY-MM-DD")
	}

	cmd, err := commands.NewCreatePersonnelCommand(
		dateStarted,
		request.Name,
		request.Address,
		request.Age,
		request.ContactNumber,
		request.LicenseNumber,
		request.CarPlateAssigned,
		request.Username,
		request.Password,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createPersonnelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message":          "Delivery personnel created successfully",
		"userId":           result.UserID,
		"deliveryPersonId": result.DeliveryPersonID,
	})
}

type assignDeliveryRequest struct {
	OrderID          int64 `json:"order_id"`
	DeliveryPersonID int64 `json:"delivery_person_id"`
	ClientID         int64 `json:"client_id"`
}

type deliveryResponse struct {
	ID               int64  `json:"id"`
	OrderID          int64  `json:"order_id"`
	DeliveryPersonID int64  `json:"delivery_person_id"`
	ClientID         int64  `json:"client_id"`
	Status           string `json:"status"`
}

// AssignDelivery handles POST /api/assign-delivery. Runs the transactional
// assignment workflow and returns the created delivery row.
func (s *Server) AssignDelivery(ctx echo.Context) error {
	var request assignDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewAssignDeliveryCommand(
		request.OrderID,
		request.DeliveryPersonID,
		request.ClientID,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	record, err := s.assignDeliveryHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusCreated, deliveryResponse{
		ID:               record.ID(),
		OrderID:          record.OrderID(),
		DeliveryPersonID: record.DeliveryPersonID(),
		ClientID:         record.ClientID(),
		Status:           record.Status().String(),
	})
}

type registerClientRequest struct {
	FullName string `json:"full_name"`
	Address  string `json:"address"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// RegisterClient handles POST /api/register-client. Creates the credential
// record and the client profile in one transaction.
func (s *Server) RegisterClient(ctx echo.Context) error {
	var request registerClientRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRegisterClientCommand(
		request.FullName,
		request.Address,
		request.Username,
		request.Password,
	)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.registerClientHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"message": "Client registered successfully",
		"userId":  result.UserID,
	})
}

type createOrderRequest struct {
	UserID     int64   `json:"userid"`
	TotalPrice float64 `json:"totalprice"`
}

// CreateOrder handles POST /api/orders. Places a new order in Placed
// status with a generated public reference.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var request createOrderRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCreateOrderCommand(request.UserID, request.TotalPrice)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	result, err := s.createOrderHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusCreated, echo.Map{
		"orderId": result.OrderID,
		"ref":     result.Ref,
	})
}

type completeDeliveryRequest struct {
	OrderID int64 `json:"order_id"`
}

// CompleteDelivery handles POST /api/complete-delivery. Marks the order
// Delivered and its delivery record Completed.
func (s *Server) CompleteDelivery(ctx echo.Context) error {
	var request completeDeliveryRequest
	if err := ctx.Bind(&request); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewCompleteDeliveryCommand(request.OrderID)
	if err != nil {
		return badRequest(ctx, err.Error())
	}

	if err := s.completeDeliveryHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return internalError(ctx)
	}

	return ctx.JSON(http.StatusOK, echo.Map{
		"message": "Delivery completed successfully",
	})
}
