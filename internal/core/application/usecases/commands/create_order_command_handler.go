package commands

import (
	"context"
	"time"

	"pocketmart/internal/core/domain/model/order"
)

// CreateOrderResult carries the identifier and reference of the placed
// order.
type CreateOrderResult struct {
	OrderID int64
	Ref     string
}

// CreateOrderCommandHandler handles order placement. Orders start in
// Placed status with the order date set at execution time.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewCreateOrderCommandHandler creates a handler for order placement.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the placement command and returns the generated order
// identifier together with its public reference.
func (h CreateOrderCommandHandler) Handle(
	ctx context.Context,
	command CreateOrderCommand,
) (CreateOrderResult, error) {
	if err := command.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	orderAggregate, err := order.NewOrder(
		command.ClientUserID(),
		command.TotalPrice(),
		time.Now().UTC(),
		command.Ref(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.OrderRepository().Add(ctx, orderAggregate); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{
		OrderID: orderAggregate.ID(),
		Ref:     orderAggregate.Ref(),
	}, nil
}
