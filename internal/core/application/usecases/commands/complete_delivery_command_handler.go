package commands

import (
	"context"
)

// CompleteDeliveryCommandHandler handles delivery completion: the order
// moves On Way -> Delivered and its delivery record Assigned -> Completed,
// atomically.
type CompleteDeliveryCommandHandler struct {
	uowFactory CompletionUoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for delivery
// completion.
func NewCompleteDeliveryCommandHandler(uowFactory CompletionUoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command. An order that is not on its way
// or has no delivery record fails the transaction with no side effects.
func (h CompleteDeliveryCommandHandler) Handle(ctx context.Context, command CompleteDeliveryCommand) error {
	if err := command.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	deliveryRepo := uow.DeliveryRepository()

	orderAggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return err
	}

	record, err := deliveryRepo.GetByOrderID(ctx, command.OrderID())
	if err != nil {
		return err
	}

	if err = orderAggregate.Complete(); err != nil {
		return err
	}
	if err = record.Complete(); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, record); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
