package commands

import (
	"context"

	"pocketmart/internal/core/domain/model/delivery"
)

// AssignDeliveryCommandHandler orchestrates the order-assignment workflow.
// Within a single transaction it creates the delivery record, transitions
// the order to "On Way", and increments the delivery person's daily
// counter. Any failure rolls back all three writes, so no partial state is
// ever visible.
//
// The delivery record is inserted first so its store-generated fields can
// be returned to the caller; the order and personnel updates follow before
// commit.
type AssignDeliveryCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewAssignDeliveryCommandHandler creates a handler for assignment
// operations. Requires an AssignmentUoWFactory for coordinating the
// transactional updates across repositories.
func NewAssignDeliveryCommandHandler(uowFactory AssignmentUoWFactory) AssignDeliveryCommandHandler {
	return AssignDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment command and returns the created delivery
// record. Missing orders or personnel surface as errs.ErrObjectNotFound;
// an order that is already on its way fails the status transition and the
// whole transaction rolls back.
func (h AssignDeliveryCommandHandler) Handle(
	ctx context.Context,
	command AssignDeliveryCommand,
) (*delivery.Delivery, error) {
	if err := command.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	personnelRepo := uow.PersonnelRepository()
	deliveryRepo := uow.DeliveryRepository()

	orderAggregate, err := orderRepo.Get(ctx, command.OrderID())
	if err != nil {
		return nil, err
	}

	person, err := personnelRepo.Get(ctx, command.DeliveryPersonID())
	if err != nil {
		return nil, err
	}

	if err = orderAggregate.Assign(); err != nil {
		return nil, err
	}
	person.RecordAssignment()

	record, err := delivery.NewDelivery(
		command.OrderID(),
		command.DeliveryPersonID(),
		command.ClientID(),
	)
	if err != nil {
		return nil, err
	}

	if err = deliveryRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = orderRepo.Update(ctx, orderAggregate); err != nil {
		return nil, err
	}

	if err = personnelRepo.Update(ctx, person); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
