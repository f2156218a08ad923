package commands

import (
	"context"
)

// ResetDailyCountersCommandHandler zeroes every delivery person's daily
// assignment counter. The whole reset runs as one transaction.
type ResetDailyCountersCommandHandler struct {
	uowFactory PersonnelUoWFactory
}

// NewResetDailyCountersCommandHandler creates a handler for the daily
// counter reset.
func NewResetDailyCountersCommandHandler(uowFactory PersonnelUoWFactory) ResetDailyCountersCommandHandler {
	return ResetDailyCountersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the reset command.
func (h ResetDailyCountersCommandHandler) Handle(ctx context.Context, command ResetDailyCountersCommand) error {
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

	if err := uow.PersonnelRepository().ResetAllDailyCounts(ctx); err != nil {
		return err
	}

	if err := uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
