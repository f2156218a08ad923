package commands

import (
	"context"

	"pocketmart/internal/core/domain/model/account"
	"pocketmart/internal/core/domain/model/personnel"
)

// CreatePersonnelResult carries the identifiers generated by the store
// during onboarding.
type CreatePersonnelResult struct {
	UserID           int64
	DeliveryPersonID int64
}

// CreatePersonnelCommandHandler handles delivery-personnel onboarding.
// The credential row and the personnel row are inserted in one
// transaction: a delivery person never exists without its user.
//
// Password hashing is the slow part of onboarding and does not need the
// transaction, so it happens before Begin.
type CreatePersonnelCommandHandler struct {
	uowFactory OnboardingUoWFactory
}

// NewCreatePersonnelCommandHandler creates a handler for onboarding
// operations.
func NewCreatePersonnelCommandHandler(uowFactory OnboardingUoWFactory) CreatePersonnelCommandHandler {
	return CreatePersonnelCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the onboarding command and returns the generated user
// and delivery-person identifiers. On any failure both inserts roll back.
func (h CreatePersonnelCommandHandler) Handle(
	ctx context.Context,
	command CreatePersonnelCommand,
) (CreatePersonnelResult, error) {
	if err := command.Validate(); err != nil {
		return CreatePersonnelResult{}, err
	}

	user, err := account.NewUser(command.Username(), command.Password())
	if err != nil {
		return CreatePersonnelResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return CreatePersonnelResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return CreatePersonnelResult{}, err
	}

	person, err := personnel.NewDeliveryPerson(
		user.ID(),
		command.DateStarted(),
		command.Name(),
		command.Address(),
		command.Age(),
		command.ContactNumber(),
		command.LicenseNumber(),
		command.CarPlateAssigned(),
	)
	if err != nil {
		return CreatePersonnelResult{}, err
	}

	if err = uow.PersonnelRepository().Add(ctx, person); err != nil {
		return CreatePersonnelResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreatePersonnelResult{}, err
	}

	return CreatePersonnelResult{
		UserID:           user.ID(),
		DeliveryPersonID: person.ID(),
	}, nil
}
