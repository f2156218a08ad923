package commands

import (
	"context"

	"pocketmart/internal/core/domain/model/account"
)

// RegisterClientResult carries the identifier generated by the store
// during registration.
type RegisterClientResult struct {
	UserID int64
}

// RegisterClientCommandHandler handles client registration. The credential
// row and the client_details row are inserted in one transaction, mirroring
// the onboarding workflow for delivery personnel.
type RegisterClientCommandHandler struct {
	uowFactory RegistrationUoWFactory
}

// NewRegisterClientCommandHandler creates a handler for client
// registration.
func NewRegisterClientCommandHandler(uowFactory RegistrationUoWFactory) RegisterClientCommandHandler {
	return RegisterClientCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the registration command and returns the generated user
// identifier. On any failure both inserts roll back.
func (h RegisterClientCommandHandler) Handle(
	ctx context.Context,
	command RegisterClientCommand,
) (RegisterClientResult, error) {
	if err := command.Validate(); err != nil {
		return RegisterClientResult{}, err
	}

	user, err := account.NewUser(command.Username(), command.Password())
	if err != nil {
		return RegisterClientResult{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return RegisterClientResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.UserRepository().Add(ctx, user); err != nil {
		return RegisterClientResult{}, err
	}

	details, err := account.NewClientDetails(user.ID(), command.FullName(), command.Address())
	if err != nil {
		return RegisterClientResult{}, err
	}

	if err = uow.ClientRepository().Add(ctx, details); err != nil {
		return RegisterClientResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return RegisterClientResult{}, err
	}

	return RegisterClientResult{UserID: user.ID()}, nil
}
