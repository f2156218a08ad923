package commands_test

import (
	"context"
	"errors"
	"testing"

	"pocketmart/internal/core/application/usecases/commands"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestResetDailyCountersCommandHandler_Handle_Success(t *testing.T) {
	personnelRepo := &MockPersonnelRepository{}
	uow := &MockUoW{}
	factory := &MockPersonnelUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("PersonnelRepository").Return(personnelRepo)
	personnelRepo.On("ResetAllDailyCounts", mock.Anything).Return(nil)

	mock.InOrder(
		uow.On("Begin", mock.Anything).Return(nil),
		uow.On("Commit", mock.Anything).Return(nil),
		uow.On("Rollback", mock.Anything).Return(nil),
	)

	handler := commands.NewResetDailyCountersCommandHandler(factory)

	err := handler.Handle(context.Background(), commands.NewResetDailyCountersCommand())

	require.NoError(t, err)
	uow.AssertExpectations(t)
	personnelRepo.AssertExpectations(t)
}

func TestResetDailyCountersCommandHandler_Handle_ResetFails(t *testing.T) {
	resetErr := errors.New("update failed")

	personnelRepo := &MockPersonnelRepository{}
	uow := &MockUoW{}
	factory := &MockPersonnelUoWFactory{}

	factory.On("Create").Return(uow)
	uow.On("PersonnelRepository").Return(personnelRepo)
	uow.On("Begin", mock.Anything).Return(nil)
	uow.On("Rollback", mock.Anything).Return(nil)
	personnelRepo.On("ResetAllDailyCounts", mock.Anything).Return(resetErr)

	handler := commands.NewResetDailyCountersCommandHandler(factory)

	err := handler.Handle(context.Background(), commands.NewResetDailyCountersCommand())

	assert.ErrorIs(t, err, resetErr)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertCalled(t, "Rollback", mock.Anything)
}

func TestResetDailyCountersCommandHandler_Handle_InvalidCommand(t *testing.T) {
	factory := &MockPersonnelUoWFactory{}
	handler := commands.NewResetDailyCountersCommandHandler(factory)

	err := handler.Handle(context.Background(), commands.ResetDailyCountersCommand{})

	assert.ErrorIs(t, err, commands.ErrResetDailyCountersCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
