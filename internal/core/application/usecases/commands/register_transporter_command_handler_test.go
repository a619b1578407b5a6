package commands_test

import (
	"errors"
	"testing"

	"medship/internal/core/application/usecases/commands"
	"medship/internal/core/domain/model/transporter"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestNewRegisterTransporterCommandHandler(t *testing.T) {
	// Arrange
	mockFactory := new(MockTransporterUoWFactory)

	// Act
	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Assert
	assert.NotNil(t, handler)
}

func TestRegisterTransporterCommandHandler_Handle_Success(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterTransporterCommand("Express Van", 4)
	require.NoError(t, err)

	mockRepo := new(MockTransporterRepository)
	mockUoW := new(MockTransporterUoW)
	mockFactory := new(MockTransporterUoWFactory)

	// Set up expectations in order
	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TransporterRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*transporter.Transporter")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(nil).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.NoError(t, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)

	// Verify the persisted transporter carries the command data and the default bay
	addCall := mockRepo.Calls[0]
	added := addCall.Arguments[1].(*transporter.Transporter)
	assert.Equal(t, cmd.TransporterID(), added.ID())
	assert.Equal(t, "Express Van", added.Name())
	assert.Equal(t, 4, added.Speed())
	assert.Len(t, added.CargoBays(), 1)
}

func TestRegisterTransporterCommandHandler_Handle_InvalidCommand(t *testing.T) {
	// Arrange
	ctx := t.Context()
	var invalidCmd commands.RegisterTransporterCommand // zero value command

	mockFactory := new(MockTransporterUoWFactory)
	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Act
	err := handler.Handle(ctx, invalidCmd)

	// Assert
	require.Error(t, err)
	require.ErrorIs(t, err, commands.ErrRegisterTransporterCommandIsNotConstructed)
	mockFactory.AssertExpectations(t) // No calls should be made to factory
}

func TestRegisterTransporterCommandHandler_Handle_BeginTransactionError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterTransporterCommand("Express Van", 4)
	require.NoError(t, err)

	expectedError := errors.New("begin transaction failed")
	mockUoW := new(MockTransporterUoW)
	mockFactory := new(MockTransporterUoWFactory)

	mock.InOrder(
		mockFactory.On("Create").Return(mockUoW).Once(),
		mockUoW.On("Begin", ctx).Return(expectedError).Once(),
	)

	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
}

func TestRegisterTransporterCommandHandler_Handle_AddError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterTransporterCommand("Express Van", 4)
	require.NoError(t, err)

	expectedError := errors.New("add failed")
	mockRepo := new(MockTransporterRepository)
	mockUoW := new(MockTransporterUoW)
	mockFactory := new(MockTransporterUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TransporterRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*transporter.Transporter")).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}

func TestRegisterTransporterCommandHandler_Handle_CommitError(t *testing.T) {
	// Arrange
	ctx := t.Context()
	cmd, err := commands.NewRegisterTransporterCommand("Express Van", 4)
	require.NoError(t, err)

	expectedError := errors.New("commit failed")
	mockRepo := new(MockTransporterRepository)
	mockUoW := new(MockTransporterUoW)
	mockFactory := new(MockTransporterUoWFactory)

	mock.InOrder(
		mockUoW.On("Begin", ctx).Return(nil).Once(),
		mockUoW.On("TransporterRepository").Return(mockRepo).Once(),
		mockRepo.On("Add", ctx, mock.AnythingOfType("*transporter.Transporter")).Return(nil).Once(),
		mockUoW.On("Commit", ctx).Return(expectedError).Once(),
		mockUoW.On("Rollback", ctx).Return(nil).Once(),
	)
	mockFactory.On("Create").Return(mockUoW).Once()

	handler := commands.NewRegisterTransporterCommandHandler(mockFactory)

	// Act
	err = handler.Handle(ctx, cmd)

	// Assert
	require.Error(t, err)
	assert.Equal(t, expectedError, err)
	mockFactory.AssertExpectations(t)
	mockUoW.AssertExpectations(t)
	mockRepo.AssertExpectations(t)
}
