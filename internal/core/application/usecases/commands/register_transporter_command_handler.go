package commands

import (
	"context"

	"medship/internal/core/domain/model/transporter"
)

// RegisterTransporterCommandHandler handles the business logic for transporter
// registration. Creates and persists new transporter entities with their
// default ambient cargo bay.
//
// Example:
//
//	handler := NewRegisterTransporterCommandHandler(uowFactory)
//	cmd, _ := NewRegisterTransporterCommand("Express Van", 4)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("transporter registration failed: %w", err)
//	}
type RegisterTransporterCommandHandler struct {
	uowFactory TransporterUoWFactory
}

// NewRegisterTransporterCommandHandler creates a handler for transporter registration.
// Requires a TransporterUoWFactory for transactional persistence operations.
func NewRegisterTransporterCommandHandler(uowFactory TransporterUoWFactory) RegisterTransporterCommandHandler {
	return RegisterTransporterCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transporter registration command.
// Creates a new transporter entity and persists it within a transaction.
// Automatically rolls back on any error to prevent partial data.
func (h *RegisterTransporterCommandHandler) Handle(ctx context.Context, cmd RegisterTransporterCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	transporterRepo := uow.TransporterRepository()
	transporterEntity, err := transporter.NewTransporter(cmd.TransporterID(), cmd.Name(), cmd.Speed())
	if err != nil {
		return err
	}

	if err = transporterRepo.Add(ctx, transporterEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
