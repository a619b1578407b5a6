package commands

import (
	"context"
)

// AddCargoBayCommandHandler handles the business logic for adding cargo bays
// to transporters. Uses transactional operations to ensure data consistency
// when modifying transporter entities.
//
// Example:
//
//	handler := NewAddCargoBayCommandHandler(uowFactory)
//	coldRange, _ := kernel.NewTemperatureRange(-80, -60)
//	cmd, _ := NewAddCargoBayCommand(transporterID, "Deep freezer", coldRange)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to add cargo bay: %v", err)
//	}
type AddCargoBayCommandHandler struct {
	uowFactory TransporterUoWFactory
}

// NewAddCargoBayCommandHandler creates a new handler for adding cargo bays to transporters.
// Requires a TransporterUoWFactory for transactional operations.
func NewAddCargoBayCommandHandler(uowFactory TransporterUoWFactory) AddCargoBayCommandHandler {
	return AddCargoBayCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the AddCargoBayCommand within a transaction.
// Retrieves the transporter, adds the new cargo bay, and persists the changes.
// Automatically rolls back on any error to maintain data consistency.
func (h *AddCargoBayCommandHandler) Handle(ctx context.Context, cmd AddCargoBayCommand) error {
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
	transporterEntity, err := transporterRepo.Get(ctx, cmd.TransporterID())
	if err != nil {
		return err
	}

	if err = transporterEntity.AddCargoBay(cmd.Name(), cmd.TemperatureRange()); err != nil {
		return err
	}

	if err = transporterRepo.Update(ctx, transporterEntity); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
