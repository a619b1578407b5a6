package commands

import (
	"context"

	"medship/internal/core/domain/model/medicine"
	"medship/internal/core/domain/model/shipment"
)

// CreateShipmentCommandHandler handles the business logic for shipment creation.
// Resolves the medicine variant from the commanded kind, snapshots its
// temperature envelope into a new shipment, and persists it in "created" status.
//
// Example:
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	cmd, _ := NewCreateShipmentCommand(kernel.NewUUID(), medicine.KindVaccine, "mRNA-1273", 20)
//
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment creation failed: %w", err)
//	}
//	// Shipment is now created and ready for dispatch
type CreateShipmentCommandHandler struct {
	uowFactory ShipmentUoWFactory
}

// NewCreateShipmentCommandHandler creates a handler for shipment creation operations.
// Requires a ShipmentUoWFactory for transactional persistence.
func NewCreateShipmentCommandHandler(uowFactory ShipmentUoWFactory) CreateShipmentCommandHandler {
	return CreateShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment creation command.
// Builds the medicine variant, creates the shipment in "created" status, and
// uses a transaction to ensure it is properly persisted or rolled back on error.
func (h *CreateShipmentCommandHandler) Handle(ctx context.Context, cmd CreateShipmentCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	med, err := medicine.New(cmd.MedicineKind(), cmd.MedicineName())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	shipmentRepo := uow.ShipmentRepository()
	aggregate, err := shipment.NewShipment(cmd.ShipmentID(), med, cmd.Distance())
	if err != nil {
		return err
	}

	if err = shipmentRepo.Add(ctx, aggregate); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
