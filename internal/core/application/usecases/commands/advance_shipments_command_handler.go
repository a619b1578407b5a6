package commands

import (
	"context"

	"medship/internal/core/domain/model/shipment"
	"medship/internal/core/domain/model/transporter"
)

// AdvanceShipmentsCommandHandler orchestrates the transit step for all
// dispatched shipments. Processes each shipment, advances it by its
// transporter's speed, and completes deliveries when shipments arrive.
//
// Example:
//
//	handler := NewAdvanceShipmentsCommandHandler(uowFactory)
//	cmd := NewAdvanceShipmentsCommand()
//
//	// Execute a transit step
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("shipment transit failed: %w", err)
//	}
//
//	// This would typically be called periodically by a scheduler
type AdvanceShipmentsCommandHandler struct {
	uowFactory UoWFactory
}

// NewAdvanceShipmentsCommandHandler creates a handler for shipment transit operations.
// Requires a UoWFactory for coordinating updates across shipment and transporter repositories.
func NewAdvanceShipmentsCommandHandler(uowFactory UoWFactory) AdvanceShipmentsCommandHandler {
	return AdvanceShipmentsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit step command.
// Retrieves all shipments in "dispatched" status, advances each one by its
// transporter's speed, and delivers shipments that reach their destination,
// freeing the cargo bay. All updates occur within a single transaction.
func (h *AdvanceShipmentsCommandHandler) Handle(ctx context.Context, cmd AdvanceShipmentsCommand) error {
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
	shipmentsRepo := uow.ShipmentRepository()

	shipments, err := shipmentsRepo.GetAllInDispatchedStatus(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range shipments {
		assignedTransporter, transporterErr := transporterRepo.Get(ctx, *aggregate.Transporter())
		if transporterErr != nil {
			return transporterErr
		}

		if err = h.advanceShipment(aggregate, assignedTransporter); err != nil {
			return err
		}

		if err = shipmentsRepo.Update(ctx, aggregate); err != nil {
			return err
		}

		if err = transporterRepo.Update(ctx, assignedTransporter); err != nil {
			return err
		}
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}

// advanceShipment handles the transit logic for a single shipment-transporter pair.
// Advances the shipment by the transporter's speed and completes both shipment
// and transporter states when the destination is reached.
func (h *AdvanceShipmentsCommandHandler) advanceShipment(
	aggregate *shipment.Shipment,
	assignedTransporter *transporter.Transporter,
) error {
	if err := aggregate.Advance(assignedTransporter.Speed()); err != nil {
		return err
	}

	if !aggregate.IsArrived() {
		return nil
	}

	if err := aggregate.Deliver(); err != nil {
		return err
	}

	if err := assignedTransporter.UnloadShipment(aggregate.ID()); err != nil {
		return err
	}

	return nil
}
