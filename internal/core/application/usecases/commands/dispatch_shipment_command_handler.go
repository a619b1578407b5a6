package commands

import (
	"context"
	"errors"

	"medship/internal/core/domain/services"
	"medship/internal/pkg/errs"
)

var (
	ErrNoAvailableTransportersFound = errors.New("no available transporters found")
	ErrNoShipmentFound              = errors.New("no shipment found")
)

// DispatchShipmentCommandHandler orchestrates the shipment dispatch process.
// Finds pending shipments and matches them with available transporters using
// the ShipmentDispatcher domain service. Ensures transactional consistency
// when updating both shipment and transporter states.
//
// Example:
//
//	handler := NewDispatchShipmentCommandHandler(uowFactory)
//	cmd := NewDispatchShipmentCommand()
//	err := handler.Handle(ctx, cmd)
//	switch {
//	case errors.Is(err, ErrNoShipmentFound):
//	    log.Println("No pending shipments")
//	case errors.Is(err, ErrNoAvailableTransportersFound):
//	    log.Println("All transporters are busy")
//	case err != nil:
//	    log.Printf("Dispatch failed: %v", err)
//	default:
//	    log.Println("Transporter assigned successfully")
//	}
type DispatchShipmentCommandHandler struct {
	uowFactory UoWFactory
}

// NewDispatchShipmentCommandHandler creates a handler for shipment dispatch operations.
// Requires a UoWFactory for coordinating transactional updates across repositories.
func NewDispatchShipmentCommandHandler(uowFactory UoWFactory) DispatchShipmentCommandHandler {
	return DispatchShipmentCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the shipment dispatch command.
// Retrieves the first pending shipment, finds available transporters, and uses
// ShipmentDispatcher to select the best match. Updates both entities within a
// single transaction. Returns specific errors for no shipments (ErrNoShipmentFound)
// or no transporters (ErrNoAvailableTransportersFound).
func (h DispatchShipmentCommandHandler) Handle(ctx context.Context, command DispatchShipmentCommand) error {
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

	transporterRepo := uow.TransporterRepository()
	shipmentsRepo := uow.ShipmentRepository()

	aggregate, err := shipmentsRepo.GetFirstInCreatedStatus(ctx)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return ErrNoShipmentFound
	}
	if err != nil {
		return err
	}

	transporters, err := transporterRepo.GetAllAvailable(ctx)
	if err != nil {
		return err
	}
	if len(transporters) == 0 {
		return ErrNoAvailableTransportersFound
	}

	assignedTransporter, err := services.NewShipmentDispatcher().Dispatch(aggregate, transporters)
	if err != nil {
		return err
	}

	if err = shipmentsRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	if err = transporterRepo.Update(ctx, assignedTransporter); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	return nil
}
