package commands

import (
	"errors"

	"medship/internal/pkg/guard"
)

var ErrDispatchShipmentCommandIsNotConstructed = errors.New(
	"DispatchShipmentCommand must be created via NewDispatchShipmentCommand constructor",
)

// DispatchShipmentCommand triggers the assignment of an available transporter
// to a pending shipment. This command represents the business operation of
// matching fleet capacity with waiting consignments. It finds the first
// shipment in "created" status and assigns the fastest suitable transporter.
//
// Example:
//
//	cmd := NewDispatchShipmentCommand()
//	handler := NewDispatchShipmentCommandHandler(uowFactory)
//	err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("No shipments to dispatch or no available transporters: %v", err)
//	}
type DispatchShipmentCommand struct {
	guard guard.ConstructorGuard
}

// NewDispatchShipmentCommand creates a new command to trigger shipment dispatch.
// This is a parameterless command that initiates the transporter-shipment matching process.
func NewDispatchShipmentCommand() DispatchShipmentCommand {
	return DispatchShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrDispatchShipmentCommandIsNotConstructed if validation fails.
func (c *DispatchShipmentCommand) Validate() error {
	return c.guard.Validate(
		ErrDispatchShipmentCommandIsNotConstructed,
	)
}
