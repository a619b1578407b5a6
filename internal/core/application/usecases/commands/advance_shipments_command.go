package commands

import (
	"errors"

	"medship/internal/pkg/guard"
)

var ErrAdvanceShipmentsCommandIsNotConstructed = errors.New(
	"AdvanceShipmentsCommand must be created via NewAdvanceShipmentsCommand constructor",
)

// AdvanceShipmentsCommand triggers a transit step for all dispatched shipments.
// Each shipment moves toward its destination by its transporter's speed; arrived
// shipments are delivered and their cargo bays freed.
//
// Example:
//
//	cmd := NewAdvanceShipmentsCommand()
//	handler := NewAdvanceShipmentsCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Transit step failed: %v", err)
//	}
type AdvanceShipmentsCommand struct {
	guard guard.ConstructorGuard
}

// NewAdvanceShipmentsCommand creates a new command to advance all dispatched shipments.
// This is a parameterless command typically issued by a scheduler.
func NewAdvanceShipmentsCommand() AdvanceShipmentsCommand {
	return AdvanceShipmentsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrAdvanceShipmentsCommandIsNotConstructed if validation fails.
func (c *AdvanceShipmentsCommand) Validate() error {
	return c.guard.Validate(
		ErrAdvanceShipmentsCommandIsNotConstructed,
	)
}
