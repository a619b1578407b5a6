package commands

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/pkg/guard"
)

var ErrAddCargoBayCommandIsNotConstructed = errors.New(
	"AddCargoBayCommand must be created via NewAddCargoBayCommand constructor",
)

// AddCargoBayCommand represents a request to add a new temperature-controlled
// cargo bay to an existing transporter. This command encapsulates the business
// operation of expanding the range of medicines a transporter can carry.
//
// Example:
//
//	coldRange, _ := kernel.NewTemperatureRange(2, 8)
//	cmd, err := NewAddCargoBayCommand(transporterID, "Cold chamber", coldRange)
//	if err != nil {
//	    return fmt.Errorf("invalid command: %w", err)
//	}
//
//	handler := NewAddCargoBayCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to add cargo bay: %w", err)
//	}
type AddCargoBayCommand struct { //nolint:recvcheck //using for validation
	transporterID    kernel.UUID
	name             string
	temperatureRange kernel.TemperatureRange

	guard guard.ConstructorGuard
}

// NewAddCargoBayCommand creates a new command to add a cargo bay to a transporter.
// Validates that the transporter ID is valid, name is not empty, and the
// temperature range is properly constructed.
func NewAddCargoBayCommand(
	transporterID kernel.UUID,
	name string,
	temperatureRange kernel.TemperatureRange,
) (AddCargoBayCommand, error) {
	command := AddCargoBayCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTransporterID(transporterID),
		command.setName(name),
		command.setTemperatureRange(temperatureRange),
	); err != nil {
		return AddCargoBayCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddCargoBayCommandIsNotConstructed if validation fails.
func (c AddCargoBayCommand) Validate() error {
	return c.guard.Validate(ErrAddCargoBayCommandIsNotConstructed)
}

// TransporterID returns the ID of the transporter to add the cargo bay to.
func (c AddCargoBayCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Name returns the name of the cargo bay to be added.
func (c AddCargoBayCommand) Name() string {
	return c.name
}

// TemperatureRange returns the range the new bay will maintain.
func (c AddCargoBayCommand) TemperatureRange() kernel.TemperatureRange {
	return c.temperatureRange
}

func (c *AddCargoBayCommand) setTransporterID(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	c.transporterID = transporterID
	return nil
}

func (c *AddCargoBayCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *AddCargoBayCommand) setTemperatureRange(temperatureRange kernel.TemperatureRange) error {
	if err := temperatureRange.Validate(); err != nil {
		return err
	}

	c.temperatureRange = temperatureRange
	return nil
}
