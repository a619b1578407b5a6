package commands

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/pkg/guard"
)

var (
	ErrRegisterTransporterCommandIsNotConstructed = errors.New(
		"RegisterTransporterCommand must be created via NewRegisterTransporterCommand constructor",
	)
	ErrNameIsRequired = errors.New("name is required")
	ErrSpeedIsInvalid = errors.New("speed must be greater than 0")
)

// RegisterTransporterCommand represents a request to register a new transporter
// in the shipping fleet. Encapsulates all data needed to create a transporter
// entity with its default ambient cargo bay.
//
// Example:
//
//	cmd, err := NewRegisterTransporterCommand("Reefer Truck 7", 2)
//	if err != nil {
//	    return fmt.Errorf("invalid transporter data: %w", err)
//	}
//
//	handler := NewRegisterTransporterCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to register transporter: %w", err)
//	}
//	fmt.Printf("Registered transporter with ID: %s", cmd.TransporterID())
type RegisterTransporterCommand struct { //nolint:recvcheck //using for validation
	transporterID kernel.UUID
	name          string
	speed         int

	guard guard.ConstructorGuard
}

// NewRegisterTransporterCommand creates a command to register a new transporter.
// Automatically generates a unique ID for the transporter.
// Validates that name is not empty and speed is positive.
func NewRegisterTransporterCommand(name string, speed int) (RegisterTransporterCommand, error) {
	command := RegisterTransporterCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setTransporterID(kernel.NewUUID()),
		command.setName(name),
		command.setSpeed(speed),
	); err != nil {
		return RegisterTransporterCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRegisterTransporterCommandIsNotConstructed if validation fails.
func (c RegisterTransporterCommand) Validate() error {
	return c.guard.Validate(ErrRegisterTransporterCommandIsNotConstructed)
}

// TransporterID returns the transporter ID from the command.
func (c RegisterTransporterCommand) TransporterID() kernel.UUID {
	return c.transporterID
}

// Name returns the transporter name from the command.
func (c RegisterTransporterCommand) Name() string {
	return c.name
}

// Speed returns the transporter speed from the command.
func (c RegisterTransporterCommand) Speed() int {
	return c.speed
}

func (c *RegisterTransporterCommand) setTransporterID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.transporterID = id
	return nil
}

func (c *RegisterTransporterCommand) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	c.name = name
	return nil
}

func (c *RegisterTransporterCommand) setSpeed(speed int) error {
	if speed <= 0 {
		return ErrSpeedIsInvalid
	}

	c.speed = speed
	return nil
}
