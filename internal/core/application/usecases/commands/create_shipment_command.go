package commands

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/medicine"
	"medship/internal/pkg/guard"
)

var (
	ErrCreateShipmentCommandIsNotConstructed = errors.New(
		"CreateShipmentCommand must be created via NewCreateShipmentCommand constructor",
	)
	ErrMedicineNameIsRequired = errors.New("medicine name is required")
	ErrDistanceIsInvalid      = errors.New("distance must be greater than 0")
)

// CreateShipmentCommand represents a request to create a new medicine shipment.
// Encapsulates the consignment details: which kind of medicine is shipped,
// under which name, and how far it has to travel.
//
// Example:
//
//	shipmentID := kernel.NewUUID()
//	cmd, err := NewCreateShipmentCommand(shipmentID, medicine.KindInsulin, "Glargine 100U/ml", 12)
//	if err != nil {
//	    return fmt.Errorf("invalid shipment data: %w", err)
//	}
//
//	handler := NewCreateShipmentCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create shipment: %w", err)
//	}
type CreateShipmentCommand struct { //nolint:recvcheck //using for validation
	shipmentID   kernel.UUID
	medicineKind medicine.Kind
	medicineName string
	distance     int

	guard guard.ConstructorGuard
}

// NewCreateShipmentCommand creates a command to register a new medicine shipment.
// Validates that shipment ID is valid, medicine kind is known, medicine name is
// not empty, and distance is positive.
func NewCreateShipmentCommand(
	shipmentID kernel.UUID,
	medicineKind medicine.Kind,
	medicineName string,
	distance int,
) (CreateShipmentCommand, error) {
	command := CreateShipmentCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setShipmentID(shipmentID),
		command.setMedicineKind(medicineKind),
		command.setMedicineName(medicineName),
		command.setDistance(distance),
	); err != nil {
		return CreateShipmentCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateShipmentCommandIsNotConstructed if validation fails.
func (c CreateShipmentCommand) Validate() error {
	return c.guard.Validate(ErrCreateShipmentCommandIsNotConstructed)
}

// ShipmentID returns the unique identifier for the shipment.
func (c CreateShipmentCommand) ShipmentID() kernel.UUID {
	return c.shipmentID
}

// MedicineKind returns the kind of medicine being shipped.
func (c CreateShipmentCommand) MedicineKind() medicine.Kind {
	return c.medicineKind
}

// MedicineName returns the name of the medicine being shipped.
func (c CreateShipmentCommand) MedicineName() string {
	return c.medicineName
}

// Distance returns the transit distance in grid units.
func (c CreateShipmentCommand) Distance() int {
	return c.distance
}

func (c *CreateShipmentCommand) setShipmentID(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	c.shipmentID = shipmentID
	return nil
}

func (c *CreateShipmentCommand) setMedicineKind(medicineKind medicine.Kind) error {
	if err := medicineKind.Validate(); err != nil {
		return err
	}

	c.medicineKind = medicineKind
	return nil
}

func (c *CreateShipmentCommand) setMedicineName(medicineName string) error {
	if medicineName == "" {
		return ErrMedicineNameIsRequired
	}

	c.medicineName = medicineName
	return nil
}

func (c *CreateShipmentCommand) setDistance(distance int) error {
	if distance <= 0 {
		return ErrDistanceIsInvalid
	}

	c.distance = distance
	return nil
}
