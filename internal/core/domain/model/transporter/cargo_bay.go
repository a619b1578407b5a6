package transporter

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"
	"medship/internal/pkg/errs"
	"medship/internal/pkg/guard"
)

var (
	// ErrCannotHoldShipmentInThisCargoBay indicates that a shipment cannot be held
	// in the cargo bay, either because the bay is occupied or because its maintained
	// temperature range does not satisfy the shipment's envelope.
	ErrCannotHoldShipmentInThisCargoBay = errors.New("cannot hold shipment in this cargo bay")

	// ErrShipmentNotHeldInThisBay indicates that the specified shipment is not
	// currently held in this cargo bay, either because the bay is empty or
	// contains a different shipment.
	ErrShipmentNotHeldInThisBay = errors.New("shipment not held in this bay")

	// ErrCargoBayIsNotConstructed indicates that the CargoBay was not properly
	// initialized through the NewCargoBay constructor function.
	ErrCargoBayIsNotConstructed = errors.New("CargoBay must be created via NewCargoBay constructor")
)

// CargoBay represents a temperature-controlled compartment aboard a transporter
// where a shipment rides during transit. It is a domain entity that encapsulates
// the business rules for loading and unloading shipments.
//
// A cargo bay maintains a fixed temperature range and can hold at most one
// shipment at a time. Suitability is decided by the shipment itself: the bay
// offers its maintained range and the shipment's envelope predicate accepts
// or rejects it.
//
// Key business rules:
//   - Must be constructed through NewCargoBay constructor
//   - Can only hold one shipment at a time (binary occupancy)
//   - The maintained range must satisfy the shipment's temperature envelope
//   - Only the held shipment can be released from the bay
type CargoBay struct {
	// id uniquely identifies the cargo bay
	id kernel.UUID

	// name is a human-readable identifier for the cargo bay
	name string

	// temperatureRange is the range the bay's cooling unit maintains
	temperatureRange kernel.TemperatureRange

	// shipmentID points to the currently held shipment, nil if empty
	shipmentID *kernel.UUID

	// guard ensures the entity was properly initialized
	guard guard.ConstructorGuard
}

// NewCargoBay creates a new CargoBay entity with the specified parameters.
// This is the only way to create a properly initialized CargoBay instance.
//
// Parameters:
//   - id: Unique identifier for the cargo bay (must be valid UUID)
//   - name: Human-readable name for the cargo bay (must not be empty)
//   - temperatureRange: Range the bay maintains (must be a valid range)
//
// All validation errors are aggregated and returned as a single error.
func NewCargoBay(id kernel.UUID, name string, temperatureRange kernel.TemperatureRange) (*CargoBay, error) {
	bay := &CargoBay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bay.setID(id),
		bay.setName(name),
		bay.setTemperatureRange(temperatureRange),
	); err != nil {
		return nil, err
	}

	return bay, nil
}

// RestoreCargoBay reconstructs a CargoBay entity from persistent storage.
// Unlike NewCargoBay which creates empty bays, this constructor restores a bay
// to its previously persisted state, including any held shipment.
//
// Business rules:
//   - Cargo bay ID must be valid
//   - Name cannot be empty
//   - Temperature range must be valid
//   - Shipment ID, if provided, must be valid
func RestoreCargoBay(
	id kernel.UUID,
	name string,
	temperatureRange kernel.TemperatureRange,
	shipmentID *kernel.UUID,
) (*CargoBay, error) {
	bay := &CargoBay{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		bay.setID(id),
		bay.setName(name),
		bay.setTemperatureRange(temperatureRange),
		bay.setShipmentID(shipmentID),
	); err != nil {
		return nil, err
	}

	return bay, nil
}

// IsEqual compares two CargoBay entities for equality based on their unique
// identifiers. Two bays are equal if they have the same ID, following DDD
// principles where entity equality is determined by identity.
func (b *CargoBay) IsEqual(other *CargoBay) bool {
	return other != nil && b.id.IsEqual(other.id)
}

// ID returns the unique identifier of the cargo bay.
func (b *CargoBay) ID() kernel.UUID {
	return b.id
}

// Name returns the human-readable name of the cargo bay.
func (b *CargoBay) Name() string {
	return b.name
}

// TemperatureRange returns the range the bay's cooling unit maintains.
func (b *CargoBay) TemperatureRange() kernel.TemperatureRange {
	return b.temperatureRange
}

// ShipmentID returns the ID of the currently held shipment, if any.
// Returns nil if the cargo bay is currently empty.
func (b *CargoBay) ShipmentID() *kernel.UUID {
	return b.shipmentID
}

// CanHold determines whether the given shipment can be held in this cargo bay.
// The bay must be empty and its maintained range must fall inside the
// shipment's temperature envelope. The envelope check delegates to the
// shipment's own predicate over the bay's minimum and maximum.
func (b *CargoBay) CanHold(s *shipment.Shipment) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}

	if b.isOccupied() {
		return false, nil
	}

	return s.IsTemperatureRangeAcceptable(
		b.temperatureRange.Minimum(),
		b.temperatureRange.Maximum(),
	), nil
}

// Hold places a shipment in this cargo bay, marking it as occupied.
// The bay must be empty and its maintained range must satisfy the shipment's
// envelope; otherwise ErrCannotHoldShipmentInThisCargoBay is returned.
func (b *CargoBay) Hold(s *shipment.Shipment) error {
	canHold, err := b.CanHold(s)
	if err != nil {
		return err
	}

	if !canHold {
		return ErrCannotHoldShipmentInThisCargoBay
	}

	shipmentID := s.ID()
	b.shipmentID = &shipmentID
	return nil
}

// Release removes the specified shipment from this cargo bay, making it
// available for new shipments. The bay must currently hold that exact
// shipment; otherwise ErrShipmentNotHeldInThisBay is returned.
func (b *CargoBay) Release(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	if !b.isOccupied() || !b.shipmentID.IsEqual(shipmentID) {
		return ErrShipmentNotHeldInThisBay
	}

	b.shipmentID = nil
	return nil
}

func (b *CargoBay) isOccupied() bool {
	return b.shipmentID != nil
}

func (b *CargoBay) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	b.id = id
	return nil
}

func (b *CargoBay) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}

	b.name = name
	return nil
}

func (b *CargoBay) setTemperatureRange(temperatureRange kernel.TemperatureRange) error {
	if err := temperatureRange.Validate(); err != nil {
		return err
	}

	b.temperatureRange = temperatureRange
	return nil
}

// setShipmentID sets the held shipment ID for this cargo bay.
// Used during entity restoration to establish the occupied state.
func (b *CargoBay) setShipmentID(shipmentID *kernel.UUID) error {
	if shipmentID != nil {
		if err := shipmentID.Validate(); err != nil {
			return err
		}
	}

	b.shipmentID = shipmentID
	return nil
}

// Validate checks if the CargoBay entity is in a valid state, ensuring it was
// constructed through NewCargoBay or RestoreCargoBay.
func (b *CargoBay) Validate() error {
	if b == nil {
		return ErrCargoBayIsNotConstructed
	}
	return b.guard.Validate(ErrCargoBayIsNotConstructed)
}
