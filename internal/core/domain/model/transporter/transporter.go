package transporter

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"
	"medship/internal/pkg/errs"
	"medship/internal/pkg/guard"
)

const (
	// transporterDefaultBayName is the name of the ambient bay every new transporter starts with.
	transporterDefaultBayName = "Ambient hold"
	// transporterDefaultBayMinimum is the lower bound of the default ambient bay.
	transporterDefaultBayMinimum = 0.0
	// transporterDefaultBayMaximum is the upper bound of the default ambient bay.
	transporterDefaultBayMaximum = 100.0
)

// Domain errors for transporter operations.
var (
	// ErrNameIsRequired is returned when attempting to create a transporter without a name.
	ErrNameIsRequired = errs.NewValueIsRequiredError("name")
	// ErrSpeedIsRequired is returned when attempting to create a transporter with invalid speed (≤0).
	ErrSpeedIsRequired = errs.NewValueIsRequiredError("speed")
	// ErrTransporterIsNotConstructed is returned when using an improperly initialized Transporter.
	ErrTransporterIsNotConstructed = errors.New("Transporter must be created via NewTransporter constructor")
	// ErrCargoBayNotFound is returned when no cargo bay can serve a request.
	ErrCargoBayNotFound = errors.New("cargo bay not found")
)

// Transporter represents a refrigerated delivery vehicle in the system.
// It is an aggregate root that manages transporter identity, speed, and the
// temperature-controlled cargo bays shipments ride in.
//
// Key responsibilities:
//   - Managing transporter identity (ID, name, speed)
//   - Managing cargo bays for shipment transportation
//   - Matching shipment temperature envelopes against bay ranges
//
// Business rules:
//   - Transporter must have a valid UUID, non-empty name, and positive speed
//   - Each transporter starts with a default ambient bay spanning 0..100 °C
//   - A shipment can only be loaded into a bay whose maintained range
//     satisfies the shipment's envelope
type Transporter struct {
	// id uniquely identifies the transporter
	id kernel.UUID
	// name is the human-readable name of the transporter
	name string
	// speed determines how many grid units the transporter covers per turn
	speed int
	// cargoBays are the temperature-controlled compartments for carrying shipments
	cargoBays []*CargoBay
	// guard ensures the transporter was properly constructed
	guard guard.ConstructorGuard
}

// NewTransporter creates a new Transporter with the specified parameters.
// This is the only way to create a valid Transporter instance.
//
// The constructor validates all input parameters and automatically creates a
// default ambient cargo bay spanning 0..100 °C, which accepts any medicine
// shipped under the default envelope.
//
// Parameters:
//   - id: Unique identifier for the transporter (must be valid UUID)
//   - name: Human-readable name (must be non-empty)
//   - speed: Transit speed in grid units per turn (must be positive)
func NewTransporter(id kernel.UUID, name string, speed int) (*Transporter, error) {
	transporter := &Transporter{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transporter.setID(id),
		transporter.setName(name),
		transporter.setSpeed(speed),
		transporter.addDefaultCargoBay(),
	); err != nil {
		return nil, err
	}

	return transporter, nil
}

// RestoreTransporter reconstructs a Transporter aggregate from persistent storage.
// Unlike NewTransporter which creates fresh transporters with the default ambient
// bay, this constructor restores a transporter to its previously persisted state,
// including all cargo bays and their occupancy.
//
// Business rules:
//   - Transporter ID must be valid
//   - Name cannot be empty
//   - Speed must be positive
//   - Must have at least one cargo bay
//   - All cargo bays must be valid
func RestoreTransporter(
	id kernel.UUID,
	name string,
	speed int,
	cargoBays []*CargoBay,
) (*Transporter, error) {
	transporter := &Transporter{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		transporter.setID(id),
		transporter.setName(name),
		transporter.setSpeed(speed),
		transporter.setCargoBays(cargoBays),
	); err != nil {
		return nil, err
	}

	return transporter, nil
}

// IsEqual compares two transporters for equality based on their unique
// identifiers, regardless of other attributes.
func (t *Transporter) IsEqual(other *Transporter) bool {
	if other == nil {
		return false
	}
	return t.id.IsEqual(other.id)
}

// Validate checks if the Transporter was properly constructed using the
// NewTransporter constructor. The zero value of Transporter is invalid.
func (t *Transporter) Validate() error {
	if t == nil {
		return ErrTransporterIsNotConstructed
	}
	return t.guard.Validate(ErrTransporterIsNotConstructed)
}

// ID returns the unique identifier of the transporter.
func (t *Transporter) ID() kernel.UUID {
	return t.id
}

// Name returns the human-readable name of the transporter.
func (t *Transporter) Name() string {
	return t.name
}

// Speed returns the transit speed in grid units per turn.
func (t *Transporter) Speed() int {
	return t.speed
}

// CargoBays returns all cargo bays aboard the transporter.
// The returned slice is a copy to prevent external modification.
func (t *Transporter) CargoBays() []*CargoBay {
	out := make([]*CargoBay, len(t.cargoBays))
	copy(out, t.cargoBays)
	return out
}

// AddCargoBay creates and adds a new temperature-controlled cargo bay to the
// transporter. This expands the range of medicines the transporter can carry.
//
// Parameters:
//   - name: Human-readable name for the cargo bay (must be non-empty)
//   - temperatureRange: Range the bay's cooling unit maintains (must be valid)
func (t *Transporter) AddCargoBay(name string, temperatureRange kernel.TemperatureRange) error {
	bay, err := NewCargoBay(kernel.NewUUID(), name, temperatureRange)
	if err != nil {
		return err
	}

	t.cargoBays = append(t.cargoBays, bay)
	return nil
}

// CanCarry checks if the transporter can accept a specific shipment without
// actually loading it. It is used for dispatch decisions.
//
// A shipment can be carried when at least one empty cargo bay maintains a
// range inside the shipment's temperature envelope.
func (t *Transporter) CanCarry(s *shipment.Shipment) (bool, error) {
	if err := s.Validate(); err != nil {
		return false, err
	}

	bay, err := t.findBayForShipment(s)
	if err != nil {
		return false, err
	}

	return bay != nil, nil
}

// LoadShipment places a shipment into the first suitable cargo bay, making
// that bay unavailable for other shipments. Use CanCarry first to check
// capacity before calling this method.
//
// Returns ErrCargoBayNotFound when no empty bay satisfies the shipment's
// temperature envelope.
func (t *Transporter) LoadShipment(s *shipment.Shipment) error {
	if err := s.Validate(); err != nil {
		return err
	}

	bay, err := t.findBayForShipment(s)
	if err != nil {
		return err
	}

	if bay == nil {
		return ErrCargoBayNotFound
	}

	return bay.Hold(s)
}

// UnloadShipment removes a delivered shipment from its cargo bay, freeing the
// bay for new shipments.
//
// Returns ErrCargoBayNotFound when the shipment is not aboard this transporter.
func (t *Transporter) UnloadShipment(shipmentID kernel.UUID) error {
	if err := shipmentID.Validate(); err != nil {
		return err
	}

	bay, err := t.findBayByShipmentID(shipmentID)
	if err != nil {
		return err
	}

	if bay == nil {
		return ErrCargoBayNotFound
	}

	return bay.Release(shipmentID)
}

// findBayForShipment locates the first empty cargo bay whose maintained range
// satisfies the shipment's envelope. Returns nil when no bay qualifies.
func (t *Transporter) findBayForShipment(s *shipment.Shipment) (*CargoBay, error) {
	for _, bay := range t.cargoBays {
		canHold, err := bay.CanHold(s)
		if err != nil {
			return nil, err
		}

		if canHold {
			return bay, nil
		}
	}

	return nil, nil //nolint:nilnil // nothing is found and no error
}

// findBayByShipmentID locates the cargo bay holding a specific shipment.
func (t *Transporter) findBayByShipmentID(shipmentID kernel.UUID) (*CargoBay, error) {
	for _, bay := range t.cargoBays {
		if bay.ShipmentID() != nil && bay.ShipmentID().IsEqual(shipmentID) {
			return bay, nil
		}
	}

	return nil, ErrCargoBayNotFound
}

// setID sets the transporter's unique identifier with validation.
func (t *Transporter) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	t.id = id
	return nil
}

// setName sets the transporter's name with validation.
func (t *Transporter) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	t.name = name
	return nil
}

// setSpeed sets the transporter's speed with validation.
func (t *Transporter) setSpeed(speed int) error {
	if speed <= 0 {
		return ErrSpeedIsRequired
	}

	t.speed = speed
	return nil
}

// addDefaultCargoBay equips a fresh transporter with the ambient bay.
func (t *Transporter) addDefaultCargoBay() error {
	ambient, err := kernel.NewTemperatureRange(transporterDefaultBayMinimum, transporterDefaultBayMaximum)
	if err != nil {
		return err
	}

	return t.AddCargoBay(transporterDefaultBayName, ambient)
}

// setCargoBays sets the transporter's cargo bay collection.
// Used during restoration to establish the bays from persistent state.
func (t *Transporter) setCargoBays(cargoBays []*CargoBay) error {
	if len(cargoBays) == 0 {
		return errs.NewValueIsRequiredError("cargoBays")
	}

	for _, bay := range cargoBays {
		if err := bay.Validate(); err != nil {
			return err
		}
	}

	t.cargoBays = make([]*CargoBay, len(cargoBays))
	copy(t.cargoBays, cargoBays)
	return nil
}
