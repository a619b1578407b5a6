package shipment

import (
	"errors"
	"fmt"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not created
	// through the NewShipment factory method. This ensures all shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrMedicineIsRequired is returned when attempting to create a shipment without a medicine.
	ErrMedicineIsRequired = errs.NewValueIsRequiredError("medicine")
)

// Shippable is the capability a consignment must expose to be shipped.
// It is satisfied implicitly by every medicine variant; the shipping side
// consumes only the identity and the temperature-envelope predicate.
type Shippable interface {
	// Name returns the identifying name of the consignment contents.
	Name() string

	// MinimumTemperature returns the lower envelope bound in degrees Celsius.
	MinimumTemperature() float64

	// MaximumTemperature returns the upper envelope bound in degrees Celsius.
	MaximumTemperature() float64

	// IsTemperatureRangeAcceptable reports whether an environment spanning
	// [low, high] is safe for the contents.
	IsTemperatureRangeAcceptable(low float64, high float64) bool
}

// Shipment represents one medicine consignment in transit. It is the aggregate
// root that manages the shipment lifecycle from creation through dispatch to delivery.
//
// Shipment follows these invariants:
//   - Must have a valid unique identifier
//   - Must carry the name and temperature envelope of its medicine
//   - Remaining distance is never negative; it is positive at creation
//   - Status transitions follow defined business rules
//   - Can only be created through the NewShipment constructor
//
// The envelope bounds are snapshotted from the medicine at creation, so the
// aggregate can answer acceptability checks without resolving the concrete
// medicine variant again. The snapshot carries the medicine contract verbatim:
// the bounds are not cross-validated and the predicate never compares its two
// inputs to each other.
type Shipment struct {
	// id is the unique identifier for the shipment
	id kernel.UUID

	// transporterID is the assigned transporter's ID (nil if undispatched)
	transporterID *kernel.UUID

	// medicineName identifies the consignment contents
	medicineName string

	// minimumTemperature is the lower bound of the medicine's safe envelope
	minimumTemperature float64

	// maximumTemperature is the upper bound of the medicine's safe envelope
	maximumTemperature float64

	// distance is the remaining transit distance in grid units
	distance int

	// status represents the current state in the shipment lifecycle
	status Status

	// isConstructed ensures the shipment was created via NewShipment
	isConstructed bool
}

// NewShipment creates a new Shipment for the given medicine with validation.
// This is the only way to create a valid Shipment, ensuring all business
// invariants are maintained.
//
// Parameters:
//   - id: Unique identifier for the shipment (must be valid UUID)
//   - med: The consignment contents; name and temperature envelope are snapshotted
//   - distance: Transit distance to the destination (must be positive)
//
// The constructor validates all inputs and creates the shipment in Created
// status with no transporter assigned.
func NewShipment(id kernel.UUID, med Shippable, distance int) (*Shipment, error) {
	shipment := &Shipment{
		status:        Created,
		isConstructed: true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setMedicine(med),
		shipment.setDistance(distance),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// RestoreShipment reconstructs a Shipment aggregate from persistent storage.
// Unlike NewShipment, which creates fresh shipments in Created status, this
// constructor restores a shipment to its previously persisted state, including
// status, remaining distance, and transporter assignment.
//
// Business rules:
//   - Shipment ID must be valid
//   - Medicine name cannot be empty
//   - Remaining distance cannot be negative (zero is valid for arrived shipments)
//   - Status must be valid and consistent with the transporter assignment
func RestoreShipment(
	id kernel.UUID,
	medicineName string,
	minimumTemperature float64,
	maximumTemperature float64,
	distance int,
	status Status,
	transporterID *kernel.UUID,
) (*Shipment, error) {
	shipment := &Shipment{
		minimumTemperature: minimumTemperature,
		maximumTemperature: maximumTemperature,
		isConstructed:      true,
	}

	if err := errors.Join(
		shipment.setID(id),
		shipment.setMedicineName(medicineName),
		shipment.setRestoredDistance(distance),
		shipment.setStatus(status),
		shipment.setTransporterID(transporterID),
	); err != nil {
		return nil, err
	}

	return shipment, nil
}

// Validate ensures the Shipment instance was properly constructed through
// NewShipment or RestoreShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// IsEqual compares two shipments by their unique identifiers.
// Shipments are considered equal if they have the same ID.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// MedicineName returns the name of the consignment contents.
func (s *Shipment) MedicineName() string {
	return s.medicineName
}

// MinimumTemperature returns the lower bound of the medicine's safe envelope.
func (s *Shipment) MinimumTemperature() float64 {
	return s.minimumTemperature
}

// MaximumTemperature returns the upper bound of the medicine's safe envelope.
func (s *Shipment) MaximumTemperature() float64 {
	return s.maximumTemperature
}

// Distance returns the remaining transit distance in grid units.
func (s *Shipment) Distance() int {
	return s.distance
}

// Status returns the current status of the shipment.
func (s *Shipment) Status() Status {
	return s.status
}

// Transporter returns the assigned transporter's ID.
// Returns nil if the shipment has not been dispatched.
func (s *Shipment) Transporter() *kernel.UUID {
	return s.transporterID
}

// IsTemperatureRangeAcceptable reports whether a transport environment spanning
// [low, high] is safe for the shipped medicine. It delegates to the envelope
// snapshot taken at creation: low is compared against the minimum and high
// against the maximum, inclusively and independently of each other.
func (s *Shipment) IsTemperatureRangeAcceptable(low float64, high float64) bool {
	return s.minimumTemperature <= low && high <= s.maximumTemperature
}

// ValidateDispatch checks whether the shipment can currently be dispatched.
func (s *Shipment) ValidateDispatch() error {
	return s.status.ValidateDispatch()
}

// Dispatch assigns the shipment to a transporter and updates the status to Dispatched.
//
// Business rules:
//   - The transporter ID must be valid
//   - The shipment must be in Created or Dispatched status
//   - Re-dispatch is allowed (from Dispatched to Dispatched)
func (s *Shipment) Dispatch(transporterID kernel.UUID) error {
	if err := transporterID.Validate(); err != nil {
		return err
	}

	newStatus, err := s.status.Dispatch()
	if err != nil {
		return err
	}

	s.status = newStatus
	s.transporterID = &transporterID
	return nil
}

// Advance reduces the remaining transit distance by the given number of steps.
// The shipment must be in Dispatched status; steps must be positive.
// The remaining distance never goes below zero.
func (s *Shipment) Advance(steps int) error {
	if steps <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("steps",
			fmt.Errorf("%d is not greater than 0", steps))
	}

	if s.status != Dispatched {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%s is not a valid status to advance", s.status))
	}

	s.distance -= steps
	if s.distance < 0 {
		s.distance = 0
	}
	return nil
}

// IsArrived reports whether the shipment has covered its whole transit distance.
func (s *Shipment) IsArrived() bool {
	return s.distance == 0
}

// Deliver marks the shipment as delivered.
//
// Business rules:
//   - The shipment must be in Dispatched status
//   - Delivered is a final state with no further transitions
func (s *Shipment) Deliver() error {
	newStatus, err := s.status.Deliver()
	if err != nil {
		return err
	}

	s.status = newStatus
	return nil
}

// setID validates and sets the shipment's unique identifier.
// This is a private method used only during construction.
func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

// setMedicine snapshots the consignment identity and envelope from the medicine.
// This is a private method used only during construction.
func (s *Shipment) setMedicine(med Shippable) error {
	if med == nil {
		return ErrMedicineIsRequired
	}
	if err := s.setMedicineName(med.Name()); err != nil {
		return err
	}

	s.minimumTemperature = med.MinimumTemperature()
	s.maximumTemperature = med.MaximumTemperature()
	return nil
}

func (s *Shipment) setMedicineName(medicineName string) error {
	if medicineName == "" {
		return errs.NewValueIsRequiredError("medicineName")
	}
	s.medicineName = medicineName
	return nil
}

// setDistance validates and sets the transit distance at creation.
// Distance must be positive: a shipment with nothing left to travel is not a shipment.
func (s *Shipment) setDistance(distance int) error {
	if distance <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%d is not greater than 0", distance))
	}
	s.distance = distance
	return nil
}

// setRestoredDistance allows zero distance when restoring arrived shipments.
func (s *Shipment) setRestoredDistance(distance int) error {
	if distance < 0 {
		return errs.NewValueIsInvalidErrorWithCause("distance",
			fmt.Errorf("%d is negative", distance))
	}
	s.distance = distance
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}

func (s *Shipment) setTransporterID(transporterID *kernel.UUID) error {
	if transporterID != nil {
		if err := transporterID.Validate(); err != nil {
			return err
		}
	}

	if err := s.status.ValidateCanHaveTransporter(transporterID != nil); err != nil {
		return err
	}

	s.transporterID = transporterID
	return nil
}
