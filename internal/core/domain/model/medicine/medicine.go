package medicine

import (
	"errors"
	"fmt"

	"medship/internal/pkg/errs"
)

const (
	// DefaultMinimumTemperature is the lower envelope bound (°C) for variants
	// that do not override it.
	DefaultMinimumTemperature = 0.0
	// DefaultMaximumTemperature is the upper envelope bound (°C) for variants
	// that do not override it.
	DefaultMaximumTemperature = 100.0
)

const (
	insulinMinimumTemperature = 2.0
	insulinMaximumTemperature = 8.0

	antibioticMaximumTemperature = 25.0

	vaccineMinimumTemperature = -80.0
	vaccineMaximumTemperature = -60.0
)

// ErrNameIsRequired is returned when attempting to create a medicine without a name.
var ErrNameIsRequired = errs.NewValueIsRequiredError("name")

// Medicine describes a medicine's identity, its safe-transport temperature
// envelope, and its dosage schedule. Every concrete variant implements this
// interface by embedding the shared profile and fixing its own bounds and
// schedule at construction.
//
// Implementations are immutable after construction: all methods are pure
// queries, so a Medicine may be read concurrently without synchronization.
type Medicine interface {
	// Name returns the identifying name, exactly as passed to the constructor.
	Name() string

	// MinimumTemperature returns the lower envelope bound in degrees Celsius.
	MinimumTemperature() float64

	// MaximumTemperature returns the upper envelope bound in degrees Celsius.
	MaximumTemperature() float64

	// IsTemperatureRangeAcceptable reports whether a transport environment
	// spanning [low, high] stays within the safe envelope.
	IsTemperatureRangeAcceptable(low float64, high float64) bool

	// Schedule returns the dosage schedule of the variant.
	Schedule() Schedule
}

// profile is the shared implementation embedded by every concrete medicine variant.
// The temperature bounds are fixed per variant at construction; bounds ordering is
// intentionally not checked (a medicine with minimum above maximum simply accepts
// no range).
type profile struct {
	name     string
	minimum  float64
	maximum  float64
	schedule Schedule
}

// newProfile builds the common profile for a medicine variant.
// The name must be non-empty and the schedule must be valid; the bounds are
// taken as given.
func newProfile(name string, minimum float64, maximum float64, schedule Schedule) (profile, error) {
	p := profile{
		minimum: minimum,
		maximum: maximum,
	}

	if err := errors.Join(p.setName(name), p.setSchedule(schedule)); err != nil {
		return profile{}, err
	}

	return p, nil
}

// Name returns the identifying name of the medicine.
func (p profile) Name() string {
	return p.name
}

// MinimumTemperature returns the lower envelope bound in degrees Celsius.
func (p profile) MinimumTemperature() float64 {
	return p.minimum
}

// MaximumTemperature returns the upper envelope bound in degrees Celsius.
func (p profile) MaximumTemperature() float64 {
	return p.maximum
}

// IsTemperatureRangeAcceptable reports whether a transport environment spanning
// [low, high] stays within the medicine's safe envelope. Both comparisons are
// inclusive and each bound is checked independently: low against the minimum,
// high against the maximum. low is never compared to high, and a NaN input
// fails its comparison, so the result is false.
func (p profile) IsTemperatureRangeAcceptable(low float64, high float64) bool {
	return p.minimum <= low && high <= p.maximum
}

// Schedule returns the dosage schedule of the medicine.
func (p profile) Schedule() Schedule {
	return p.schedule
}

// String returns a human-readable representation of the medicine profile.
// This method implements the fmt.Stringer interface.
func (p profile) String() string {
	return fmt.Sprintf("%s [%g..%g] %s", p.name, p.minimum, p.maximum, p.schedule)
}

func (p *profile) setName(name string) error {
	if name == "" {
		return ErrNameIsRequired
	}

	p.name = name
	return nil
}

func (p *profile) setSchedule(schedule Schedule) error {
	if err := schedule.Validate(); err != nil {
		return err
	}

	p.schedule = schedule
	return nil
}

// PainReliever is an over-the-counter analgesic. It travels at ambient
// conditions and keeps the default envelope on both ends.
type PainReliever struct {
	profile
}

// NewPainReliever creates a pain reliever with the given name.
// Envelope: [DefaultMinimumTemperature, DefaultMaximumTemperature], taken as needed.
func NewPainReliever(name string) (PainReliever, error) {
	p, err := newProfile(name, DefaultMinimumTemperature, DefaultMaximumTemperature, AsNeeded)
	if err != nil {
		return PainReliever{}, err
	}

	return PainReliever{profile: p}, nil
}

// Antibiotic is a medicine that must be kept below room temperature.
// It overrides the upper envelope bound only.
type Antibiotic struct {
	profile
}

// NewAntibiotic creates an antibiotic with the given name.
// Envelope: [DefaultMinimumTemperature, 25], three doses per day.
func NewAntibiotic(name string) (Antibiotic, error) {
	p, err := newProfile(name, DefaultMinimumTemperature, antibioticMaximumTemperature, ThreeTimesDaily)
	if err != nil {
		return Antibiotic{}, err
	}

	return Antibiotic{profile: p}, nil
}

// Insulin is a refrigerated medicine. It overrides both envelope bounds.
type Insulin struct {
	profile
}

// NewInsulin creates an insulin with the given name.
// Envelope: [2, 8], two doses per day.
func NewInsulin(name string) (Insulin, error) {
	p, err := newProfile(name, insulinMinimumTemperature, insulinMaximumTemperature, TwiceDaily)
	if err != nil {
		return Insulin{}, err
	}

	return Insulin{profile: p}, nil
}

// Vaccine is a deep-frozen medicine. It overrides both envelope bounds.
type Vaccine struct {
	profile
}

// NewVaccine creates a vaccine with the given name.
// Envelope: [-80, -60], one dose per day.
func NewVaccine(name string) (Vaccine, error) {
	p, err := newProfile(name, vaccineMinimumTemperature, vaccineMaximumTemperature, OnceDaily)
	if err != nil {
		return Vaccine{}, err
	}

	return Vaccine{profile: p}, nil
}
