package kernel

import (
	"errors"
	"fmt"
	"math"

	"medship/internal/pkg/errs"
	"medship/internal/pkg/guard"
)

const (
	// MinSupportedTemperature is the lowest temperature (°C) any cargo bay can be rated for.
	MinSupportedTemperature float64 = -100.0
	// MaxSupportedTemperature is the highest temperature (°C) any cargo bay can be rated for.
	MaxSupportedTemperature float64 = 150.0
)

// ErrTemperatureRangeIsNotConstructed is returned when attempting to use an improperly
// initialized TemperatureRange. Ranges must be created via NewTemperatureRange.
var ErrTemperatureRangeIsNotConstructed = errs.NewValueIsRequiredError(
	"temperature range must be created via NewTemperatureRange constructor")

// ErrTemperatureRangeIsInverted is returned when the minimum of a range exceeds its maximum.
var ErrTemperatureRangeIsInverted = errs.NewValueIsInvalidError(
	"temperature range minimum must not exceed maximum")

// TemperatureRange represents the climate envelope a refrigeration unit maintains,
// in degrees Celsius. It is an immutable value object: both bounds are validated
// against the supported equipment limits and the range is guaranteed not to be
// inverted. The zero value is invalid — use NewTemperatureRange.
//
// Note that TemperatureRange models equipment, not medicine. A medicine's safe
// transport envelope carries the looser contract of the medicine package and is
// never validated for ordering.
//
// Example:
//
//	trange, err := kernel.NewTemperatureRange(2, 8)
//	if err != nil {
//	    // Handle validation error
//	}
//	fmt.Printf("Refrigerated bay: %s", trange) // Output: TemperatureRange(2..8)
type TemperatureRange struct { //nolint:recvcheck //using for validation
	minimum float64
	maximum float64
	guard   guard.ConstructorGuard
}

// NewTemperatureRange creates a validated TemperatureRange.
// Both bounds must be finite, within the supported equipment limits
// [MinSupportedTemperature..MaxSupportedTemperature], and ordered
// (minimum <= maximum).
func NewTemperatureRange(minimum float64, maximum float64) (TemperatureRange, error) {
	trange := TemperatureRange{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(trange.setMinimum(minimum), trange.setMaximum(maximum)); err != nil {
		return TemperatureRange{}, err
	}

	if trange.minimum > trange.maximum {
		return TemperatureRange{}, ErrTemperatureRangeIsInverted
	}

	return trange, nil
}

// Validate checks if the TemperatureRange was properly constructed.
// The zero value fails this validation.
func (t TemperatureRange) Validate() error {
	return t.guard.Validate(ErrTemperatureRangeIsNotConstructed)
}

// Minimum returns the lower bound of the range in degrees Celsius.
func (t TemperatureRange) Minimum() float64 {
	return t.minimum
}

// Maximum returns the upper bound of the range in degrees Celsius.
func (t TemperatureRange) Maximum() float64 {
	return t.maximum
}

// String returns a human-readable representation in the format "TemperatureRange(min..max)".
// This method implements the fmt.Stringer interface.
func (t TemperatureRange) String() string {
	return fmt.Sprintf("TemperatureRange(%g..%g)", t.minimum, t.maximum)
}

// IsEqual compares two temperature ranges for equality.
// Both ranges must be properly constructed for the comparison to succeed.
func (t TemperatureRange) IsEqual(other TemperatureRange) (bool, error) {
	if err := errors.Join(t.Validate(), other.Validate()); err != nil {
		return false, err
	}

	return t.minimum == other.minimum && t.maximum == other.maximum, nil
}

// setMinimum sets the lower bound with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, so that construction can run self-encapsulated validation.
func (t *TemperatureRange) setMinimum(minimum float64) error {
	if err := validateTemperature("minimum", minimum); err != nil {
		return err
	}

	t.minimum = minimum
	return nil
}

// setMaximum sets the upper bound with validation.
// Note: We intentionally use a pointer receiver here while other methods use value
// receivers, so that construction can run self-encapsulated validation.
func (t *TemperatureRange) setMaximum(maximum float64) error {
	if err := validateTemperature("maximum", maximum); err != nil {
		return err
	}

	t.maximum = maximum
	return nil
}

func validateTemperature(paramName string, value float64) error {
	if math.IsNaN(value) {
		return errs.NewValueIsInvalidError(paramName + " temperature is NaN")
	}
	if value < MinSupportedTemperature || value > MaxSupportedTemperature {
		return errs.NewValueIsOutOfRangeError(paramName, value, MinSupportedTemperature, MaxSupportedTemperature)
	}
	return nil
}
