package medicine

import (
	"fmt"

	"medship/internal/pkg/errs"
)

// Schedule represents the dosage timing of a medicine.
// It is a closed value object: every concrete medicine variant supplies
// exactly one schedule, and values arriving from external sources
// (database, API) must pass Validate before use.
type Schedule int

const (
	// Unknown represents an invalid or undefined schedule.
	// This value (0) helps catch uninitialized Schedule values.
	Unknown Schedule = iota

	// OnceDaily is a single dose per day.
	OnceDaily

	// TwiceDaily is one dose every twelve hours.
	TwiceDaily

	// ThreeTimesDaily is one dose every eight hours.
	ThreeTimesDaily

	// AsNeeded is dosing on demand rather than on a fixed clock.
	AsNeeded
)

// getScheduleStrings returns a map of Schedule values to their string representations.
// All schedules are included for string conversion.
func getScheduleStrings() map[Schedule]string {
	return map[Schedule]string{
		Unknown:         "Unknown",
		OnceDaily:       "OnceDaily",
		TwiceDaily:      "TwiceDaily",
		ThreeTimesDaily: "ThreeTimesDaily",
		AsNeeded:        "AsNeeded",
	}
}

// getValidScheduleStrings returns a map of only valid Schedule values.
// Only valid schedules are included to support validation.
func getValidScheduleStrings() map[Schedule]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Schedule]string{
		OnceDaily:       "OnceDaily",
		TwiceDaily:      "TwiceDaily",
		ThreeTimesDaily: "ThreeTimesDaily",
		AsNeeded:        "AsNeeded",
	}
}

// Validate checks if the Schedule value is valid.
// Valid schedules are OnceDaily, TwiceDaily, ThreeTimesDaily, and AsNeeded;
// Unknown (0) and any other values are invalid.
func (s Schedule) Validate() error {
	if _, ok := getValidScheduleStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("schedule is invalid",
			fmt.Errorf("%d is not a valid schedule", s))
	}
	return nil
}

// String returns the human-readable name of the schedule.
// It implements the fmt.Stringer interface and is safe to call on any
// Schedule value, including invalid ones, for which it returns "Unknown".
func (s Schedule) String() string {
	if str, ok := getScheduleStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
