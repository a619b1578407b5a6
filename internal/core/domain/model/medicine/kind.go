package medicine

import (
	"fmt"

	"medship/internal/pkg/errs"
)

// Kind discriminates the closed set of medicine variants.
// It is used at transport and persistence boundaries where the concrete
// variant must be rebuilt from data.
type Kind int

const (
	// KindUnknown represents an invalid or undefined kind.
	// This value (0) helps catch uninitialized Kind values.
	KindUnknown Kind = iota

	// KindPainReliever is the PainReliever variant.
	KindPainReliever

	// KindAntibiotic is the Antibiotic variant.
	KindAntibiotic

	// KindInsulin is the Insulin variant.
	KindInsulin

	// KindVaccine is the Vaccine variant.
	KindVaccine
)

// getKindStrings returns a map of Kind values to their string representations.
func getKindStrings() map[Kind]string {
	return map[Kind]string{
		KindUnknown:      "Unknown",
		KindPainReliever: "PainReliever",
		KindAntibiotic:   "Antibiotic",
		KindInsulin:      "Insulin",
		KindVaccine:      "Vaccine",
	}
}

// getValidKindStrings returns a map of only valid Kind values.
func getValidKindStrings() map[Kind]string {
	//nolint:exhaustive // KindUnknown is intentionally excluded as it's invalid
	return map[Kind]string{
		KindPainReliever: "PainReliever",
		KindAntibiotic:   "Antibiotic",
		KindInsulin:      "Insulin",
		KindVaccine:      "Vaccine",
	}
}

// Validate checks if the Kind value names a concrete variant.
func (k Kind) Validate() error {
	if _, ok := getValidKindStrings()[k]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid medicine kind", k))
	}
	return nil
}

// String returns the human-readable name of the kind.
// It implements the fmt.Stringer interface and returns "Unknown" for
// invalid values.
func (k Kind) String() string {
	if str, ok := getKindStrings()[k]; ok {
		return str
	}
	return "Unknown"
}

// KindFromString parses a Kind from its string representation.
// Returns an error for strings that do not name a concrete variant.
func KindFromString(s string) (Kind, error) {
	for kind, str := range getValidKindStrings() {
		if str == s {
			return kind, nil
		}
	}
	return KindUnknown, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
		fmt.Errorf("%q is not a valid medicine kind", s))
}

// New creates the concrete medicine variant for the given kind.
// This is the factory used at system boundaries where the variant is chosen by data.
func New(kind Kind, name string) (Medicine, error) {
	switch kind {
	case KindPainReliever:
		return NewPainReliever(name)
	case KindAntibiotic:
		return NewAntibiotic(name)
	case KindInsulin:
		return NewInsulin(name)
	case KindVaccine:
		return NewVaccine(name)
	case KindUnknown:
		fallthrough
	default:
		return nil, errs.NewValueIsInvalidErrorWithCause("kind is invalid",
			fmt.Errorf("%d is not a valid medicine kind", kind))
	}
}
