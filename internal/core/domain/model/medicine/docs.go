// Package medicine models the medicines the shipping system transports.
//
// The central abstraction is the Medicine interface: an identity (name), a
// safe-transport temperature envelope with per-variant bounds, an envelope
// acceptability predicate, and a dosage schedule. Concrete variants
// (PainReliever, Antibiotic, Insulin, Vaccine) embed the shared profile
// implementation and fix their own bounds and schedule at construction.
//
// The envelope predicate deliberately checks each bound independently: the low
// end of a candidate range is compared against the minimum and the high end
// against the maximum, with no ordering check between the two inputs. Callers
// that need a validated, ordered range should use kernel.TemperatureRange on
// the equipment side instead.
package medicine
