package services

import (
	"errors"
	"math"

	"medship/internal/core/domain/model/shipment"
	"medship/internal/core/domain/model/transporter"
)

// ErrTransporterNotFound is returned when no suitable transporter is available
// for shipment dispatch. This occurs when either no transporters are provided
// or none of the provided transporters has an empty cargo bay whose maintained
// range satisfies the shipment's temperature envelope.
var ErrTransporterNotFound = errors.New("transporter not found")

// ShipmentDispatcher is a domain service responsible for finding and assigning
// the optimal transporter for a medicine shipment based on shortest transit time.
//
// Key responsibilities:
//   - Validating shipments before dispatch
//   - Selecting optimal transporters using time-based optimization
//   - Ensuring atomic shipment assignment workflow
//
// Business rules:
//   - Shipments must be valid and dispatchable
//   - Transporters must have a free cargo bay matching the temperature envelope
//   - Selection prioritizes minimum transit time (distance divided by speed)
//   - Shipment assignment is atomic
type ShipmentDispatcher struct{}

// NewShipmentDispatcher creates a new ShipmentDispatcher instance.
func NewShipmentDispatcher() ShipmentDispatcher {
	return ShipmentDispatcher{}
}

// Dispatch finds the optimal transporter for a given shipment and executes the
// assignment workflow: the shipment is loaded into a suitable cargo bay and
// its status moves to dispatched.
//
// Returns ErrTransporterNotFound if no suitable transporter exists.
//
// Selection algorithm:
//   - Validates the shipment and each transporter
//   - Checks cargo bay availability against the shipment's temperature envelope
//   - Selects the transporter with minimum transit time
//   - Loads the shipment and assigns the transporter atomically
func (d ShipmentDispatcher) Dispatch(
	s *shipment.Shipment,
	transporters []*transporter.Transporter,
) (*transporter.Transporter, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	if err := s.ValidateDispatch(); err != nil {
		return nil, err
	}

	bestTransporter, err := d.findBestTransporter(s, transporters)
	if err != nil {
		return nil, err
	}

	if err = bestTransporter.LoadShipment(s); err != nil {
		return nil, err
	}

	if err = s.Dispatch(bestTransporter.ID()); err != nil {
		return nil, err
	}

	return bestTransporter, nil
}

// findBestTransporter searches the provided transporters for the optimal one.
//
// Selection criteria:
//   - Validates transporter construction
//   - Checks cargo bay capacity for the shipment's temperature envelope
//   - Optimizes for minimum transit time (shipment distance over speed)
//   - Returns the first transporter in case of ties
func (d ShipmentDispatcher) findBestTransporter(
	s *shipment.Shipment,
	transporters []*transporter.Transporter,
) (*transporter.Transporter, error) {
	var (
		bestTransporter *transporter.Transporter
		bestTime        = math.MaxFloat64
	)

	for _, t := range transporters {
		if err := t.Validate(); err != nil {
			return nil, err
		}

		canCarry, err := t.CanCarry(s)
		if err != nil {
			return nil, err
		}

		if !canCarry {
			continue
		}

		tm := float64(s.Distance()) / float64(t.Speed())
		if tm < bestTime {
			bestTime = tm
			bestTransporter = t
		}
	}

	if bestTransporter == nil {
		return nil, ErrTransporterNotFound
	}

	return bestTransporter, nil
}
