package ports

import (
	"context"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"
)

// ShipmentRepository defines the persistence contract for shipment aggregates.
// Provides methods for storing, retrieving, and querying shipment entities
// based on their status and transporter assignment.
type ShipmentRepository interface {
	// Add persists a new shipment aggregate to storage.
	// The shipment must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *shipment.Shipment) error

	// Update persists changes to an existing shipment aggregate.
	// The shipment must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *shipment.Shipment) error

	// Get retrieves a shipment aggregate by its unique identifier.
	// Returns the complete shipment with its current status and assignment.
	Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error)

	// GetFirstInCreatedStatus retrieves the first shipment in Created status.
	// Used for dispatch workflows to find pending shipments.
	GetFirstInCreatedStatus(ctx context.Context) (*shipment.Shipment, error)

	// GetAllInDispatchedStatus retrieves all shipments currently in transit.
	// Returns shipments that are dispatched but not yet delivered.
	GetAllInDispatchedStatus(ctx context.Context) ([]*shipment.Shipment, error)
}
