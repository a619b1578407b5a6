// Package ports defines repository interfaces for the medicine shipping domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/transporter"
)

// TransporterRepository defines the persistence contract for transporter aggregates.
// Provides methods for storing, retrieving, and querying transporter entities
// with their complete state including cargo bays.
type TransporterRepository interface {
	// Add persists a new transporter aggregate to storage.
	// The transporter must be valid and not already exist in the repository.
	Add(ctx context.Context, transporter *transporter.Transporter) error

	// Update persists changes to an existing transporter aggregate.
	// The transporter must exist in the repository and be valid.
	Update(ctx context.Context, transporter *transporter.Transporter) error

	// Get retrieves a transporter aggregate by its unique identifier.
	// Returns the complete transporter with all cargo bays and their current state.
	Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error)

	// GetAllAvailable retrieves all transporters that have at least one empty
	// cargo bay. A transporter with every bay occupied cannot accept new
	// shipments and is excluded from dispatch candidates.
	GetAllAvailable(ctx context.Context) ([]*transporter.Transporter, error)
}
