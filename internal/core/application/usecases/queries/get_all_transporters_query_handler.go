package queries

import (
	"context"

	"medship/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetAllTransportersQueryHandler retrieves all transporter information from the database.
// Uses direct SQL queries for optimal read performance in the CQRS pattern.
//
// Example:
//
//	handler := NewGetAllTransportersQueryHandler(db)
//	query := NewGetAllTransportersQuery()
//
//	transporters, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get transporters: %v", err)
//	    return err
//	}
//
//	fmt.Printf("Found %d transporters\n", len(transporters))
type GetAllTransportersQueryHandler struct {
	db *gorm.DB
}

// NewGetAllTransportersQueryHandler creates a handler for transporter retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetAllTransportersQueryHandler(db *gorm.DB) GetAllTransportersQueryHandler {
	return GetAllTransportersQueryHandler{db: db}
}

// Handle executes the query to retrieve all transporters.
// Returns a slice of transporter read models sorted by name, each carrying
// its cargo bay occupancy counts. Converts database types to domain types
// for consistency.
func (h GetAllTransportersQueryHandler) Handle(
	ctx context.Context,
	query GetAllTransportersQuery,
) ([]GetAllTransportersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	transporters := make([]GetAllTransportersQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			t.id,
			t.name,
			t.speed,
			COUNT(cb.id) FILTER (WHERE cb.shipment_id IS NULL) AS free_cargo_bays,
			COUNT(cb.id) AS total_cargo_bays
		FROM transporters t
		LEFT JOIN cargo_bays cb ON cb.transporter_id = t.id
		GROUP BY t.id, t.name, t.speed
		ORDER BY t.name
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetAllTransportersQueryResponse
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.Name,
			&response.Speed,
			&response.FreeCargoBays,
			&response.TotalCargoBays,
		)
		if err != nil {
			return nil, err
		}

		transporterID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = transporterID

		transporters = append(transporters, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return transporters, nil
}
