package queries

import (
	"context"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetUndeliveredShipmentsQueryHandler retrieves shipments pending delivery from the database.
// Filters out delivered shipments to provide active transit workload visibility.
//
// Example:
//
//	handler := NewGetUndeliveredShipmentsQueryHandler(db)
//	query := NewGetUndeliveredShipmentsQuery()
//
//	pendingShipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get undelivered shipments: %v", err)
//	    return err
//	}
//
//	if len(pendingShipments) > 0 {
//	    fmt.Printf("%d shipments awaiting delivery\n", len(pendingShipments))
//	}
type GetUndeliveredShipmentsQueryHandler struct {
	db *gorm.DB
}

// NewGetUndeliveredShipmentsQueryHandler creates a handler for undelivered shipment queries.
// Requires a GORM database connection for query execution.
func NewGetUndeliveredShipmentsQueryHandler(db *gorm.DB) GetUndeliveredShipmentsQueryHandler {
	return GetUndeliveredShipmentsQueryHandler{db: db}
}

// Handle executes the query to retrieve all undelivered shipments.
// Returns shipments in "created" or "dispatched" status, excluding completed
// deliveries. Results are sorted by shipment ID for consistent output.
func (h GetUndeliveredShipmentsQueryHandler) Handle(
	ctx context.Context,
	query GetUndeliveredShipmentsQuery,
) ([]GetUndeliveredShipmentsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	shipments := make([]GetUndeliveredShipmentsQueryResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			medicine_name,
			status,
			distance
		FROM shipments
		WHERE status != ?
		ORDER BY id
	`, shipment.Delivered).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var response GetUndeliveredShipmentsQueryResponse
		var status int
		var id uuid.UUID

		err = rows.Scan(
			&id,
			&response.MedicineName,
			&status,
			&response.Distance,
		)
		if err != nil {
			return nil, err
		}

		shipmentID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		response.ID = shipmentID
		response.Status = shipment.Status(status)

		shipments = append(shipments, response)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return shipments, nil
}
