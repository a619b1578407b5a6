package queries

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"
	"medship/internal/pkg/guard"
)

var (
	ErrGetUndeliveredShipmentsQueryIsNotConstructed = errors.New(
		"GetUndeliveredShipmentsQuery must be created via NewGetUndeliveredShipmentsQuery constructor",
	)
)

// GetUndeliveredShipmentsQuery retrieves all shipments still in transit or
// awaiting dispatch. Returns shipments in "created" or "dispatched" status
// for monitoring and management.
//
// Example:
//
//	query := NewGetUndeliveredShipmentsQuery()
//	handler := NewGetUndeliveredShipmentsQueryHandler(db)
//
//	shipments, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get undelivered shipments: %w", err)
//	}
//
//	fmt.Printf("Found %d shipments awaiting delivery\n", len(shipments))
//	for _, s := range shipments {
//	    fmt.Printf("Shipment %s (%s): %d units to go\n", s.ID, s.MedicineName, s.Distance)
//	}
type GetUndeliveredShipmentsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetUndeliveredShipmentsQuery creates a query to retrieve undelivered shipments.
// This is a parameterless query that fetches all non-delivered shipments.
func NewGetUndeliveredShipmentsQuery() GetUndeliveredShipmentsQuery {
	return GetUndeliveredShipmentsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetUndeliveredShipmentsQueryIsNotConstructed if validation fails.
func (q GetUndeliveredShipmentsQuery) Validate() error {
	return q.guard.Validate(ErrGetUndeliveredShipmentsQueryIsNotConstructed)
}

// GetUndeliveredShipmentsQueryResponse represents undelivered shipment information.
// Contains essential data for transit tracking and dispatch decisions.
//
// Example:
//
//	response := GetUndeliveredShipmentsQueryResponse{
//	    ID:           shipmentID,
//	    MedicineName: "Glargine 100U/ml",
//	    Status:       shipment.Dispatched,
//	    Distance:     7,
//	}
type GetUndeliveredShipmentsQueryResponse struct {
	ID           kernel.UUID
	MedicineName string
	Status       shipment.Status
	Distance     int
}
