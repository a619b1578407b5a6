// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return optimized read models for specific use cases.
package queries

import (
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/pkg/guard"
)

var (
	ErrGetAllTransportersQueryIsNotConstructed = errors.New(
		"GetAllTransportersQuery must be created via NewGetAllTransportersQuery constructor",
	)
)

// GetAllTransportersQuery retrieves information about all transporters in the system.
// Returns transporter identities, speeds, and cargo bay occupancy for monitoring
// and dispatching.
//
// Example:
//
//	query := NewGetAllTransportersQuery()
//	handler := NewGetAllTransportersQueryHandler(db)
//
//	transporters, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to retrieve transporters: %w", err)
//	}
//
//	for _, t := range transporters {
//	    fmt.Printf("Transporter %s: %d of %d bays free\n", t.Name, t.FreeCargoBays, t.TotalCargoBays)
//	}
type GetAllTransportersQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAllTransportersQuery creates a query to retrieve all transporters.
// This is a parameterless query that fetches the complete transporter list.
func NewGetAllTransportersQuery() GetAllTransportersQuery {
	return GetAllTransportersQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetAllTransportersQueryIsNotConstructed if validation fails.
func (q GetAllTransportersQuery) Validate() error {
	return q.guard.Validate(ErrGetAllTransportersQueryIsNotConstructed)
}

// GetAllTransportersQueryResponse represents transporter information in the read model.
// Contains essential transporter data for display and dispatch decisions.
//
// Example:
//
//	response := GetAllTransportersQueryResponse{
//	    ID:             transporterID,
//	    Name:           "Cold Chain Truck",
//	    Speed:          3,
//	    FreeCargoBays:  1,
//	    TotalCargoBays: 2,
//	}
type GetAllTransportersQueryResponse struct {
	ID             kernel.UUID
	Name           string
	Speed          int
	FreeCargoBays  int
	TotalCargoBays int
}
