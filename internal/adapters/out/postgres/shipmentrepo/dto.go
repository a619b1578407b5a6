// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/shipment"

	"github.com/google/uuid"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with proper indexing
// for efficient querying by status and transporter assignment.
type ShipmentDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TransporterID      *uuid.UUID `gorm:"type:uuid;index"`
	MedicineName       string     `gorm:"type:varchar(255);not null"`
	MinimumTemperature float64
	MaximumTemperature float64
	Distance           int
	Status             int
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps all shipment attributes including the envelope snapshot and optional
// transporter assignment.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var transporterID *uuid.UUID
	if id := aggregate.Transporter(); id != nil {
		raw := id.Bytes()
		transporterID = &raw
	}

	return ShipmentDTO{
		ID:                 aggregate.ID().Bytes(),
		TransporterID:      transporterID,
		MedicineName:       aggregate.MedicineName(),
		MinimumTemperature: aggregate.MinimumTemperature(),
		MaximumTemperature: aggregate.MaximumTemperature(),
		Distance:           aggregate.Distance(),
		Status:             int(aggregate.Status()),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including the envelope snapshot, status,
// and transporter assignment using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	var transporterID *kernel.UUID
	if dto.TransporterID != nil {
		tID, transporterErr := kernel.UUIDFromBytes((*dto.TransporterID)[:])
		if transporterErr != nil {
			return nil, transporterErr
		}

		transporterID = &tID
	}

	return shipment.RestoreShipment(
		id,
		dto.MedicineName,
		dto.MinimumTemperature,
		dto.MaximumTemperature,
		dto.Distance,
		shipment.Status(dto.Status),
		transporterID,
	)
}
