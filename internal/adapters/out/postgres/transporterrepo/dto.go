// Package transporterrepo provides data transfer objects and mapping functions for transporter persistence.
// This package implements the repository pattern for the transporter domain aggregate, handling
// the conversion between domain entities and database representations.
package transporterrepo

import (
	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/transporter"

	"github.com/google/uuid"
)

// TransporterDTO represents the database structure for persisting transporter aggregates.
// Maps transporter domain entities to relational database tables with proper foreign key relationships.
type TransporterDTO struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey"`
	Name      string        `gorm:"type:varchar(255);not null"`
	Speed     int           `gorm:"type:int;not null"`
	CargoBays []CargoBayDTO `gorm:"foreignKey:TransporterID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for transporter entities.
// Overrides GORM's default naming convention to use "transporters" instead of "transporter_dtos".
func (TransporterDTO) TableName() string {
	return "transporters"
}

// CargoBayDTO represents the database structure for persisting cargo bay entities.
// Links to transporter via foreign key and optionally references the held shipment.
// The maintained temperature range is flattened into minimum and maximum columns.
type CargoBayDTO struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primaryKey"`
	TransporterID      uuid.UUID  `gorm:"type:uuid;not null;index"`
	Name               string     `gorm:"type:varchar(255);not null"`
	MinimumTemperature float64    `gorm:"not null"`
	MaximumTemperature float64    `gorm:"not null"`
	ShipmentID         *uuid.UUID `gorm:"type:uuid;index"`
}

// TableName specifies the database table name for cargo bay entities.
// Overrides GORM's default naming convention to use "cargo_bays" instead of "cargo_bay_dtos".
func (CargoBayDTO) TableName() string {
	return "cargo_bays"
}

// fromDomain converts a transporter domain aggregate to its database representation.
// Maps all aggregate entities including cargo bays and their current occupancy.
func fromDomain(aggregate *transporter.Transporter) TransporterDTO {
	transporterID := aggregate.ID().Bytes()
	cargoBays := make([]CargoBayDTO, 0, len(aggregate.CargoBays()))

	for _, bay := range aggregate.CargoBays() {
		var shipmentID *uuid.UUID
		if bay.ShipmentID() != nil {
			raw := bay.ShipmentID().Bytes()
			shipmentID = &raw
		}

		cargoBays = append(cargoBays, CargoBayDTO{
			ID:                 bay.ID().Bytes(),
			TransporterID:      transporterID,
			Name:               bay.Name(),
			MinimumTemperature: bay.TemperatureRange().Minimum(),
			MaximumTemperature: bay.TemperatureRange().Maximum(),
			ShipmentID:         shipmentID,
		})
	}

	return TransporterDTO{
		ID:        transporterID,
		Name:      aggregate.Name(),
		Speed:     aggregate.Speed(),
		CargoBays: cargoBays,
	}
}

// toDomain converts a database DTO to a transporter domain aggregate.
// Reconstructs the complete aggregate including all cargo bays using RestoreTransporter.
func toDomain(dto TransporterDTO) (*transporter.Transporter, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	// Convert cargo bay DTOs to domain objects
	cargoBays := make([]*transporter.CargoBay, 0, len(dto.CargoBays))
	for _, bayDto := range dto.CargoBays {
		bay, bayErr := cargoBayToDomain(bayDto)
		if bayErr != nil {
			return nil, bayErr
		}
		cargoBays = append(cargoBays, bay)
	}

	return transporter.RestoreTransporter(id, dto.Name, dto.Speed, cargoBays)
}

// cargoBayToDomain converts a cargo bay DTO to domain entity.
// Uses RestoreCargoBay to reconstruct the entity with its persisted state.
func cargoBayToDomain(dto CargoBayDTO) (*transporter.CargoBay, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	temperatureRange, err := kernel.NewTemperatureRange(dto.MinimumTemperature, dto.MaximumTemperature)
	if err != nil {
		return nil, err
	}

	var shipmentID *kernel.UUID
	if dto.ShipmentID != nil {
		sID, shipmentErr := kernel.UUIDFromBytes((*dto.ShipmentID)[:])
		if shipmentErr != nil {
			return nil, shipmentErr
		}
		shipmentID = &sID
	}

	return transporter.RestoreCargoBay(id, dto.Name, temperatureRange, shipmentID)
}
