package transporterrepo

import (
	"context"
	"errors"

	"medship/internal/core/domain/model/kernel"
	"medship/internal/core/domain/model/transporter"
	"medship/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormTransporterRepository implements TransporterRepository using GORM.
type GormTransporterRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormTransporterRepository creates a new GORM transporter repository.
func NewGormTransporterRepository(db *gorm.DB, tracker aggregateTracker) *GormTransporterRepository {
	return &GormTransporterRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new transporter to the database.
func (r *GormTransporterRepository) Add(ctx context.Context, aggregate *transporter.Transporter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing transporter to the database.
func (r *GormTransporterRepository) Update(ctx context.Context, aggregate *transporter.Transporter) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)

	// Use Session with FullSaveAssociations to properly update nested associations
	result := r.db.WithContext(ctx).Session(&gorm.Session{FullSaveAssociations: true}).Save(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a transporter by ID.
func (r *GormTransporterRepository) Get(ctx context.Context, id kernel.UUID) (*transporter.Transporter, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto TransporterDTO
	if err := r.db.WithContext(ctx).Preload("CargoBays").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("transporter", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllAvailable retrieves all transporters that can accept new shipments.
// A transporter is considered available when at least one of its cargo bays
// is empty. Transporters with every bay occupied are excluded from dispatch
// candidates; whether an empty bay actually suits a shipment's temperature
// envelope is decided by the domain model, not this query.
//
// Example:
//
//	availableTransporters, err := repo.GetAllAvailable(ctx)
//	if err != nil {
//		return fmt.Errorf("failed to get available transporters: %w", err)
//	}
//	for _, transporter := range availableTransporters {
//		fmt.Printf("Available transporter: %s\n", transporter.Name())
//	}
func (r *GormTransporterRepository) GetAllAvailable(ctx context.Context) ([]*transporter.Transporter, error) {
	var dtos []TransporterDTO
	// Join with cargo bays to find transporters with at least one empty bay
	if err := r.db.WithContext(ctx).
		Preload("CargoBays").
		Table("transporters").
		Select("DISTINCT transporters.*").
		Joins("JOIN cargo_bays ON transporters.id = cargo_bays.transporter_id").
		Where("cargo_bays.shipment_id IS NULL").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	transporters := make([]*transporter.Transporter, 0, len(dtos))
	for _, dto := range dtos {
		t, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		transporters = append(transporters, t)
	}

	return transporters, nil
}
