package shipmentrepo

import (
	"context"
	"errors"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"
	"freightcore/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormShipmentRepository implements ShipmentRepository using GORM.
type GormShipmentRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormShipmentRepository creates a new GORM shipment repository.
func NewGormShipmentRepository(db *gorm.DB, tracker aggregateTracker) *GormShipmentRepository {
	return &GormShipmentRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new shipment to the database. A duplicate on the reference
// unique index surfaces as a ReferenceCollisionError so the caller can retry
// with a freshly allocated sequence.
func (r *GormShipmentRepository) Add(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewReferenceCollisionError(aggregate.Reference().Value(), err)
		}
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing shipment using a version-conditional write.
// The row is only replaced when its stored version still equals the version
// the aggregate was loaded with; the write bumps the version by one.
func (r *GormShipmentRepository) Update(ctx context.Context, aggregate *shipment.Shipment) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = aggregate.Version() + 1

	result := r.db.WithContext(ctx).
		Model(&ShipmentDTO{}).
		Where("id = ? AND version = ?", dto.ID, aggregate.Version()).
		Select("*").Omit("id", "created_at").
		Updates(&dto)
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		// Either the row is gone or another writer bumped the version first.
		var current ShipmentDTO
		if err := r.db.WithContext(ctx).First(&current, "id = ?", dto.ID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return errs.NewObjectNotFoundError("shipment", aggregate.ID().String())
			}
			return err
		}
		return errs.NewConcurrentModificationError("shipment", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a shipment by ID.
func (r *GormShipmentRepository) Get(ctx context.Context, id kernel.UUID) (*shipment.Shipment, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByReference retrieves a shipment by its assigned reference.
func (r *GormShipmentRepository) GetByReference(
	ctx context.Context,
	reference shipment.Reference,
) (*shipment.Shipment, error) {
	if err := reference.Validate(); err != nil {
		return nil, err
	}

	var dto ShipmentDTO
	if err := r.db.WithContext(ctx).First(&dto, "reference = ?", reference.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("shipment", reference.Value())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllActive retrieves all shipments in a non-terminal operational status.
func (r *GormShipmentRepository) GetAllActive(ctx context.Context) ([]*shipment.Shipment, error) {
	var dtos []ShipmentDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "status BETWEEN ? AND ?", shipment.Pending, shipment.Cleared).
		Error
	if err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

// GetAllInStatus retrieves all shipments currently in the given status.
func (r *GormShipmentRepository) GetAllInStatus(
	ctx context.Context,
	status shipment.Status,
) ([]*shipment.Shipment, error) {
	if err := status.Validate(); err != nil {
		return nil, err
	}

	var dtos []ShipmentDTO
	if err := r.db.WithContext(ctx).Find(&dtos, "status = ?", status).Error; err != nil {
		return nil, err
	}

	return r.toDomainAll(dtos)
}

func (r *GormShipmentRepository) toDomainAll(dtos []ShipmentDTO) ([]*shipment.Shipment, error) {
	shipments := make([]*shipment.Shipment, 0, len(dtos))
	for _, dto := range dtos {
		s, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		shipments = append(shipments, s)
	}

	return shipments, nil
}
