// Package shipmentrepo provides data transfer objects and mapping functions for shipment persistence.
// This package implements the repository pattern for the shipment domain aggregate, handling
// the conversion between domain entities and database representations.
package shipmentrepo

import (
	"time"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/core/domain/model/shipment"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ShipmentDTO represents the database structure for persisting shipment aggregates.
// Maps shipment domain entities to relational database tables with a unique
// index on the assigned reference and a version column for conditional updates.
type ShipmentDTO struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Reference          string          `gorm:"type:varchar(64);uniqueIndex;not null"`
	Status             int             `gorm:"type:smallint;not null;index"`
	TransportMode      int             `gorm:"type:smallint;not null"`
	OwnerRef           *uuid.UUID      `gorm:"type:uuid;index"`
	Shipper            PartyDTO        `gorm:"embedded;embeddedPrefix:shipper_"`
	Consignee          PartyDTO        `gorm:"embedded;embeddedPrefix:consignee_"`
	Notify             PartyDTO        `gorm:"embedded;embeddedPrefix:notify_"`
	Origin             string          `gorm:"type:varchar(255)"`
	Destination        string          `gorm:"type:varchar(255)"`
	CargoDescription   string          `gorm:"type:text"`
	CargoWeightKg      decimal.Decimal `gorm:"type:numeric(12,3)"`
	CargoDeclaredValue decimal.Decimal `gorm:"type:numeric(14,2)"`
	Version            int             `gorm:"type:int;not null"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName specifies the database table name for shipment entities.
// Overrides GORM's default naming convention to use "shipments".
func (ShipmentDTO) TableName() string {
	return "shipments"
}

// PartyDTO represents an embedded shipment party within the shipments table.
type PartyDTO struct {
	Name    string `gorm:"type:varchar(255)"`
	Address string `gorm:"type:varchar(512)"`
	Email   string `gorm:"type:varchar(255)"`
}

// fromDomain converts a shipment domain aggregate to its database representation.
// Maps all booking attributes including the optional owning customer account.
func fromDomain(aggregate *shipment.Shipment) ShipmentDTO {
	var ownerRef *uuid.UUID
	if owner := aggregate.OwnerRef(); owner != nil {
		raw := owner.Bytes()
		ownerRef = &raw
	}

	return ShipmentDTO{
		ID:            aggregate.ID().Bytes(),
		Reference:     aggregate.Reference().Value(),
		Status:        int(aggregate.Status()),
		TransportMode: int(aggregate.TransportMode()),
		OwnerRef:      ownerRef,
		Shipper: PartyDTO{
			Name:    aggregate.Shipper().Name(),
			Address: aggregate.Shipper().Address(),
			Email:   aggregate.Shipper().Email(),
		},
		Consignee: PartyDTO{
			Name:    aggregate.Consignee().Name(),
			Address: aggregate.Consignee().Address(),
			Email:   aggregate.Consignee().Email(),
		},
		Notify: PartyDTO{
			Name:    aggregate.Notify().Name(),
			Address: aggregate.Notify().Address(),
			Email:   aggregate.Notify().Email(),
		},
		Origin:             aggregate.Route().Origin(),
		Destination:        aggregate.Route().Destination(),
		CargoDescription:   aggregate.Cargo().Description(),
		CargoWeightKg:      aggregate.Cargo().WeightKg(),
		CargoDeclaredValue: aggregate.Cargo().DeclaredValue(),
		Version:            aggregate.Version(),
		CreatedAt:          aggregate.CreatedAt(),
		UpdatedAt:          aggregate.UpdatedAt(),
	}
}

// toDomain converts a database DTO to a shipment domain aggregate.
// Reconstructs the complete aggregate including its version using RestoreShipment.
func toDomain(dto ShipmentDTO) (*shipment.Shipment, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	reference, err := shipment.ReferenceFromString(dto.Reference)
	if err != nil {
		return nil, err
	}

	var ownerRef *kernel.UUID
	if dto.OwnerRef != nil {
		owner, ownerErr := kernel.UUIDFromBytes((*dto.OwnerRef)[:])
		if ownerErr != nil {
			return nil, ownerErr
		}
		ownerRef = &owner
	}

	shipper, err := shipment.NewParty(dto.Shipper.Name, dto.Shipper.Address, dto.Shipper.Email)
	if err != nil {
		return nil, err
	}

	consignee, err := shipment.NewParty(dto.Consignee.Name, dto.Consignee.Address, dto.Consignee.Email)
	if err != nil {
		return nil, err
	}

	notify, err := shipment.NewParty(dto.Notify.Name, dto.Notify.Address, dto.Notify.Email)
	if err != nil {
		return nil, err
	}

	cargo, err := shipment.NewCargo(dto.CargoDescription, dto.CargoWeightKg, dto.CargoDeclaredValue)
	if err != nil {
		return nil, err
	}

	return shipment.RestoreShipment(
		id,
		reference,
		shipment.Status(dto.Status),
		shipment.Details{
			TransportMode: shipment.TransportMode(dto.TransportMode),
			OwnerRef:      ownerRef,
			Shipper:       shipper,
			Consignee:     consignee,
			Notify:        notify,
			Route:         shipment.NewRoute(dto.Origin, dto.Destination),
			Cargo:         cargo,
		},
		dto.Version,
		dto.CreatedAt,
		dto.UpdatedAt,
	)
}
