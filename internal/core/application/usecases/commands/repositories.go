// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"freightcore/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// These abstractions ensure data consistency across aggregate boundaries.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// ShipmentRepoFactory provides access to the shipment repository within a transaction.
	ShipmentRepoFactory interface {
		ShipmentRepository() ports.ShipmentRepository
	}

	// AllocatorFactory provides access to the sequence allocator within a transaction.
	AllocatorFactory interface {
		SequenceAllocator() ports.SequenceAllocator
	}

	// ShipmentUoW manages transactions for shipment-only operations.
	// Used when commands only modify existing shipment aggregates.
	ShipmentUoW interface {
		TxManager
		ShipmentRepoFactory
	}

	// ShipmentUoWFactory creates new shipment unit of work instances.
	ShipmentUoWFactory interface {
		Create() ShipmentUoW
	}

	// UoW manages transactions spanning the shipment repository and the
	// sequence allocator. Used by shipment creation, which must allocate a
	// reference and persist the record as one unit.
	UoW interface {
		TxManager
		ShipmentRepoFactory
		AllocatorFactory
	}

	// UoWFactory creates new unit of work instances for creation operations.
	UoWFactory interface {
		Create() UoW
	}
)
