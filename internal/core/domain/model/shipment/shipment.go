package shipment

import (
	"errors"
	"fmt"
	"time"

	"freightcore/internal/core/domain/model/kernel"
	"freightcore/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment instance was not
	// created through NewShipment or RestoreShipment. This ensures all
	// shipments are properly validated.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment or RestoreShipment")

	// ErrReferenceIsImmutable is returned when a patch attempts to change the
	// reference of an existing shipment. References are assigned exactly once.
	ErrReferenceIsImmutable = errors.New("referenceId is immutable once assigned")
)

// Details groups the booking attributes of a shipment that evolve during the
// quote workflow: the transport mode, the owning customer account, the
// involved parties, the route and the cargo description.
type Details struct {
	TransportMode TransportMode
	OwnerRef      *kernel.UUID
	Shipper       Party
	Consignee     Party
	Notify        Party
	Route         Route
	Cargo         Cargo
}

// Patch carries partial updates to a shipment's details. Nil fields are left
// untouched when the patch is applied, down to the individual party, route
// and cargo subfields. A non-nil Reference is only accepted when it equals
// the already assigned one.
type Patch struct {
	Reference     *Reference
	TransportMode *TransportMode
	OwnerRef      *kernel.UUID
	Shipper       *PartyPatch
	Consignee     *PartyPatch
	Notify        *PartyPatch
	Origin        *string
	Destination   *string
	Cargo         *CargoPatch
}

// PartyPatch updates individual fields of one shipment participant. Nil
// fields keep their current value.
type PartyPatch struct {
	Name    *string
	Address *string
	Email   *string
}

// apply merges the patch onto the current party. The merged result passes
// through NewParty so a patched email is validated against the values that
// will actually be stored.
func (p PartyPatch) apply(current Party) (Party, error) {
	name := current.Name()
	address := current.Address()
	email := current.Email()

	if p.Name != nil {
		name = *p.Name
	}
	if p.Address != nil {
		address = *p.Address
	}
	if p.Email != nil {
		email = *p.Email
	}

	return NewParty(name, address, email)
}

// CargoPatch updates individual cargo fields. Nil fields keep their current
// value.
type CargoPatch struct {
	Description   *string
	WeightKg      *decimal.Decimal
	DeclaredValue *decimal.Decimal
}

func (p CargoPatch) apply(current Cargo) (Cargo, error) {
	description := current.Description()
	weightKg := current.WeightKg()
	declaredValue := current.DeclaredValue()

	if p.Description != nil {
		description = *p.Description
	}
	if p.WeightKg != nil {
		weightKg = *p.WeightKg
	}
	if p.DeclaredValue != nil {
		declaredValue = *p.DeclaredValue
	}

	return NewCargo(description, weightKg, declaredValue)
}

// Shipment is the aggregate root for one booking/quote across its whole life,
// from anonymous quote request to delivery or cancellation.
//
// Shipment maintains these invariants:
//   - The reference is assigned exactly once and never changes afterwards
//   - The status only moves along the edges of the lifecycle state machine
//   - Whatever the current status requires per the lifecycle policy is present
//   - Instances are only created through NewShipment or RestoreShipment
//
// The struct uses private fields to ensure encapsulation; all mutation goes
// through validated methods.
type Shipment struct {
	id        kernel.UUID
	reference Reference
	status    Status
	details   Details
	version   int
	createdAt time.Time
	updatedAt time.Time

	isConstructed bool
}

// NewShipment creates a new Shipment in the given initial status.
//
// The reference must already be allocated and formatted; NewShipment never
// draws sequences itself. The details are validated against the lifecycle
// policy for the initial status: a creation request missing anything the
// status requires is rejected as a whole, so no partially valid shipment can
// ever exist.
//
// Parameters:
//   - id: unique identifier for the shipment
//   - reference: the allocated shipment reference
//   - status: initial lifecycle status
//   - details: booking attributes (mode, owner, parties, route, cargo)
//   - now: creation timestamp
//
// Returns the shipment, or a validation error naming the offending field.
func NewShipment(
	id kernel.UUID,
	reference Reference,
	status Status,
	details Details,
	now time.Time,
) (*Shipment, error) {
	s := &Shipment{
		details:       details,
		createdAt:     now,
		updatedAt:     now,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setReference(reference),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := s.checkPolicy(status); err != nil {
		return nil, err
	}

	return s, nil
}

// RestoreShipment reconstructs a Shipment from persisted state, including its
// optimistic concurrency version. Used by repositories when rehydrating
// records; applies the same invariant checks as NewShipment.
func RestoreShipment(
	id kernel.UUID,
	reference Reference,
	status Status,
	details Details,
	version int,
	createdAt time.Time,
	updatedAt time.Time,
) (*Shipment, error) {
	if version < 0 {
		return nil, errs.NewVersionIsInvalidError(
			"shipment version",
			fmt.Errorf("%d is negative", version),
		)
	}

	s := &Shipment{
		details:       details,
		version:       version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setReference(reference),
		s.setStatus(status),
	); err != nil {
		return nil, err
	}

	return s, nil
}

// Validate ensures the Shipment instance was properly constructed.
// This prevents bypassing validation by directly instantiating the struct.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}
	return nil
}

// IsEqual compares two shipments by their unique identifiers.
func (s *Shipment) IsEqual(other *Shipment) bool {
	return other != nil && s.id.IsEqual(other.id)
}

// ID returns the shipment's unique identifier.
func (s *Shipment) ID() kernel.UUID {
	return s.id
}

// Reference returns the assigned shipment reference.
func (s *Shipment) Reference() Reference {
	return s.reference
}

// Status returns the current lifecycle status.
func (s *Shipment) Status() Status {
	return s.status
}

// TransportMode returns the transport category of the shipment.
func (s *Shipment) TransportMode() TransportMode {
	return s.details.TransportMode
}

// OwnerRef returns the owning customer account, or nil for anonymous leads.
func (s *Shipment) OwnerRef() *kernel.UUID {
	return s.details.OwnerRef
}

// Shipper returns the shipper party.
func (s *Shipment) Shipper() Party {
	return s.details.Shipper
}

// Consignee returns the consignee party.
func (s *Shipment) Consignee() Party {
	return s.details.Consignee
}

// Notify returns the notify party, if any.
func (s *Shipment) Notify() Party {
	return s.details.Notify
}

// Route returns the origin/destination route.
func (s *Shipment) Route() Route {
	return s.details.Route
}

// Cargo returns the cargo description.
func (s *Shipment) Cargo() Cargo {
	return s.details.Cargo
}

// Version returns the optimistic concurrency version the shipment was loaded
// with. Repositories use it for conditional updates.
func (s *Shipment) Version() int {
	return s.version
}

// CreatedAt returns the creation timestamp.
func (s *Shipment) CreatedAt() time.Time {
	return s.createdAt
}

// UpdatedAt returns the timestamp of the last accepted change.
func (s *Shipment) UpdatedAt() time.Time {
	return s.updatedAt
}

// ApplyPatch merges the non-nil fields of patch onto the shipment's details.
// The merge is field-granular: a patch naming only a shipper email or only a
// route origin leaves the participant's and route's other fields untouched.
//
// The reference is immutable: a patch carrying a reference different from the
// assigned one is rejected with ErrReferenceIsImmutable regardless of its
// other contents, and nothing is applied. Supplying the current reference is
// tolerated so callers may echo back the record they fetched. On any merge
// error the shipment is left unchanged.
//
// ApplyPatch performs no policy validation itself; callers validate the
// merged result against the target status via TransitionTo.
func (s *Shipment) ApplyPatch(patch Patch) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if patch.Reference != nil && !patch.Reference.IsEqual(s.reference) {
		return errs.NewValueIsInvalidErrorWithCause("referenceId", ErrReferenceIsImmutable)
	}

	merged := s.details

	if patch.TransportMode != nil {
		if err := patch.TransportMode.Validate(); err != nil {
			return err
		}
		merged.TransportMode = *patch.TransportMode
	}
	if patch.OwnerRef != nil {
		if err := patch.OwnerRef.Validate(); err != nil {
			return err
		}
		merged.OwnerRef = patch.OwnerRef
	}

	var err error
	if patch.Shipper != nil {
		if merged.Shipper, err = patch.Shipper.apply(merged.Shipper); err != nil {
			return err
		}
	}
	if patch.Consignee != nil {
		if merged.Consignee, err = patch.Consignee.apply(merged.Consignee); err != nil {
			return err
		}
	}
	if patch.Notify != nil {
		if merged.Notify, err = patch.Notify.apply(merged.Notify); err != nil {
			return err
		}
	}

	if patch.Origin != nil || patch.Destination != nil {
		origin := merged.Route.Origin()
		destination := merged.Route.Destination()
		if patch.Origin != nil {
			origin = *patch.Origin
		}
		if patch.Destination != nil {
			destination = *patch.Destination
		}
		merged.Route = NewRoute(origin, destination)
	}

	if patch.Cargo != nil {
		if merged.Cargo, err = patch.Cargo.apply(merged.Cargo); err != nil {
			return err
		}
	}

	s.details = merged
	return nil
}

// TransitionTo advances the shipment to the target status.
//
// The transition must be a legal edge of the lifecycle state machine, and the
// shipment's merged details must satisfy the lifecycle policy for the target
// status. On any violation the shipment is left unchanged.
//
// Returns:
//   - IllegalTransitionError if the edge is not legal
//   - ValueIsRequiredError naming the field if the policy is not satisfied
func (s *Shipment) TransitionTo(target Status, now time.Time) error {
	if err := s.Validate(); err != nil {
		return err
	}

	if err := s.status.CanTransitionTo(target); err != nil {
		return err
	}

	if err := s.checkPolicy(target); err != nil {
		return err
	}

	s.status = target
	s.updatedAt = now
	return nil
}

// checkPolicy validates the shipment's details against the lifecycle policy
// for the given status.
func (s *Shipment) checkPolicy(status Status) error {
	if RequiresOwner(status) && s.details.OwnerRef == nil {
		return errs.NewValueIsRequiredError(string(FieldOwnerRef))
	}

	for _, field := range RequiredFields(status) {
		if !s.fieldPresent(field) {
			return errs.NewValueIsRequiredError(string(field))
		}
	}

	return nil
}

// fieldPresent reports whether the named field is filled in.
func (s *Shipment) fieldPresent(field Field) bool {
	switch field {
	case FieldOwnerRef:
		return s.details.OwnerRef != nil
	case FieldTransportMode:
		return s.details.TransportMode.Validate() == nil
	case FieldShipperName:
		return s.details.Shipper.Name() != ""
	case FieldShipperAddress:
		return s.details.Shipper.Address() != ""
	case FieldShipperEmail:
		return s.details.Shipper.Email() != ""
	case FieldConsigneeName:
		return s.details.Consignee.Name() != ""
	case FieldConsigneeAddress:
		return s.details.Consignee.Address() != ""
	case FieldOrigin:
		return s.details.Route.Origin() != ""
	case FieldDestination:
		return s.details.Route.Destination() != ""
	default:
		return false
	}
}

func (s *Shipment) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Shipment) setReference(reference Reference) error {
	if err := reference.Validate(); err != nil {
		return err
	}
	s.reference = reference
	return nil
}

func (s *Shipment) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	s.status = status
	return nil
}
