package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Error is the uniform error body returned by every endpoint.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// PartyRequest carries one shipment participant in a request body.
type PartyRequest struct {
	Name    string `json:"name"`
	Address string `json:"address"`
	Email   string `json:"email" validate:"omitempty,email"`
}

// CreateShipmentRequest is the body of POST /api/v1/shipments.
//
// Status and reference are optional: portal flows that know where a record
// belongs (data imports) may set them, everything else starts per the intake
// rules. OwnerRef attaches the shipment to a customer account; leaving it
// empty registers an anonymous quote request.
type CreateShipmentRequest struct {
	TransportMode string       `json:"transportMode" validate:"required"`
	Status        string       `json:"status"`
	Reference     string       `json:"reference"`
	OwnerRef      string       `json:"ownerRef" validate:"omitempty,uuid"`
	Shipper       PartyRequest `json:"shipper"`
	Consignee     PartyRequest `json:"consignee"`
	Notify        PartyRequest `json:"notify"`
	Origin        string       `json:"origin"`
	Destination   string       `json:"destination"`
	Cargo         CargoRequest `json:"cargo"`
}

// CargoRequest carries the cargo description of a request body.
type CargoRequest struct {
	Description   string          `json:"description"`
	WeightKg      decimal.Decimal `json:"weightKg"`
	DeclaredValue decimal.Decimal `json:"declaredValue"`
}

// TransitionShipmentRequest is the body of PATCH /api/v1/shipments/:id/status.
// Target names the requested status by its wire name; the optional patch
// fields update booking details in the same step. Patch fields are pointer
// valued down to the party and cargo subfields so an absent field is
// distinguishable from an explicitly empty one and untouched data survives.
type TransitionShipmentRequest struct {
	Target        string             `json:"target" validate:"required"`
	TransportMode *string            `json:"transportMode"`
	OwnerRef      *string            `json:"ownerRef" validate:"omitempty,uuid"`
	Shipper       *PartyPatchRequest `json:"shipper"`
	Consignee     *PartyPatchRequest `json:"consignee"`
	Notify        *PartyPatchRequest `json:"notify"`
	Origin        *string            `json:"origin"`
	Destination   *string            `json:"destination"`
	Cargo         *CargoPatchRequest `json:"cargo"`
}

// PartyPatchRequest carries a partial update to one shipment participant.
type PartyPatchRequest struct {
	Name    *string `json:"name"`
	Address *string `json:"address"`
	Email   *string `json:"email" validate:"omitempty,email"`
}

// CargoPatchRequest carries a partial update to the cargo description.
type CargoPatchRequest struct {
	Description   *string          `json:"description"`
	WeightKg      *decimal.Decimal `json:"weightKg"`
	DeclaredValue *decimal.Decimal `json:"declaredValue"`
}

// ShipmentResponse is the representation of one shipment returned by write
// endpoints and the reference lookup.
type ShipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	TransportMode string    `json:"transportMode"`
	OwnerRef      string    `json:"ownerRef,omitempty"`
	ShipperName   string    `json:"shipperName"`
	ConsigneeName string    `json:"consigneeName"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ActiveShipmentResponse is one row of GET /api/v1/shipments/active.
type ActiveShipmentResponse struct {
	ID            uuid.UUID `json:"id"`
	Reference     string    `json:"reference"`
	Status        string    `json:"status"`
	TransportMode string    `json:"transportMode"`
	Origin        string    `json:"origin"`
	Destination   string    `json:"destination"`
}

// SequenceUsageResponse is one row of GET /api/v1/shipments/sequence-usage.
type SequenceUsageResponse struct {
	Key  string `json:"key"`
	Used uint64 `json:"used"`
}
