package shipment

// Field names a shipment attribute the lifecycle policy can require.
// Values match the wire names used in validation errors so callers can map
// a rejection back to the exact input field.
type Field string

const (
	FieldOwnerRef         Field = "ownerRef"
	FieldTransportMode    Field = "transportMode"
	FieldShipperName      Field = "shipper.name"
	FieldShipperAddress   Field = "shipper.address"
	FieldShipperEmail     Field = "shipper.email"
	FieldConsigneeName    Field = "consignee.name"
	FieldConsigneeAddress Field = "consignee.address"
	FieldOrigin           Field = "origin"
	FieldDestination      Field = "destination"
)

// RequiredFields returns the fields that must be present and well-formed for
// a shipment to sit in the given status.
//
// Lead statuses only need a transport mode and a shipper contact name: a
// quote request must at least say who is asking and what kind of shipment
// they want. Every operational status requires the full booking data set,
// including the owning customer account.
//
// The lookup is pure; it never touches persistence.
func RequiredFields(status Status) []Field {
	if status.IsLead() {
		return []Field{
			FieldTransportMode,
			FieldShipperName,
		}
	}

	if status.IsOperational() {
		return []Field{
			FieldOwnerRef,
			FieldTransportMode,
			FieldShipperName,
			FieldShipperAddress,
			FieldShipperEmail,
			FieldConsigneeName,
			FieldConsigneeAddress,
			FieldOrigin,
			FieldDestination,
		}
	}

	return nil
}

// RequiresOwner reports whether the given status requires the shipment to be
// attached to a customer account. Lead statuses may stay anonymous; every
// operational status must have an owner.
func RequiresOwner(status Status) bool {
	return status.IsOperational()
}
