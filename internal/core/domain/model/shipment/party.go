package shipment

import (
	"fmt"
	"net/mail"

	"freightcore/internal/pkg/errs"
)

// Party identifies one participant of a shipment: the shipper, the consignee
// or the notify contact. Which of its fields must be filled in depends on the
// shipment status; the value object itself only rejects malformed data.
//
// Party is immutable. The zero value is a valid "absent party".
type Party struct {
	name    string
	address string
	email   string
}

// NewParty creates a Party from its raw fields. Any field may be empty; a
// non-empty email must be a parseable address.
func NewParty(name, address, email string) (Party, error) {
	if email != "" {
		if _, err := mail.ParseAddress(email); err != nil {
			return Party{}, errs.NewValueIsInvalidErrorWithCause(
				"email",
				fmt.Errorf("%q is not a valid email address", email),
			)
		}
	}

	return Party{name: name, address: address, email: email}, nil
}

// Name returns the party's name.
func (p Party) Name() string { return p.name }

// Address returns the party's postal address.
func (p Party) Address() string { return p.address }

// Email returns the party's contact email.
func (p Party) Email() string { return p.email }

// IsZero reports whether no field of the party is filled in.
func (p Party) IsZero() bool {
	return p.name == "" && p.address == "" && p.email == ""
}
