package shipment

// Route holds the origin and destination of a shipment. Leads may leave
// either end open; operational statuses require both, enforced by the
// lifecycle policy rather than by the value object.
//
// Route is immutable. The zero value is a valid "route not yet known".
type Route struct {
	origin      string
	destination string
}

// NewRoute creates a Route. Either end may be empty while the shipment is
// still in the quote workflow.
func NewRoute(origin, destination string) Route {
	return Route{origin: origin, destination: destination}
}

// Origin returns the route origin, e.g. "Bremerhaven, DE".
func (r Route) Origin() string { return r.origin }

// Destination returns the route destination, e.g. "Dar es Salaam, TZ".
func (r Route) Destination() string { return r.destination }
