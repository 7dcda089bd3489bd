// Package shipment provides domain entities and business logic for shipment
// management in the freight operations system. It implements the Shipment
// aggregate root together with the lifecycle state machine, the lifecycle
// field policy and the reference numbering scheme.
//
// The package includes:
//   - Shipment: the aggregate root managing identity, booking details and lifecycle
//   - Status: a state machine over two families (lead and operational statuses)
//   - RequiredFields / RequiresOwner: the pure lifecycle field policy
//   - Reference: the assigned-once, human-readable shipment identifier
//   - TransportMode: the transport category driving mode codes and counter keys
//
// Key business rules:
//   - A reference is assigned exactly once and is immutable thereafter
//   - Status transitions follow the adjacency table in Status; the only
//     cross-family edge is customer_approved -> pending
//   - Lead statuses may stay anonymous; operational statuses require an owner
//     and the full booking data set
//   - Delivered and cancelled are terminal
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package shipment
