// Package order provides domain entities and business logic for parcel
// management in the postal network. It implements the Order aggregate root
// with lifecycle management and state transitions.
//
// The package includes:
//   - Order: The aggregate root that manages parcel identity, placement, and lifecycle
//   - Status: A state machine with an explicit transition table
//
// Key business rules:
//   - Orders must have a valid identifier, tracking number, and positive weight
//   - Dimensions are optional but must be supplied together
//   - An order belongs to at most one batch at a time
//   - Consolidation moves an order to its province warehouse and stamps the time
//   - Orders released from a cancelled batch return to the origin office
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package order
