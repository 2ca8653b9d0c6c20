// Package batch provides domain entities and business logic for grouping
// parcels into shipments that travel together between two offices.
//
// The package includes:
//   - Batch: The aggregate root that manages shipment content and lifecycle
//   - Item: A record of one contained order with its weight and volume
//   - Status: A state machine with an explicit transition table
//
// Key business rules:
//   - Capacity limits on weight, volume, and order count are never exceeded
//   - Running counters always equal the sums over contained items
//   - Content is frozen once the batch is sealed
//   - An empty batch cannot be sealed
//   - Cancellation is allowed only before departure and empties the batch
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package batch
