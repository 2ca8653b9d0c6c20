// Package services provides domain services that orchestrate business
// operations across multiple domain entities in the postal network. It
// implements workflows that don't naturally belong to a single aggregate root.
//
// The package includes:
//   - RoutePlanner: Computes parcel paths over the office hierarchy and the
//     hub transfer graph
//   - BatchPacker: Packs orders into batches using first-fit-decreasing
//
// Domain services coordinate between aggregates, implementing business logic
// that spans multiple bounded contexts following Domain-Driven Design principles.
package services
