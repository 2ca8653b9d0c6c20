// Package consolidation provides the domain aggregate for intra-province
// collection routes: ordered ward sweeps that move pending orders to the
// province warehouse.
//
// The package includes:
//   - Route: The aggregate root for one consolidation route
//
// Key business rules:
//   - A route serves an ordered, non-empty list of wards in one province
//   - Capacity limits per run are optional
//   - Readiness combines half-capacity thresholds with time thresholds
//   - Lifetime metrics grow with every completed sweep
package consolidation
