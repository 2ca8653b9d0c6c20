// Package transfer provides domain entities for the inter-region transfer
// graph: directed hub-to-hub routes and the disruptions that take them out
// of service.
//
// The package includes:
//   - Route: A directed transfer edge between two regional hubs
//   - Disruption: One outage of a route with its traffic impact snapshot
//   - DisruptionType: Classification of the outage cause
//
// Key business rules:
//   - Edges are directional and disabled independently of their reverse
//   - A route has at most one active disruption at a time
//   - Closing a disruption stamps its actual end time
package transfer
