// Package office provides the domain entity for postal network nodes: ward
// posts and warehouses, province posts and warehouses, and regional hubs.
//
// The package includes:
//   - Office: The entity that represents a single node of the network hierarchy
//   - Type: An enum classifying the office within the hierarchy
//
// Key business rules:
//   - Every office belongs to exactly one administrative region
//   - Hubs carry no province or ward codes; ward offices carry both
//   - Non-hub offices link to a parent office one level up the hierarchy
//
// The package follows Domain-Driven Design principles, providing rich domain
// behavior, encapsulation, and validation to ensure business rules are enforced.
package office
