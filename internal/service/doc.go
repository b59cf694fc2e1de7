// Package service contains the application-specific use cases and business
// logic. It orchestrates interactions between domain objects and repositories
// (defined in internal/store) to fulfill application features.
//
// The central type is Facade, which coordinates the per-entity stores and
// enforces the rules that span more than one entity: owner and amenity
// references on places, the self-review and one-review-per-pair policies,
// and the ownership checks on destructive operations. Handlers talk to the
// Facade only; they never reach into stores directly.
//
// Error handling follows the sentinel taxonomy in errors.go: reference
// failures (a related entity does not exist) wrap ErrReference, rule
// violations wrap ErrPolicy, and store-level conditions (not found,
// duplicates) pass through unchanged so callers can branch with errors.Is.
// The API layer maps each family to its HTTP status code.
package service
