// Package store defines the persistence interfaces for users, places,
// reviews, and amenities, plus the sentinel errors and transaction
// helpers shared by every backend. Callers program against these
// interfaces; the in-memory and postgres backends satisfy them
// interchangeably.
package store
