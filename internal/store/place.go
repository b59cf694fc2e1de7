package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
)

// PlaceStore defines the interface for place data persistence, including
// the place's amenity set.
type PlaceStore interface {
	// Create saves a new place together with its amenity associations.
	// Returns ErrIDExists if the identifier collides with a stored place.
	Create(ctx context.Context, place *domain.Place) error

	// GetByID retrieves a place, amenity IDs included.
	// Returns ErrPlaceNotFound if the place does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error)

	// List returns a snapshot of all stored places, ordered by ID.
	List(ctx context.Context) ([]*domain.Place, error)

	// ListByOwner returns all places owned by the given user, ordered by
	// ID. A user without places yields an empty slice, not an error.
	ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error)

	// Update persists the place's current state, replacing the stored
	// amenity set with the place's current one.
	// Returns ErrPlaceNotFound if the place does not exist.
	Update(ctx context.Context, place *domain.Place) error

	// Delete removes a place by its ID, along with its amenity
	// associations. Reviews of the place are not cascaded here; the
	// facade deletes them explicitly.
	// Returns ErrPlaceNotFound if the place does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a PlaceStore bound to the provided transaction.
	WithTx(tx *sql.Tx) PlaceStore
}
