package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
)

// AmenityStore defines the interface for amenity data persistence.
type AmenityStore interface {
	// Create saves a new amenity.
	// Returns ErrAmenityNameExists if the name is already taken and
	// ErrIDExists if the identifier collides.
	Create(ctx context.Context, amenity *domain.Amenity) error

	// GetByID retrieves an amenity by its unique ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error)

	// GetByName retrieves an amenity by its exact (trimmed) name.
	// Returns ErrAmenityNotFound on zero matches; with multiple candidates
	// the lowest ID wins.
	GetByName(ctx context.Context, name string) (*domain.Amenity, error)

	// List returns a snapshot of all stored amenities, ordered by ID.
	List(ctx context.Context) ([]*domain.Amenity, error)

	// Update persists the amenity's current state.
	// Returns ErrAmenityNotFound if the amenity does not exist and
	// ErrAmenityNameExists when renaming to a taken name.
	Update(ctx context.Context, amenity *domain.Amenity) error

	// Delete removes an amenity by its ID.
	// Returns ErrAmenityNotFound if the amenity does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns an AmenityStore bound to the provided transaction.
	WithTx(tx *sql.Tx) AmenityStore
}
