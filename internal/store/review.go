package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
)

// ReviewStore defines the interface for review data persistence.
type ReviewStore interface {
	// Create saves a new review.
	// Returns ErrDuplicate if the (user, place) pair already has a review
	// and ErrIDExists if the identifier collides.
	Create(ctx context.Context, review *domain.Review) error

	// GetByID retrieves a review by its unique ID.
	// Returns ErrReviewNotFound if the review does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error)

	// GetByUserAndPlace retrieves the review the given user wrote for the
	// given place. At most one can exist. Returns ErrReviewNotFound when
	// there is none.
	GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error)

	// List returns a snapshot of all stored reviews, ordered by ID.
	List(ctx context.Context) ([]*domain.Review, error)

	// ListByPlace returns all reviews of the given place, ordered by ID.
	// This is how the place's review collection is computed; places never
	// hold live review references.
	ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error)

	// Update persists the review's current state.
	// Returns ErrReviewNotFound if the review does not exist.
	Update(ctx context.Context, review *domain.Review) error

	// Delete removes a review by its ID.
	// Returns ErrReviewNotFound if the review does not exist.
	Delete(ctx context.Context, id uuid.UUID) error

	// DeleteByPlace removes every review of the given place. Used when a
	// place is deleted so no dangling references remain.
	DeleteByPlace(ctx context.Context, placeID uuid.UUID) error

	// WithTx returns a ReviewStore bound to the provided transaction.
	WithTx(tx *sql.Tx) ReviewStore
}
