package store

import (
	"context"
	"database/sql"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store. The user must already be
	// validated and carry a password hash.
	// Returns ErrEmailExists if the email is already registered and
	// ErrIDExists if the identifier collides with a stored user.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their normalized email address.
	// When more than one row could match, the lowest ID wins so lookups
	// stay deterministic. Returns ErrUserNotFound on zero matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns a snapshot of all stored users, ordered by ID.
	List(ctx context.Context) ([]*domain.User, error)

	// Update persists the given user's current state and refreshes the
	// stored last-modified timestamp.
	// Returns ErrUserNotFound if the user does not exist.
	// Returns ErrEmailExists when updating to an email that another user
	// already holds.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID.
	// Returns ErrUserNotFound if the user does not exist. Deleting does
	// not cascade; cleaning up owned places and reviews is the facade's
	// responsibility.
	Delete(ctx context.Context, id uuid.UUID) error

	// WithTx returns a UserStore bound to the provided transaction, so
	// multiple operations can run atomically. Backends without
	// transactions return themselves.
	WithTx(tx *sql.Tx) UserStore
}
