package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
)

// CreateUserInput carries the fields for registering a new user. Password is
// the plaintext; it is hashed before anything is stored.
type CreateUserInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	IsAdmin   bool
}

// UserUpdate describes a partial user update. Nil fields are left unchanged.
type UserUpdate struct {
	FirstName *string
	LastName  *string
	Email     *string
	Password  *string
}

// CreateUser registers a new user. The plaintext password is hashed and
// discarded. Returns store.ErrEmailExists when the email is already
// registered.
func (f *Facade) CreateUser(ctx context.Context, in CreateUserInput) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	hash, err := f.hasher.Hash(in.Password)
	if err != nil {
		return nil, domain.NewValidationError("password", "could not be hashed", err)
	}

	user, err := domain.NewUser(in.FirstName, in.LastName, in.Email, hash, in.IsAdmin)
	if err != nil {
		return nil, err
	}

	if err := f.users.Create(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.Bool("is_admin", user.IsAdmin))
	return user, nil
}

// GetUser retrieves a user by ID. Returns store.ErrUserNotFound when absent.
func (f *Facade) GetUser(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	return f.users.GetByID(ctx, id)
}

// GetUserByEmail retrieves a user by email address, applying the same
// normalization as registration so lookups match regardless of case or
// surrounding whitespace.
func (f *Facade) GetUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	normalized, err := domain.NormalizeEmail(email)
	if err != nil {
		return nil, err
	}
	return f.users.GetByEmail(ctx, normalized)
}

// ListUsers returns all users ordered by ID.
func (f *Facade) ListUsers(ctx context.Context) ([]*domain.User, error) {
	return f.users.List(ctx)
}

// UpdateUser applies a partial update to a user. Name changes are always
// permitted; email and password changes require the corresponding allow flag
// and fail with a policy error without it. An email change to an address held
// by a different user fails with store.ErrEmailExists.
func (f *Facade) UpdateUser(
	ctx context.Context,
	id uuid.UUID,
	update UserUpdate,
	allowEmailChange bool,
	allowPasswordChange bool,
) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	if update.Email != nil && !allowEmailChange {
		return nil, ErrEmailChangeNotAllowed
	}
	if update.Password != nil && !allowPasswordChange {
		return nil, ErrPasswordChangeNotAllowed
	}

	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.FirstName != nil || update.LastName != nil {
		firstName := user.FirstName
		lastName := user.LastName
		if update.FirstName != nil {
			firstName = *update.FirstName
		}
		if update.LastName != nil {
			lastName = *update.LastName
		}
		if err := user.SetName(firstName, lastName); err != nil {
			return nil, err
		}
	}

	if update.Email != nil {
		if err := user.SetEmail(*update.Email); err != nil {
			return nil, err
		}
	}

	if update.Password != nil {
		hash, err := f.hasher.Hash(*update.Password)
		if err != nil {
			return nil, domain.NewValidationError("password", "could not be hashed", err)
		}
		if err := user.SetHashedPassword(hash); err != nil {
			return nil, err
		}
	}

	if err := f.users.Update(ctx, user); err != nil {
		return nil, err
	}

	log.Info("user updated", slog.String("user_id", user.ID.String()))
	return user, nil
}

// SetUserAdmin flips the user's admin flag. Callers must ensure the request
// comes from an admin-authorized path; the facade does not re-check.
func (f *Facade) SetUserAdmin(ctx context.Context, id uuid.UUID, isAdmin bool) (*domain.User, error) {
	user, err := f.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	user.SetAdmin(isAdmin)
	if err := f.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}
