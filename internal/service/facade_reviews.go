package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
	"github.com/openstays/stays-api/internal/store"
)

// CreateReviewInput carries the fields for posting a new review.
type CreateReviewInput struct {
	Text    string
	Rating  int
	UserID  uuid.UUID
	PlaceID uuid.UUID
}

// ReviewUpdate describes a partial review update. Nil fields are left
// unchanged. The author and place of a review can never change.
type ReviewUpdate struct {
	Text   *string
	Rating *int
}

// CreateReview posts a review of a place. The author and place must both
// exist and are reported separately when missing. Owners cannot review their
// own place, and a user gets at most one review per place; both violations
// surface as policy errors.
func (f *Facade) CreateReview(ctx context.Context, in CreateReviewInput) (*domain.Review, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	review, err := domain.NewReview(in.Text, in.Rating, in.UserID, in.PlaceID)
	if err != nil {
		return nil, err
	}

	err = f.run(ctx, func(ctx context.Context, s stores) error {
		if _, err := s.users.GetByID(ctx, in.UserID); err != nil {
			if store.IsNotFoundError(err) {
				return ErrReviewUserNotFound
			}
			return err
		}

		place, err := s.places.GetByID(ctx, in.PlaceID)
		if err != nil {
			if store.IsNotFoundError(err) {
				return ErrReviewPlaceNotFound
			}
			return err
		}
		if place.OwnerID == in.UserID {
			return ErrSelfReview
		}

		// The composite-key lookup is the canonical duplicate check; the
		// relational unique constraint only backstops races.
		_, err = s.reviews.GetByUserAndPlace(ctx, in.UserID, in.PlaceID)
		switch {
		case err == nil:
			return ErrDuplicateReview
		case !store.IsNotFoundError(err):
			return err
		}

		if err := s.reviews.Create(ctx, review); err != nil {
			if store.IsDuplicateError(err) {
				return ErrDuplicateReview
			}
			return err
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	log.Info("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()),
		slog.String("user_id", review.UserID.String()))
	return review, nil
}

// GetReview retrieves a review by ID. Returns store.ErrReviewNotFound when
// absent.
func (f *Facade) GetReview(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	return f.reviews.GetByID(ctx, id)
}

// ListReviews returns all reviews ordered by ID.
func (f *Facade) ListReviews(ctx context.Context) ([]*domain.Review, error) {
	return f.reviews.List(ctx)
}

// GetReviewsByPlace returns all reviews of the given place. The place must
// exist; store.ErrPlaceNotFound surfaces otherwise.
func (f *Facade) GetReviewsByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	if _, err := f.places.GetByID(ctx, placeID); err != nil {
		return nil, err
	}
	return f.reviews.ListByPlace(ctx, placeID)
}

// UpdateReview applies a partial update to a review's text and rating.
func (f *Facade) UpdateReview(ctx context.Context, id uuid.UUID, update ReviewUpdate) (*domain.Review, error) {
	review, err := f.reviews.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if update.Text != nil {
		if err := review.SetText(*update.Text); err != nil {
			return nil, err
		}
	}
	if update.Rating != nil {
		if err := review.SetRating(*update.Rating); err != nil {
			return nil, err
		}
	}

	if err := f.reviews.Update(ctx, review); err != nil {
		return nil, err
	}
	return review, nil
}

// DeleteReview removes a review. The place's review collection is computed
// from the review store, so removal here is gone from both views at once.
func (f *Facade) DeleteReview(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, f.logger)

	if err := f.reviews.Delete(ctx, id); err != nil {
		return err
	}

	log.Info("review deleted", slog.String("review_id", id.String()))
	return nil
}
