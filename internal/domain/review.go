package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Rating bounds for reviews.
const (
	MinRating = 1
	MaxRating = 5
)

// Review represents a user's rating of a place. The user and place
// references are set at creation and never change; text and rating are the
// only mutable fields.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReview creates a new Review for the given user and place. It generates
// a new UUID for the review ID and sets the creation/update timestamps.
// Returns a ValidationError if any field fails validation.
func NewReview(text string, rating int, userID, placeID uuid.UUID) (*Review, error) {
	now := time.Now().UTC()
	review := &Review{
		ID:        uuid.New(),
		Text:      text,
		Rating:    rating,
		UserID:    userID,
		PlaceID:   placeID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := review.Validate(); err != nil {
		return nil, err
	}

	return review, nil
}

// Validate checks if the Review has valid data.
// Returns an error if any field fails validation.
func (r *Review) Validate() error {
	if r.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := validateReviewText(r.Text); err != nil {
		return err
	}
	if err := validateRating(r.Rating); err != nil {
		return err
	}
	if r.UserID == uuid.Nil {
		return NewValidationError("user_id", "cannot be empty", ErrInvalidID)
	}
	if r.PlaceID == uuid.Nil {
		return NewValidationError("place_id", "cannot be empty", ErrInvalidID)
	}
	return nil
}

// SetText updates the review text, leaving it unchanged on validation failure.
func (r *Review) SetText(text string) error {
	if err := validateReviewText(text); err != nil {
		return err
	}
	r.Text = text
	r.touch()
	return nil
}

// SetRating updates the rating, leaving it unchanged on validation failure.
func (r *Review) SetRating(rating int) error {
	if err := validateRating(rating); err != nil {
		return err
	}
	r.Rating = rating
	r.touch()
	return nil
}

func (r *Review) touch() {
	r.UpdatedAt = time.Now().UTC()
}

func validateReviewText(text string) error {
	if strings.TrimSpace(text) == "" {
		return NewValidationError("text", "cannot be empty", nil)
	}
	return nil
}

func validateRating(rating int) error {
	if rating < MinRating || rating > MaxRating {
		return NewValidationError("rating", "must be between 1 and 5", nil)
	}
	return nil
}
