package domain

import (
	"errors"
	"testing"

	"github.com/google/uuid"
)

func TestNewReview(t *testing.T) {
	userID, placeID := uuid.New(), uuid.New()

	review, err := NewReview("Great stay", 5, userID, placeID)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if review.UserID != userID || review.PlaceID != placeID {
		t.Error("Expected user and place references to be preserved")
	}

	for _, rating := range []int{1, 2, 3, 4, 5} {
		if _, err := NewReview("ok", rating, userID, placeID); err != nil {
			t.Errorf("NewReview(rating=%d): unexpected error %v", rating, err)
		}
	}
	for _, rating := range []int{0, -1, 6, 100} {
		if _, err := NewReview("ok", rating, userID, placeID); err == nil {
			t.Errorf("NewReview(rating=%d): expected validation error", rating)
		}
	}

	if _, err := NewReview("   ", 3, userID, placeID); err == nil {
		t.Error("Expected blank text to be rejected")
	}
	if _, err := NewReview("ok", 3, uuid.Nil, placeID); err == nil {
		t.Error("Expected missing user reference to be rejected")
	}
	if _, err := NewReview("ok", 3, userID, uuid.Nil); err == nil {
		t.Error("Expected missing place reference to be rejected")
	}
}

func TestReviewSetRatingRollback(t *testing.T) {
	review, err := NewReview("Great stay", 4, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	err = review.SetRating(6)
	if err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if !errors.Is(err, ErrValidation) {
		t.Errorf("Expected error to wrap ErrValidation, got %v", err)
	}
	if review.Rating != 4 {
		t.Errorf("Expected rating unchanged, got %d", review.Rating)
	}

	if err := review.SetRating(2); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if review.Rating != 2 {
		t.Errorf("Expected rating 2, got %d", review.Rating)
	}
}
