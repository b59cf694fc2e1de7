package memory

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/store"
)

// ReviewStore implements store.ReviewStore backed by an in-memory map.
type ReviewStore struct {
	mu      sync.RWMutex
	reviews map[uuid.UUID]*domain.Review
}

// NewReviewStore creates an empty in-memory review store.
func NewReviewStore() *ReviewStore {
	return &ReviewStore{reviews: make(map[uuid.UUID]*domain.Review)}
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *ReviewStore) Create(_ context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.reviews[review.ID]; exists {
		return store.ErrIDExists
	}
	for _, existing := range s.reviews {
		if existing.UserID == review.UserID && existing.PlaceID == review.PlaceID {
			return fmt.Errorf("%w: review for (user, place) pair", store.ErrDuplicate)
		}
	}

	s.reviews[review.ID] = cloneReview(review)
	return nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	review, ok := s.reviews[id]
	if !ok {
		return nil, store.ErrReviewNotFound
	}
	return cloneReview(review), nil
}

// GetByUserAndPlace implements store.ReviewStore.GetByUserAndPlace.
func (s *ReviewStore) GetByUserAndPlace(_ context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.reviews) {
		r := s.reviews[id]
		if r.UserID == userID && r.PlaceID == placeID {
			return cloneReview(r), nil
		}
	}
	return nil, store.ErrReviewNotFound
}

// List implements store.ReviewStore.List.
func (s *ReviewStore) List(_ context.Context) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	reviews := make([]*domain.Review, 0, len(s.reviews))
	for _, id := range sortedIDs(s.reviews) {
		reviews = append(reviews, cloneReview(s.reviews[id]))
	}
	return reviews, nil
}

// ListByPlace implements store.ReviewStore.ListByPlace.
func (s *ReviewStore) ListByPlace(_ context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var reviews []*domain.Review
	for _, id := range sortedIDs(s.reviews) {
		if s.reviews[id].PlaceID == placeID {
			reviews = append(reviews, cloneReview(s.reviews[id]))
		}
	}
	return reviews, nil
}

// Update implements store.ReviewStore.Update.
func (s *ReviewStore) Update(_ context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[review.ID]; !ok {
		return store.ErrReviewNotFound
	}
	s.reviews[review.ID] = cloneReview(review)
	return nil
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.reviews[id]; !ok {
		return store.ErrReviewNotFound
	}
	delete(s.reviews, id)
	return nil
}

// DeleteByPlace implements store.ReviewStore.DeleteByPlace.
func (s *ReviewStore) DeleteByPlace(_ context.Context, placeID uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, review := range s.reviews {
		if review.PlaceID == placeID {
			delete(s.reviews, id)
		}
	}
	return nil
}

// WithTx implements store.ReviewStore.WithTx.
func (s *ReviewStore) WithTx(_ *sql.Tx) store.ReviewStore {
	return s
}

func cloneReview(r *domain.Review) *domain.Review {
	clone := *r
	return &clone
}
