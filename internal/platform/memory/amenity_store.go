package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/store"
)

// AmenityStore implements store.AmenityStore backed by an in-memory map.
type AmenityStore struct {
	mu        sync.RWMutex
	amenities map[uuid.UUID]*domain.Amenity
}

// NewAmenityStore creates an empty in-memory amenity store.
func NewAmenityStore() *AmenityStore {
	return &AmenityStore{amenities: make(map[uuid.UUID]*domain.Amenity)}
}

var _ store.AmenityStore = (*AmenityStore)(nil)

// Create implements store.AmenityStore.Create.
func (s *AmenityStore) Create(_ context.Context, amenity *domain.Amenity) error {
	if err := amenity.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.amenities[amenity.ID]; exists {
		return store.ErrIDExists
	}
	for _, existing := range s.amenities {
		if existing.Name == amenity.Name {
			return store.ErrAmenityNameExists
		}
	}

	s.amenities[amenity.ID] = cloneAmenity(amenity)
	return nil
}

// GetByID implements store.AmenityStore.GetByID.
func (s *AmenityStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenity, ok := s.amenities[id]
	if !ok {
		return nil, store.ErrAmenityNotFound
	}
	return cloneAmenity(amenity), nil
}

// GetByName implements store.AmenityStore.GetByName.
func (s *AmenityStore) GetByName(_ context.Context, name string) (*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, id := range sortedIDs(s.amenities) {
		if s.amenities[id].Name == name {
			return cloneAmenity(s.amenities[id]), nil
		}
	}
	return nil, store.ErrAmenityNotFound
}

// List implements store.AmenityStore.List.
func (s *AmenityStore) List(_ context.Context) ([]*domain.Amenity, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	amenities := make([]*domain.Amenity, 0, len(s.amenities))
	for _, id := range sortedIDs(s.amenities) {
		amenities = append(amenities, cloneAmenity(s.amenities[id]))
	}
	return amenities, nil
}

// Update implements store.AmenityStore.Update.
func (s *AmenityStore) Update(_ context.Context, amenity *domain.Amenity) error {
	if err := amenity.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[amenity.ID]; !ok {
		return store.ErrAmenityNotFound
	}
	for id, existing := range s.amenities {
		if id != amenity.ID && existing.Name == amenity.Name {
			return store.ErrAmenityNameExists
		}
	}

	s.amenities[amenity.ID] = cloneAmenity(amenity)
	return nil
}

// Delete implements store.AmenityStore.Delete.
func (s *AmenityStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.amenities[id]; !ok {
		return store.ErrAmenityNotFound
	}
	delete(s.amenities, id)
	return nil
}

// WithTx implements store.AmenityStore.WithTx.
func (s *AmenityStore) WithTx(_ *sql.Tx) store.AmenityStore {
	return s
}

func cloneAmenity(a *domain.Amenity) *domain.Amenity {
	clone := *a
	return &clone
}
