package memory

import (
	"context"
	"database/sql"
	"sync"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/store"
)

// PlaceStore implements store.PlaceStore backed by an in-memory map.
type PlaceStore struct {
	mu     sync.RWMutex
	places map[uuid.UUID]*domain.Place
}

// NewPlaceStore creates an empty in-memory place store.
func NewPlaceStore() *PlaceStore {
	return &PlaceStore{places: make(map[uuid.UUID]*domain.Place)}
}

var _ store.PlaceStore = (*PlaceStore)(nil)

// Create implements store.PlaceStore.Create.
func (s *PlaceStore) Create(_ context.Context, place *domain.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.places[place.ID]; exists {
		return store.ErrIDExists
	}
	s.places[place.ID] = clonePlace(place)
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PlaceStore) GetByID(_ context.Context, id uuid.UUID) (*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	place, ok := s.places[id]
	if !ok {
		return nil, store.ErrPlaceNotFound
	}
	return clonePlace(place), nil
}

// List implements store.PlaceStore.List.
func (s *PlaceStore) List(_ context.Context) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	places := make([]*domain.Place, 0, len(s.places))
	for _, id := range sortedIDs(s.places) {
		places = append(places, clonePlace(s.places[id]))
	}
	return places, nil
}

// ListByOwner implements store.PlaceStore.ListByOwner.
func (s *PlaceStore) ListByOwner(_ context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var places []*domain.Place
	for _, id := range sortedIDs(s.places) {
		if s.places[id].OwnerID == ownerID {
			places = append(places, clonePlace(s.places[id]))
		}
	}
	return places, nil
}

// Update implements store.PlaceStore.Update.
func (s *PlaceStore) Update(_ context.Context, place *domain.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[place.ID]; !ok {
		return store.ErrPlaceNotFound
	}
	s.places[place.ID] = clonePlace(place)
	return nil
}

// Delete implements store.PlaceStore.Delete.
func (s *PlaceStore) Delete(_ context.Context, id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.places[id]; !ok {
		return store.ErrPlaceNotFound
	}
	delete(s.places, id)
	return nil
}

// WithTx implements store.PlaceStore.WithTx.
func (s *PlaceStore) WithTx(_ *sql.Tx) store.PlaceStore {
	return s
}

func clonePlace(p *domain.Place) *domain.Place {
	clone := *p
	clone.AmenityIDs = append([]uuid.UUID(nil), p.AmenityIDs...)
	return &clone
}
