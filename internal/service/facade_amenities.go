package service

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
)

// CreateAmenity registers a new amenity. Returns store.ErrAmenityNameExists
// when the name is already taken.
func (f *Facade) CreateAmenity(ctx context.Context, name string) (*domain.Amenity, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	amenity, err := domain.NewAmenity(name)
	if err != nil {
		return nil, err
	}

	if err := f.amenities.Create(ctx, amenity); err != nil {
		return nil, err
	}

	log.Info("amenity created",
		slog.String("amenity_id", amenity.ID.String()),
		slog.String("name", amenity.Name))
	return amenity, nil
}

// GetAmenity retrieves an amenity by ID. Returns store.ErrAmenityNotFound
// when absent.
func (f *Facade) GetAmenity(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	return f.amenities.GetByID(ctx, id)
}

// GetAmenityByName retrieves an amenity by its exact name.
func (f *Facade) GetAmenityByName(ctx context.Context, name string) (*domain.Amenity, error) {
	return f.amenities.GetByName(ctx, name)
}

// ListAmenities returns all amenities ordered by ID.
func (f *Facade) ListAmenities(ctx context.Context) ([]*domain.Amenity, error) {
	return f.amenities.List(ctx)
}

// UpdateAmenity renames an amenity. Returns store.ErrAmenityNotFound when the
// amenity does not exist and store.ErrAmenityNameExists when the new name
// belongs to another amenity.
func (f *Facade) UpdateAmenity(ctx context.Context, id uuid.UUID, name string) (*domain.Amenity, error) {
	amenity, err := f.amenities.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := amenity.Rename(name); err != nil {
		return nil, err
	}

	if err := f.amenities.Update(ctx, amenity); err != nil {
		return nil, err
	}
	return amenity, nil
}
