package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
	"github.com/openstays/stays-api/internal/store"
)

// CreatePlaceInput carries the fields for listing a new place.
type CreatePlaceInput struct {
	Title       string
	Description string
	Price       float64
	Latitude    float64
	Longitude   float64
	OwnerID     uuid.UUID
	AmenityIDs  []uuid.UUID
}

// PlaceUpdate describes a partial place update. Nil fields are left
// unchanged. AmenityIDs, when set, replaces the full amenity set.
type PlaceUpdate struct {
	Title       *string
	Description *string
	Price       *float64
	Latitude    *float64
	Longitude   *float64
	OwnerID     *uuid.UUID
	AmenityIDs  *[]uuid.UUID
}

// CreatePlace lists a new place. The owner and every amenity ID must resolve
// to stored entities; failures surface as reference errors before anything
// is written.
func (f *Facade) CreatePlace(ctx context.Context, in CreatePlaceInput) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	place, err := domain.NewPlace(in.Title, in.Description, in.Price, in.Latitude, in.Longitude, in.OwnerID)
	if err != nil {
		return nil, err
	}
	if err := place.SetAmenities(in.AmenityIDs); err != nil {
		return nil, err
	}

	err = f.run(ctx, func(ctx context.Context, s stores) error {
		if _, err := s.users.GetByID(ctx, in.OwnerID); err != nil {
			if store.IsNotFoundError(err) {
				return ErrOwnerNotFound
			}
			return err
		}
		if err := resolveAmenities(ctx, s, place.AmenityIDs); err != nil {
			return err
		}
		return s.places.Create(ctx, place)
	})
	if err != nil {
		return nil, err
	}

	log.Info("place created",
		slog.String("place_id", place.ID.String()),
		slog.String("owner_id", place.OwnerID.String()))
	return place, nil
}

// GetPlace retrieves a place by ID, amenity IDs included. Returns
// store.ErrPlaceNotFound when absent.
func (f *Facade) GetPlace(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	return f.places.GetByID(ctx, id)
}

// ListPlaces returns all places ordered by ID.
func (f *Facade) ListPlaces(ctx context.Context) ([]*domain.Place, error) {
	return f.places.List(ctx)
}

// ListPlacesByOwner returns all places owned by the given user.
func (f *Facade) ListPlacesByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return f.places.ListByOwner(ctx, ownerID)
}

// UpdatePlace applies a partial update to a place. An owner reassignment or
// amenity-set replacement is re-resolved against the stores before being
// applied, failing with a reference error if anything is missing.
func (f *Facade) UpdatePlace(ctx context.Context, id uuid.UUID, update PlaceUpdate) (*domain.Place, error) {
	log := logger.FromContextOrDefault(ctx, f.logger)

	var place *domain.Place
	err := f.run(ctx, func(ctx context.Context, s stores) error {
		var err error
		place, err = s.places.GetByID(ctx, id)
		if err != nil {
			return err
		}

		if update.Title != nil {
			if err := place.SetTitle(*update.Title); err != nil {
				return err
			}
		}
		if update.Description != nil {
			place.SetDescription(*update.Description)
		}
		if update.Price != nil {
			if err := place.SetPrice(*update.Price); err != nil {
				return err
			}
		}
		if update.Latitude != nil || update.Longitude != nil {
			latitude := place.Latitude
			longitude := place.Longitude
			if update.Latitude != nil {
				latitude = *update.Latitude
			}
			if update.Longitude != nil {
				longitude = *update.Longitude
			}
			if err := place.SetCoordinates(latitude, longitude); err != nil {
				return err
			}
		}
		if update.OwnerID != nil {
			if _, err := s.users.GetByID(ctx, *update.OwnerID); err != nil {
				if store.IsNotFoundError(err) {
					return ErrOwnerNotFound
				}
				return err
			}
			if err := place.SetOwner(*update.OwnerID); err != nil {
				return err
			}
		}
		if update.AmenityIDs != nil {
			if err := resolveAmenities(ctx, s, *update.AmenityIDs); err != nil {
				return err
			}
			if err := place.SetAmenities(*update.AmenityIDs); err != nil {
				return err
			}
		}

		return s.places.Update(ctx, place)
	})
	if err != nil {
		return nil, err
	}

	log.Info("place updated", slog.String("place_id", place.ID.String()))
	return place, nil
}

// DeletePlace removes a place along with its reviews. Only the place's owner
// or an admin may delete it; anyone else gets ErrNotPlaceOwner.
func (f *Facade) DeletePlace(ctx context.Context, id, requestingUserID uuid.UUID, isAdmin bool) error {
	log := logger.FromContextOrDefault(ctx, f.logger)

	err := f.run(ctx, func(ctx context.Context, s stores) error {
		place, err := s.places.GetByID(ctx, id)
		if err != nil {
			return err
		}
		if place.OwnerID != requestingUserID && !isAdmin {
			return ErrNotPlaceOwner
		}
		if err := s.reviews.DeleteByPlace(ctx, id); err != nil {
			return err
		}
		return s.places.Delete(ctx, id)
	})
	if err != nil {
		return err
	}

	log.Info("place deleted",
		slog.String("place_id", id.String()),
		slog.String("requested_by", requestingUserID.String()))
	return nil
}

// resolveAmenities checks that every amenity ID names a stored amenity.
func resolveAmenities(ctx context.Context, s stores, amenityIDs []uuid.UUID) error {
	for _, amenityID := range amenityIDs {
		if _, err := s.amenities.GetByID(ctx, amenityID); err != nil {
			if errors.Is(err, store.ErrAmenityNotFound) {
				return ErrAmenityRefNotFound
			}
			return err
		}
	}
	return nil
}
