package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxTitleLength is the upper bound for a place title.
const MaxTitleLength = 100

// Place represents a rental listing owned by exactly one user. Reviews of
// the place are a back-reference resolved through the review store by place
// ID; only amenity IDs are held here, as an unordered set.
type Place struct {
	ID          uuid.UUID   `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Price       float64     `json:"price"`
	Latitude    float64     `json:"latitude"`
	Longitude   float64     `json:"longitude"`
	OwnerID     uuid.UUID   `json:"owner_id"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

// NewPlace creates a new Place with the given fields. It generates a new
// UUID for the place ID and sets the creation/update timestamps. The
// description is optional and defaults to empty. Returns a ValidationError
// if any field fails validation.
func NewPlace(title, description string, price, latitude, longitude float64, ownerID uuid.UUID) (*Place, error) {
	now := time.Now().UTC()
	place := &Place{
		ID:          uuid.New(),
		Title:       title,
		Description: description,
		Price:       price,
		Latitude:    latitude,
		Longitude:   longitude,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := place.Validate(); err != nil {
		return nil, err
	}

	return place, nil
}

// Validate checks if the Place has valid data.
// Returns an error if any field fails validation.
func (p *Place) Validate() error {
	if p.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	if err := validateTitle(p.Title); err != nil {
		return err
	}
	if err := validatePrice(p.Price); err != nil {
		return err
	}
	if err := validateCoordinates(p.Latitude, p.Longitude); err != nil {
		return err
	}
	if p.OwnerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty", ErrInvalidID)
	}
	if err := validateAmenitySet(p.AmenityIDs); err != nil {
		return err
	}
	return nil
}

// SetTitle updates the title, leaving it unchanged on validation failure.
func (p *Place) SetTitle(title string) error {
	if err := validateTitle(title); err != nil {
		return err
	}
	p.Title = title
	p.touch()
	return nil
}

// SetDescription updates the free-form description.
func (p *Place) SetDescription(description string) {
	p.Description = description
	p.touch()
}

// SetPrice updates the nightly price. The price must be strictly positive.
func (p *Place) SetPrice(price float64) error {
	if err := validatePrice(price); err != nil {
		return err
	}
	p.Price = price
	p.touch()
	return nil
}

// SetCoordinates updates latitude and longitude together; a failure on
// either bound leaves both unchanged.
func (p *Place) SetCoordinates(latitude, longitude float64) error {
	if err := validateCoordinates(latitude, longitude); err != nil {
		return err
	}
	p.Latitude = latitude
	p.Longitude = longitude
	p.touch()
	return nil
}

// SetOwner reassigns ownership. Existence of the new owner is the facade's
// concern; this is the explicit ownership-transfer path.
func (p *Place) SetOwner(ownerID uuid.UUID) error {
	if ownerID == uuid.Nil {
		return NewValidationError("owner_id", "cannot be empty", ErrInvalidID)
	}
	p.OwnerID = ownerID
	p.touch()
	return nil
}

// SetAmenities replaces the amenity set. Order is irrelevant and duplicate
// IDs are rejected. Existence of each amenity is the facade's concern.
func (p *Place) SetAmenities(amenityIDs []uuid.UUID) error {
	if err := validateAmenitySet(amenityIDs); err != nil {
		return err
	}
	p.AmenityIDs = append([]uuid.UUID(nil), amenityIDs...)
	p.touch()
	return nil
}

// HasAmenity reports whether the given amenity is attached to the place.
func (p *Place) HasAmenity(amenityID uuid.UUID) bool {
	for _, id := range p.AmenityIDs {
		if id == amenityID {
			return true
		}
	}
	return false
}

func (p *Place) touch() {
	p.UpdatedAt = time.Now().UTC()
}

func validateTitle(title string) error {
	if strings.TrimSpace(title) == "" {
		return NewValidationError("title", "cannot be empty", nil)
	}
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return NewValidationError("title", "must be at most 100 characters", nil)
	}
	return nil
}

func validatePrice(price float64) error {
	if price <= 0 {
		return NewValidationError("price", "must be greater than 0", nil)
	}
	return nil
}

func validateCoordinates(latitude, longitude float64) error {
	if latitude < -90 || latitude > 90 {
		return NewValidationError("latitude", "must be between -90 and 90", nil)
	}
	if longitude < -180 || longitude > 180 {
		return NewValidationError("longitude", "must be between -180 and 180", nil)
	}
	return nil
}

func validateAmenitySet(amenityIDs []uuid.UUID) error {
	seen := make(map[uuid.UUID]struct{}, len(amenityIDs))
	for _, id := range amenityIDs {
		if id == uuid.Nil {
			return NewValidationError("amenity_ids", "cannot contain an empty ID", ErrInvalidID)
		}
		if _, dup := seen[id]; dup {
			return NewValidationError("amenity_ids", "cannot contain duplicates", nil)
		}
		seen[id] = struct{}{}
	}
	return nil
}
