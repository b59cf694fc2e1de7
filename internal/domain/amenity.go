package domain

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
)

// MaxAmenityNameLength is the upper bound for an amenity name.
const MaxAmenityNameLength = 50

// Amenity is a feature a place can offer, identified by a unique name.
// Names are stored whitespace-trimmed; uniqueness is the store's concern.
type Amenity struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenity creates a new Amenity with the given name. It generates a new
// UUID for the amenity ID and sets the creation/update timestamps.
// Returns a ValidationError if the name fails validation.
func NewAmenity(name string) (*Amenity, error) {
	trimmed, err := normalizeAmenityName(name)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Amenity{
		ID:        uuid.New(),
		Name:      trimmed,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// Validate checks if the Amenity has valid data.
func (a *Amenity) Validate() error {
	if a.ID == uuid.Nil {
		return NewValidationError("id", "cannot be empty", ErrInvalidID)
	}
	_, err := normalizeAmenityName(a.Name)
	return err
}

// Rename replaces the amenity name with the trimmed form of the given value,
// leaving it unchanged on validation failure.
func (a *Amenity) Rename(name string) error {
	trimmed, err := normalizeAmenityName(name)
	if err != nil {
		return err
	}
	a.Name = trimmed
	a.UpdatedAt = time.Now().UTC()
	return nil
}

func normalizeAmenityName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return "", NewValidationError("name", "cannot be empty", nil)
	}
	if utf8.RuneCountInString(trimmed) > MaxAmenityNameLength {
		return "", NewValidationError("name", "must be at most 50 characters", nil)
	}
	return trimmed, nil
}
