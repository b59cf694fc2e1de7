package domain

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/uuid"
)

func newTestPlace(t *testing.T) *Place {
	t.Helper()
	place, err := NewPlace("Cozy loft", "Close to the station", 80, 48.85, 2.35, uuid.New())
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	return place
}

func TestNewPlaceValidation(t *testing.T) {
	owner := uuid.New()

	tests := []struct {
		name      string
		title     string
		price     float64
		lat, lon  float64
		owner     uuid.UUID
		wantField string
	}{
		{"blank title", "  ", 80, 0, 0, owner, "title"},
		{"title too long", strings.Repeat("x", 101), 80, 0, 0, owner, "title"},
		{"zero price", "Loft", 0, 0, 0, owner, "price"},
		{"negative price", "Loft", -5, 0, 0, owner, "price"},
		{"latitude beyond north", "Loft", 80, 90.0001, 0, owner, "latitude"},
		{"latitude beyond south", "Loft", 80, -90.0001, 0, owner, "latitude"},
		{"longitude beyond east", "Loft", 80, 0, 180.0001, owner, "longitude"},
		{"longitude beyond west", "Loft", 80, 0, -180.0001, owner, "longitude"},
		{"missing owner", "Loft", 80, 0, 0, uuid.Nil, "owner_id"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewPlace(tt.title, "", tt.price, tt.lat, tt.lon, tt.owner)
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("Expected *ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Errorf("Expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestNewPlaceBoundaries(t *testing.T) {
	owner := uuid.New()

	// Exact coordinate bounds and a minimal positive price are all valid.
	boundaries := []struct {
		price    float64
		lat, lon float64
	}{
		{0.01, 90, 180},
		{0.01, -90, -180},
		{1, 0, 0},
	}
	for _, b := range boundaries {
		if _, err := NewPlace("Loft", "", b.price, b.lat, b.lon, owner); err != nil {
			t.Errorf("NewPlace(price=%v lat=%v lon=%v): unexpected error %v",
				b.price, b.lat, b.lon, err)
		}
	}
}

func TestPlaceSetCoordinatesRollback(t *testing.T) {
	place := newTestPlace(t)

	if err := place.SetCoordinates(12, 181); err == nil {
		t.Fatal("Expected validation error, got nil")
	}
	if place.Latitude != 48.85 || place.Longitude != 2.35 {
		t.Errorf("Expected coordinates unchanged, got %v,%v", place.Latitude, place.Longitude)
	}
}

func TestPlaceSetAmenities(t *testing.T) {
	place := newTestPlace(t)
	a, b := uuid.New(), uuid.New()

	if err := place.SetAmenities([]uuid.UUID{a, b, a}); err == nil {
		t.Fatal("Expected duplicate amenity to be rejected")
	}
	if len(place.AmenityIDs) != 0 {
		t.Errorf("Expected amenity set unchanged, got %v", place.AmenityIDs)
	}

	if err := place.SetAmenities([]uuid.UUID{a, b}); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !place.HasAmenity(a) || !place.HasAmenity(b) {
		t.Error("Expected both amenities attached")
	}
	if place.HasAmenity(uuid.New()) {
		t.Error("Expected unknown amenity to be absent")
	}
}

func TestPlaceUpdateAdvancesTimestamp(t *testing.T) {
	place := newTestPlace(t)
	before := place.UpdatedAt

	if err := place.SetPrice(50); err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if place.Price != 50 {
		t.Errorf("Expected price 50, got %v", place.Price)
	}
	if place.UpdatedAt.Before(before) {
		t.Error("Expected UpdatedAt to advance on mutation")
	}
}
