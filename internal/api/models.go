package api

import (
	"time"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/domain"
)

// Common request/response structures. References cross the boundary as ids
// or flat summaries, never as nested entity graphs.

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	FirstName string `json:"first_name" validate:"required,max=50"`
	LastName  string `json:"last_name"  validate:"required,max=50"`
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for authentication endpoints.
type AuthResponse struct {
	// UserID is the unique identifier for the authenticated user
	UserID uuid.UUID `json:"user_id"`

	// AccessToken is the JWT token used for API authorization
	AccessToken string `json:"token"`

	// ExpiresAt is the ISO 8601 timestamp when the access token expires
	ExpiresAt string `json:"expires_at,omitempty"`
}

// UpdateUserRequest defines the payload for partial user updates. Absent
// fields are left unchanged.
type UpdateUserRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,max=50"`
	LastName  *string `json:"last_name,omitempty"  validate:"omitempty,max=50"`
	Email     *string `json:"email,omitempty"      validate:"omitempty,email"`
	Password  *string `json:"password,omitempty"   validate:"omitempty,min=8,max=72"`
}

// UserResponse is the client-facing representation of a user. The password
// hash never crosses this boundary.
type UserResponse struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Email     string    `json:"email"`
	IsAdmin   bool      `json:"is_admin"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewUserResponse converts a domain user to its response form.
func NewUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		Email:     user.Email,
		IsAdmin:   user.IsAdmin,
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// OwnerSummary is the flat owner block nested in a place detail response.
type OwnerSummary struct {
	ID        uuid.UUID `json:"id"`
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
}

// CreateAmenityRequest defines the payload for creating an amenity.
type CreateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// UpdateAmenityRequest defines the payload for renaming an amenity.
type UpdateAmenityRequest struct {
	Name string `json:"name" validate:"required,max=50"`
}

// AmenityResponse is the client-facing representation of an amenity.
type AmenityResponse struct {
	ID        uuid.UUID `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewAmenityResponse converts a domain amenity to its response form.
func NewAmenityResponse(amenity *domain.Amenity) AmenityResponse {
	return AmenityResponse{
		ID:        amenity.ID,
		Name:      amenity.Name,
		CreatedAt: amenity.CreatedAt,
		UpdatedAt: amenity.UpdatedAt,
	}
}

// CreatePlaceRequest defines the payload for listing a new place. The owner
// is taken from the authenticated user, not the payload.
type CreatePlaceRequest struct {
	Title       string      `json:"title"       validate:"required,max=100"`
	Description string      `json:"description"`
	Price       float64     `json:"price"       validate:"required,gt=0"`
	Latitude    float64     `json:"latitude"    validate:"min=-90,max=90"`
	Longitude   float64     `json:"longitude"   validate:"min=-180,max=180"`
	AmenityIDs  []uuid.UUID `json:"amenity_ids,omitempty"`
}

// UpdatePlaceRequest defines the payload for partial place updates. Absent
// fields are left unchanged; amenity_ids, when present, replaces the set.
type UpdatePlaceRequest struct {
	Title       *string      `json:"title,omitempty"       validate:"omitempty,max=100"`
	Description *string      `json:"description,omitempty"`
	Price       *float64     `json:"price,omitempty"       validate:"omitempty,gt=0"`
	Latitude    *float64     `json:"latitude,omitempty"    validate:"omitempty,min=-90,max=90"`
	Longitude   *float64     `json:"longitude,omitempty"   validate:"omitempty,min=-180,max=180"`
	AmenityIDs  *[]uuid.UUID `json:"amenity_ids,omitempty"`
}

// PlaceResponse is the client-facing representation of a place. Amenities
// are serialized as ids; the owner appears as a flat summary on detail
// responses and as a bare id in lists.
type PlaceResponse struct {
	ID          uuid.UUID     `json:"id"`
	Title       string        `json:"title"`
	Description string        `json:"description,omitempty"`
	Price       float64       `json:"price"`
	Latitude    float64       `json:"latitude"`
	Longitude   float64       `json:"longitude"`
	OwnerID     uuid.UUID     `json:"owner_id"`
	Owner       *OwnerSummary `json:"owner,omitempty"`
	AmenityIDs  []uuid.UUID   `json:"amenity_ids"`
	CreatedAt   time.Time     `json:"created_at"`
	UpdatedAt   time.Time     `json:"updated_at"`
}

// NewPlaceResponse converts a domain place to its response form. owner may
// be nil for list responses.
func NewPlaceResponse(place *domain.Place, owner *domain.User) PlaceResponse {
	resp := PlaceResponse{
		ID:          place.ID,
		Title:       place.Title,
		Description: place.Description,
		Price:       place.Price,
		Latitude:    place.Latitude,
		Longitude:   place.Longitude,
		OwnerID:     place.OwnerID,
		AmenityIDs:  place.AmenityIDs,
		CreatedAt:   place.CreatedAt,
		UpdatedAt:   place.UpdatedAt,
	}
	if resp.AmenityIDs == nil {
		resp.AmenityIDs = []uuid.UUID{}
	}
	if owner != nil {
		resp.Owner = &OwnerSummary{
			ID:        owner.ID,
			FirstName: owner.FirstName,
			LastName:  owner.LastName,
		}
	}
	return resp
}

// CreateReviewRequest defines the payload for posting a review. The author
// is taken from the authenticated user.
type CreateReviewRequest struct {
	Text    string    `json:"text"     validate:"required"`
	Rating  int       `json:"rating"   validate:"required,min=1,max=5"`
	PlaceID uuid.UUID `json:"place_id" validate:"required"`
}

// UpdateReviewRequest defines the payload for partial review updates.
type UpdateReviewRequest struct {
	Text   *string `json:"text,omitempty"`
	Rating *int    `json:"rating,omitempty" validate:"omitempty,min=1,max=5"`
}

// ReviewResponse is the client-facing representation of a review.
type ReviewResponse struct {
	ID        uuid.UUID `json:"id"`
	Text      string    `json:"text"`
	Rating    int       `json:"rating"`
	UserID    uuid.UUID `json:"user_id"`
	PlaceID   uuid.UUID `json:"place_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewReviewResponse converts a domain review to its response form.
func NewReviewResponse(review *domain.Review) ReviewResponse {
	return ReviewResponse{
		ID:        review.ID,
		Text:      review.Text,
		Rating:    review.Rating,
		UserID:    review.UserID,
		PlaceID:   review.PlaceID,
		CreatedAt: review.CreatedAt,
		UpdatedAt: review.UpdatedAt,
	}
}
