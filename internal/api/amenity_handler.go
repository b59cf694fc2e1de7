package api

import (
	"net/http"

	"github.com/openstays/stays-api/internal/api/shared"
	"github.com/openstays/stays-api/internal/service"
)

// AmenityHandler handles amenity management API requests.
type AmenityHandler struct {
	facade *service.Facade
}

// NewAmenityHandler creates a new AmenityHandler.
func NewAmenityHandler(facade *service.Facade) *AmenityHandler {
	return &AmenityHandler{facade: facade}
}

// List handles GET /api/amenities.
func (h *AmenityHandler) List(w http.ResponseWriter, r *http.Request) {
	amenities, err := h.facade.ListAmenities(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list amenities")
		return
	}

	resp := make([]AmenityResponse, 0, len(amenities))
	for _, amenity := range amenities {
		resp = append(resp, NewAmenityResponse(amenity))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/amenities/{id}.
func (h *AmenityHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	amenity, err := h.facade.GetAmenity(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewAmenityResponse(amenity))
}

// Create handles POST /api/amenities. Mounted behind the admin-only
// middleware.
func (h *AmenityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateAmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amenity, err := h.facade.CreateAmenity(r.Context(), req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, NewAmenityResponse(amenity))
}

// Update handles PUT /api/amenities/{id}. Mounted behind the admin-only
// middleware.
func (h *AmenityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateAmenityRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	amenity, err := h.facade.UpdateAmenity(r.Context(), id, req.Name)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update amenity")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewAmenityResponse(amenity))
}
