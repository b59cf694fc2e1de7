package api

import (
	"net/http"

	"github.com/openstays/stays-api/internal/api/shared"
	"github.com/openstays/stays-api/internal/service"
)

// PlaceHandler handles place management API requests.
type PlaceHandler struct {
	facade *service.Facade
}

// NewPlaceHandler creates a new PlaceHandler.
func NewPlaceHandler(facade *service.Facade) *PlaceHandler {
	return &PlaceHandler{facade: facade}
}

// List handles GET /api/places.
func (h *PlaceHandler) List(w http.ResponseWriter, r *http.Request) {
	places, err := h.facade.ListPlaces(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list places")
		return
	}

	resp := make([]PlaceResponse, 0, len(places))
	for _, place := range places {
		resp = append(resp, NewPlaceResponse(place, nil))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// Get handles GET /api/places/{id}, returning the place with a flat owner
// summary.
func (h *PlaceHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}

	// Owner lookup is best-effort; the place still renders without it.
	owner, err := h.facade.GetUser(r.Context(), place.OwnerID)
	if err != nil {
		owner = nil
	}

	shared.RespondWithJSON(w, r, http.StatusOK, NewPlaceResponse(place, owner))
}

// Create handles POST /api/places. The authenticated user becomes the owner.
func (h *PlaceHandler) Create(w http.ResponseWriter, r *http.Request) {
	ownerID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	place, err := h.facade.CreatePlace(r.Context(), service.CreatePlaceInput{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		OwnerID:     ownerID,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, NewPlaceResponse(place, nil))
}

// Update handles PUT /api/places/{id}. Only the owner or an admin may
// update a place.
func (h *PlaceHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requesterID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	place, err := h.facade.GetPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get place")
		return
	}
	if place.OwnerID != requesterID && !shared.IsAdminFromContext(r.Context()) {
		HandleAPIError(w, r, service.ErrNotPlaceOwner, "")
		return
	}

	var req UpdatePlaceRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.facade.UpdatePlace(r.Context(), id, service.PlaceUpdate{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		AmenityIDs:  req.AmenityIDs,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewPlaceResponse(updated, nil))
}

// Delete handles DELETE /api/places/{id}. Ownership is enforced by the
// facade, which also removes the place's reviews.
func (h *PlaceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	requesterID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	isAdmin := shared.IsAdminFromContext(r.Context())
	if err := h.facade.DeletePlace(r.Context(), id, requesterID, isAdmin); err != nil {
		HandleAPIError(w, r, err, "Failed to delete place")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// ListReviews handles GET /api/places/{id}/reviews.
func (h *PlaceHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	reviews, err := h.facade.GetReviewsByPlace(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list reviews")
		return
	}

	resp := make([]ReviewResponse, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, NewReviewResponse(review))
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}
