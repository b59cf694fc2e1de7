package api

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/openstays/stays-api/internal/api/shared"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/service"
)

// ReviewHandler handles review management API requests.
type ReviewHandler struct {
	facade *service.Facade
}

// NewReviewHandler creates a new ReviewHandler.
func NewReviewHandler(facade *service.Facade) *ReviewHandler {
	return &ReviewHandler{facade: facade}
}

// List handles GET /api/reviews.
func (h *ReviewHandler) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.facade.ListReviews(r.Context())
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

// Get handles GET /api/reviews/{id}.
func (h *ReviewHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewReviewResponse(review))
}

// Create handles POST /api/reviews. The authenticated user becomes the
// review's author.
func (h *ReviewHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return
	}

	var req CreateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	review, err := h.facade.CreateReview(r.Context(), service.CreateReviewInput{
		Text:    req.Text,
		Rating:  req.Rating,
		UserID:  userID,
		PlaceID: req.PlaceID,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, NewReviewResponse(review))
}

// Update handles PUT /api/reviews/{id}. Only the author or an admin may
// update a review, and only its text and rating can change.
func (h *ReviewHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review, ok := h.authorizeAuthor(w, r, id)
	if !ok {
		return
	}

	var req UpdateReviewRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	updated, err := h.facade.UpdateReview(r.Context(), review.ID, service.ReviewUpdate{
		Text:   req.Text,
		Rating: req.Rating,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, NewReviewResponse(updated))
}

// Delete handles DELETE /api/reviews/{id}. Only the author or an admin may
// delete a review.
func (h *ReviewHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	review, ok := h.authorizeAuthor(w, r, id)
	if !ok {
		return
	}

	if err := h.facade.DeleteReview(r.Context(), review.ID); err != nil {
		HandleAPIError(w, r, err, "Failed to delete review")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusNoContent, nil)
}

// authorizeAuthor loads the review and checks the requester is its author
// or an admin, writing the error response itself on failure.
func (h *ReviewHandler) authorizeAuthor(
	w http.ResponseWriter,
	r *http.Request,
	id uuid.UUID,
) (*domain.Review, bool) {
	requesterID, ok := getUserIDFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return nil, false
	}

	review, err := h.facade.GetReview(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get review")
		return nil, false
	}

	if review.UserID != requesterID && !shared.IsAdminFromContext(r.Context()) {
		shared.RespondWithError(w, r, http.StatusForbidden, "You may only modify your own reviews")
		return nil, false
	}
	return review, true
}
