package service_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/memory"
	"github.com/openstays/stays-api/internal/service"
	"github.com/openstays/stays-api/internal/service/auth"
	"github.com/openstays/stays-api/internal/store"
)

func newFacade(t *testing.T) *service.Facade {
	t.Helper()
	return service.NewFacade(
		memory.NewUserStore(),
		memory.NewPlaceStore(),
		memory.NewReviewStore(),
		memory.NewAmenityStore(),
		auth.NewBcryptHasher(4),
		nil,
		nil,
	)
}

func createUser(t *testing.T, f *service.Facade, email string) *domain.User {
	t.Helper()
	user, err := f.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     email,
		Password:  "password123",
	})
	require.NoError(t, err)
	return user
}

func createPlace(t *testing.T, f *service.Facade, ownerID uuid.UUID) *domain.Place {
	t.Helper()
	place, err := f.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:     "Canal Loft",
		Price:     120,
		Latitude:  52.37,
		Longitude: 4.9,
		OwnerID:   ownerID,
	})
	require.NoError(t, err)
	return place
}

func TestCreateUserHashesPassword(t *testing.T) {
	f := newFacade(t)

	user := createUser(t, f, "owner@example.com")
	assert.NotEmpty(t, user.HashedPassword)
	assert.NotEqual(t, "password123", user.HashedPassword)

	hasher := auth.NewBcryptHasher(4)
	assert.NoError(t, hasher.Compare(user.HashedPassword, "password123"))
}

func TestCreateUserDuplicateEmail(t *testing.T) {
	f := newFacade(t)
	createUser(t, f, "owner@example.com")

	_, err := f.CreateUser(context.Background(), service.CreateUserInput{
		FirstName: "Other",
		LastName:  "User",
		Email:     "owner@example.com",
		Password:  "password123",
	})
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestGetUserByEmailNormalizes(t *testing.T) {
	f := newFacade(t)
	user := createUser(t, f, "owner@example.com")

	got, err := f.GetUserByEmail(context.Background(), "  owner@EXAMPLE.COM ")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUpdateUserNameAlwaysAllowed(t *testing.T) {
	f := newFacade(t)
	user := createUser(t, f, "owner@example.com")

	first := "Renamed"
	updated, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{FirstName: &first}, false, false)
	require.NoError(t, err)
	assert.Equal(t, "Renamed", updated.FirstName)
	assert.Equal(t, "User", updated.LastName)
}

func TestUpdateUserEmailGated(t *testing.T) {
	f := newFacade(t)
	user := createUser(t, f, "owner@example.com")

	email := "new@example.com"
	_, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{Email: &email}, false, false)
	assert.ErrorIs(t, err, service.ErrEmailChangeNotAllowed)
	assert.True(t, service.IsPolicyError(err))

	updated, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{Email: &email}, true, false)
	require.NoError(t, err)
	assert.Equal(t, "new@example.com", updated.Email)
}

func TestUpdateUserEmailTakenByOther(t *testing.T) {
	f := newFacade(t)
	createUser(t, f, "taken@example.com")
	user := createUser(t, f, "owner@example.com")

	email := "taken@example.com"
	_, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{Email: &email}, true, false)
	assert.ErrorIs(t, err, store.ErrEmailExists)
}

func TestUpdateUserPasswordGated(t *testing.T) {
	f := newFacade(t)
	user := createUser(t, f, "owner@example.com")

	password := "newpassword456"
	_, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{Password: &password}, false, false)
	assert.ErrorIs(t, err, service.ErrPasswordChangeNotAllowed)

	updated, err := f.UpdateUser(context.Background(), user.ID,
		service.UserUpdate{Password: &password}, false, true)
	require.NoError(t, err)

	hasher := auth.NewBcryptHasher(4)
	assert.NoError(t, hasher.Compare(updated.HashedPassword, "newpassword456"))
}

func TestCreatePlaceOwnerMustExist(t *testing.T) {
	f := newFacade(t)

	_, err := f.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:     "Phantom Flat",
		Price:     50,
		Latitude:  0,
		Longitude: 0,
		OwnerID:   uuid.New(),
	})
	assert.ErrorIs(t, err, service.ErrOwnerNotFound)
	assert.True(t, service.IsReferenceError(err))
}

func TestCreatePlaceAmenitiesMustResolve(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")

	_, err := f.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:      "Loft",
		Price:      50,
		OwnerID:    owner.ID,
		AmenityIDs: []uuid.UUID{uuid.New()},
	})
	assert.ErrorIs(t, err, service.ErrAmenityRefNotFound)

	wifi, err := f.CreateAmenity(context.Background(), "Wi-Fi")
	require.NoError(t, err)

	place, err := f.CreatePlace(context.Background(), service.CreatePlaceInput{
		Title:      "Loft",
		Price:      50,
		OwnerID:    owner.ID,
		AmenityIDs: []uuid.UUID{wifi.ID},
	})
	require.NoError(t, err)
	assert.True(t, place.HasAmenity(wifi.ID))
}

func TestPlaceRoundTrip(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	place := createPlace(t, f, owner.ID)

	got, err := f.GetPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, place.Title, got.Title)
	assert.Equal(t, place.Price, got.Price)
	assert.Equal(t, place.OwnerID, got.OwnerID)

	price := 50.0
	updated, err := f.UpdatePlace(context.Background(), place.ID, service.PlaceUpdate{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
	assert.True(t, updated.UpdatedAt.After(got.UpdatedAt) || updated.UpdatedAt.Equal(got.UpdatedAt))

	got, err = f.GetPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, got.Price)
}

func TestUpdatePlaceOwnerReassignment(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	place := createPlace(t, f, owner.ID)

	missing := uuid.New()
	_, err := f.UpdatePlace(context.Background(), place.ID, service.PlaceUpdate{OwnerID: &missing})
	assert.ErrorIs(t, err, service.ErrOwnerNotFound)

	next := createUser(t, f, "next@example.com")
	updated, err := f.UpdatePlace(context.Background(), place.ID, service.PlaceUpdate{OwnerID: &next.ID})
	require.NoError(t, err)
	assert.Equal(t, next.ID, updated.OwnerID)
}

func TestDeletePlaceAuthorization(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	stranger := createUser(t, f, "stranger@example.com")
	place := createPlace(t, f, owner.ID)

	err := f.DeletePlace(context.Background(), place.ID, stranger.ID, false)
	assert.ErrorIs(t, err, service.ErrNotPlaceOwner)

	// Admins may delete places they do not own.
	require.NoError(t, f.DeletePlace(context.Background(), place.ID, stranger.ID, true))

	_, err = f.GetPlace(context.Background(), place.ID)
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestDeletePlaceByOwnerCascadesReviews(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text:    "Great stay",
		Rating:  5,
		UserID:  guest.ID,
		PlaceID: place.ID,
	})
	require.NoError(t, err)

	require.NoError(t, f.DeletePlace(context.Background(), place.ID, owner.ID, false))

	_, err = f.GetReview(context.Background(), review.ID)
	assert.ErrorIs(t, err, store.ErrReviewNotFound)
}

func TestCreateReviewReferences(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "Nice", Rating: 4, UserID: uuid.New(), PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, service.ErrReviewUserNotFound)

	_, err = f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "Nice", Rating: 4, UserID: guest.ID, PlaceID: uuid.New(),
	})
	assert.ErrorIs(t, err, service.ErrReviewPlaceNotFound)
}

func TestCreateReviewSelfReview(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "My own place is great", Rating: 5, UserID: owner.ID, PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, service.ErrSelfReview)
	assert.True(t, service.IsPolicyError(err))
}

func TestCreateReviewDuplicatePair(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	_, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "First visit", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	_, err = f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "Second visit", Rating: 5, UserID: guest.ID, PlaceID: place.ID,
	})
	assert.ErrorIs(t, err, service.ErrDuplicateReview)
}

func TestDeleteReviewRemovedFromPlaceCollection(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "Nice", Rating: 4, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	reviews, err := f.GetReviewsByPlace(context.Background(), place.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)

	require.NoError(t, f.DeleteReview(context.Background(), review.ID))

	reviews, err = f.GetReviewsByPlace(context.Background(), place.ID)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestUpdateReviewTextAndRatingOnly(t *testing.T) {
	f := newFacade(t)
	owner := createUser(t, f, "owner@example.com")
	guest := createUser(t, f, "guest@example.com")
	place := createPlace(t, f, owner.ID)

	review, err := f.CreateReview(context.Background(), service.CreateReviewInput{
		Text: "Fine", Rating: 3, UserID: guest.ID, PlaceID: place.ID,
	})
	require.NoError(t, err)

	text := "Better than expected"
	rating := 5
	updated, err := f.UpdateReview(context.Background(), review.ID,
		service.ReviewUpdate{Text: &text, Rating: &rating})
	require.NoError(t, err)
	assert.Equal(t, "Better than expected", updated.Text)
	assert.Equal(t, 5, updated.Rating)
	assert.Equal(t, guest.ID, updated.UserID)
	assert.Equal(t, place.ID, updated.PlaceID)
}

func TestGetReviewsByPlaceMissingPlace(t *testing.T) {
	f := newFacade(t)

	_, err := f.GetReviewsByPlace(context.Background(), uuid.New())
	assert.ErrorIs(t, err, store.ErrPlaceNotFound)
}

func TestCreateAmenityDuplicateName(t *testing.T) {
	f := newFacade(t)

	_, err := f.CreateAmenity(context.Background(), "Wi-Fi")
	require.NoError(t, err)

	_, err = f.CreateAmenity(context.Background(), "Wi-Fi")
	assert.ErrorIs(t, err, store.ErrAmenityNameExists)
}

func TestUpdateAmenityRename(t *testing.T) {
	f := newFacade(t)

	wifi, err := f.CreateAmenity(context.Background(), "Wi-Fi")
	require.NoError(t, err)
	_, err = f.CreateAmenity(context.Background(), "Pool")
	require.NoError(t, err)

	_, err = f.UpdateAmenity(context.Background(), wifi.ID, "Pool")
	assert.ErrorIs(t, err, store.ErrAmenityNameExists)

	renamed, err := f.UpdateAmenity(context.Background(), wifi.ID, "Fast Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, "Fast Wi-Fi", renamed.Name)
}

func TestSetUserAdmin(t *testing.T) {
	f := newFacade(t)
	user := createUser(t, f, "owner@example.com")
	require.False(t, user.IsAdmin)

	promoted, err := f.SetUserAdmin(context.Background(), user.ID, true)
	require.NoError(t, err)
	assert.True(t, promoted.IsAdmin)

	got, err := f.GetUser(context.Background(), user.ID)
	require.NoError(t, err)
	assert.True(t, got.IsAdmin)
}
