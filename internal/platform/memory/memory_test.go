package memory

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/store"
)

func newUser(t *testing.T, email string) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Ada", "Lovelace", email, "hash", false)
	require.NoError(t, err)
	return user
}

func TestUserStoreCreateAndGet(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user := newUser(t, "ada@example.com")
	require.NoError(t, s.Create(ctx, user))

	got, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, user.Email, got.Email)

	// Returned values are copies; mutating them must not leak into storage.
	got.FirstName = "Mutated"
	again, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ada", again.FirstName)

	_, err = s.GetByID(ctx, uuid.New())
	assert.ErrorIs(t, err, store.ErrNotFound)
	assert.True(t, store.IsNotFoundError(err))
}

func TestUserStoreDuplicateChecks(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user := newUser(t, "ada@example.com")
	require.NoError(t, s.Create(ctx, user))

	// Same ID again collides.
	assert.ErrorIs(t, s.Create(ctx, user), store.ErrIDExists)

	// Same email under a fresh ID collides too.
	dup := newUser(t, "ada@example.com")
	err := s.Create(ctx, dup)
	assert.ErrorIs(t, err, store.ErrEmailExists)
	assert.True(t, store.IsDuplicateError(err))

	// Updating a second user onto the first one's email collides.
	other := newUser(t, "grace@example.com")
	require.NoError(t, s.Create(ctx, other))
	require.NoError(t, other.SetEmail("ada@example.com"))
	assert.ErrorIs(t, s.Update(ctx, other), store.ErrEmailExists)
}

func TestUserStoreGetByEmail(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	_, err := s.GetByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, store.ErrUserNotFound)

	user := newUser(t, "ada@example.com")
	require.NoError(t, s.Create(ctx, user))

	got, err := s.GetByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, got.ID)
}

func TestUserStoreUpdateAndDelete(t *testing.T) {
	ctx := context.Background()
	s := NewUserStore()

	user := newUser(t, "ada@example.com")

	// Updating or deleting an absent user reports not found.
	assert.ErrorIs(t, s.Update(ctx, user), store.ErrUserNotFound)
	assert.ErrorIs(t, s.Delete(ctx, user.ID), store.ErrUserNotFound)

	require.NoError(t, s.Create(ctx, user))
	require.NoError(t, user.SetName("Grace", "Hopper"))
	require.NoError(t, s.Update(ctx, user))

	got, err := s.GetByID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Grace", got.FirstName)

	require.NoError(t, s.Delete(ctx, user.ID))
	_, err = s.GetByID(ctx, user.ID)
	assert.ErrorIs(t, err, store.ErrUserNotFound)
}

func TestPlaceStoreListByOwner(t *testing.T) {
	ctx := context.Background()
	s := NewPlaceStore()
	owner := uuid.New()

	mine, err := domain.NewPlace("Loft", "", 80, 48.85, 2.35, owner)
	require.NoError(t, err)
	theirs, err := domain.NewPlace("Cabin", "", 120, 60.39, 5.32, uuid.New())
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, mine))
	require.NoError(t, s.Create(ctx, theirs))

	owned, err := s.ListByOwner(ctx, owner)
	require.NoError(t, err)
	require.Len(t, owned, 1)
	assert.Equal(t, mine.ID, owned[0].ID)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

func TestPlaceStoreAmenitySetIsCopied(t *testing.T) {
	ctx := context.Background()
	s := NewPlaceStore()

	place, err := domain.NewPlace("Loft", "", 80, 48.85, 2.35, uuid.New())
	require.NoError(t, err)
	require.NoError(t, place.SetAmenities([]uuid.UUID{uuid.New()}))
	require.NoError(t, s.Create(ctx, place))

	got, err := s.GetByID(ctx, place.ID)
	require.NoError(t, err)
	got.AmenityIDs[0] = uuid.Nil

	again, err := s.GetByID(ctx, place.ID)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, again.AmenityIDs[0])
}

func TestReviewStoreCompositeKey(t *testing.T) {
	ctx := context.Background()
	s := NewReviewStore()
	userID, placeID := uuid.New(), uuid.New()

	review, err := domain.NewReview("Nice", 4, userID, placeID)
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, review))

	got, err := s.GetByUserAndPlace(ctx, userID, placeID)
	require.NoError(t, err)
	assert.Equal(t, review.ID, got.ID)

	_, err = s.GetByUserAndPlace(ctx, userID, uuid.New())
	assert.ErrorIs(t, err, store.ErrReviewNotFound)

	// A second review for the same pair is a duplicate.
	second, err := domain.NewReview("Again", 2, userID, placeID)
	require.NoError(t, err)
	assert.True(t, store.IsDuplicateError(s.Create(ctx, second)))
}

func TestReviewStoreDeleteByPlace(t *testing.T) {
	ctx := context.Background()
	s := NewReviewStore()
	placeID := uuid.New()

	for i := 0; i < 3; i++ {
		review, err := domain.NewReview("Nice", 4, uuid.New(), placeID)
		require.NoError(t, err)
		require.NoError(t, s.Create(ctx, review))
	}
	keep, err := domain.NewReview("Other place", 5, uuid.New(), uuid.New())
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, keep))

	require.NoError(t, s.DeleteByPlace(ctx, placeID))

	byPlace, err := s.ListByPlace(ctx, placeID)
	require.NoError(t, err)
	assert.Empty(t, byPlace)

	all, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestAmenityStoreUniqueName(t *testing.T) {
	ctx := context.Background()
	s := NewAmenityStore()

	wifi, err := domain.NewAmenity("Wi-Fi")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, wifi))

	dup, err := domain.NewAmenity("Wi-Fi")
	require.NoError(t, err)
	assert.ErrorIs(t, s.Create(ctx, dup), store.ErrAmenityNameExists)

	got, err := s.GetByName(ctx, "Wi-Fi")
	require.NoError(t, err)
	assert.Equal(t, wifi.ID, got.ID)

	_, err = s.GetByName(ctx, "Sauna")
	assert.ErrorIs(t, err, store.ErrAmenityNotFound)

	pool, err := domain.NewAmenity("Pool")
	require.NoError(t, err)
	require.NoError(t, s.Create(ctx, pool))
	require.NoError(t, pool.Rename("Wi-Fi"))
	assert.ErrorIs(t, s.Update(ctx, pool), store.ErrAmenityNameExists)
}
