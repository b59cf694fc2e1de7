package postgres

import (
	"context"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/store"
)

func newMock(t *testing.T) (*UserStore, *PlaceStore, *ReviewStore, *AmenityStore, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return NewUserStore(db, nil), NewPlaceStore(db, nil), NewReviewStore(db, nil), NewAmenityStore(db, nil), mock
}

func testUser(t *testing.T) *domain.User {
	t.Helper()
	user, err := domain.NewUser("Ada", "Lovelace", "ada@example.com", "hash", false)
	if err != nil {
		t.Fatalf("NewUser: %v", err)
	}
	return user
}

func TestUserStoreCreate(t *testing.T) {
	users, _, _, _, mock := newMock(t)
	user := testUser(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WithArgs(user.ID, user.FirstName, user.LastName, user.Email,
			user.HashedPassword, user.IsAdmin, user.CreatedAt, user.UpdatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := users.Create(context.Background(), user); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestUserStoreCreateMapsEmailConstraint(t *testing.T) {
	users, _, _, _, mock := newMock(t)
	user := testUser(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO users`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_email_key"})

	err := users.Create(context.Background(), user)
	if !store.IsDuplicateError(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
	if !errors.Is(err, store.ErrEmailExists) {
		t.Errorf("expected ErrEmailExists, got %v", err)
	}
}

func TestUserStoreGetByIDNotFound(t *testing.T) {
	users, _, _, _, mock := newMock(t)
	id := uuid.New()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, first_name`)).
		WithArgs(id).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := users.GetByID(context.Background(), id)
	if !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUserStoreGetByEmail(t *testing.T) {
	users, _, _, _, mock := newMock(t)
	user := testUser(t)

	cols := []string{"id", "first_name", "last_name", "email", "hashed_password", "is_admin", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE email = $1`)).
		WithArgs(user.Email).
		WillReturnRows(sqlmock.NewRows(cols).AddRow(
			user.ID, user.FirstName, user.LastName, user.Email,
			user.HashedPassword, user.IsAdmin, user.CreatedAt, user.UpdatedAt))

	got, err := users.GetByEmail(context.Background(), user.Email)
	if err != nil {
		t.Fatalf("GetByEmail: %v", err)
	}
	if got.ID != user.ID {
		t.Errorf("expected ID %s, got %s", user.ID, got.ID)
	}
}

func TestUserStoreUpdateNotFound(t *testing.T) {
	users, _, _, _, mock := newMock(t)
	user := testUser(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := users.Update(context.Background(), user); !errors.Is(err, store.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestPlaceStoreGetByIDLoadsAmenities(t *testing.T) {
	_, places, _, _, mock := newMock(t)

	placeID, ownerID, amenityID := uuid.New(), uuid.New(), uuid.New()
	now := time.Now().UTC()

	placeCols := []string{"id", "title", "description", "price", "latitude", "longitude", "owner_id", "created_at", "updated_at"}
	mock.ExpectQuery(regexp.QuoteMeta(`FROM places`)).
		WithArgs(placeID).
		WillReturnRows(sqlmock.NewRows(placeCols).AddRow(
			placeID, "Loft", "", 80.0, 48.85, 2.35, ownerID, now, now))
	mock.ExpectQuery(regexp.QuoteMeta(`FROM place_amenities`)).
		WithArgs(placeID).
		WillReturnRows(sqlmock.NewRows([]string{"amenity_id"}).AddRow(amenityID))

	place, err := places.GetByID(context.Background(), placeID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if len(place.AmenityIDs) != 1 || place.AmenityIDs[0] != amenityID {
		t.Errorf("expected amenity %s attached, got %v", amenityID, place.AmenityIDs)
	}
}

func TestPlaceStoreDeleteNotFound(t *testing.T) {
	_, places, _, _, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM places`)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := places.Delete(context.Background(), uuid.New()); !errors.Is(err, store.ErrPlaceNotFound) {
		t.Fatalf("expected ErrPlaceNotFound, got %v", err)
	}
}

func TestReviewStoreCreateMapsPairConstraint(t *testing.T) {
	_, _, reviews, _, mock := newMock(t)

	review, err := domain.NewReview("Nice", 4, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "reviews_user_id_place_id_key"})

	if err := reviews.Create(context.Background(), review); !store.IsDuplicateError(err) {
		t.Fatalf("expected duplicate error, got %v", err)
	}
}

func TestReviewStoreCreateMapsForeignKey(t *testing.T) {
	_, _, reviews, _, mock := newMock(t)

	review, err := domain.NewReview("Nice", 4, uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("NewReview: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO reviews`)).
		WillReturnError(&pgconn.PgError{Code: "23503", ConstraintName: "reviews_place_id_fkey"})

	if err := reviews.Create(context.Background(), review); !errors.Is(err, store.ErrInvalidEntity) {
		t.Fatalf("expected ErrInvalidEntity, got %v", err)
	}
}

func TestAmenityStoreCreateMapsNameConstraint(t *testing.T) {
	_, _, _, amenities, mock := newMock(t)

	amenity, err := domain.NewAmenity("Wi-Fi")
	if err != nil {
		t.Fatalf("NewAmenity: %v", err)
	}

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO amenities`)).
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "amenities_name_key"})

	if err := amenities.Create(context.Background(), amenity); !errors.Is(err, store.ErrAmenityNameExists) {
		t.Fatalf("expected ErrAmenityNameExists, got %v", err)
	}
}

func TestMapError(t *testing.T) {
	if MapError(nil) != nil {
		t.Error("expected nil to map to nil")
	}

	err := MapError(&pgconn.PgError{Code: "23505"})
	if !store.IsDuplicateError(err) {
		t.Errorf("expected duplicate mapping, got %v", err)
	}

	err = MapError(&pgconn.PgError{Code: "23503", ConstraintName: "places_owner_id_fkey"})
	if !errors.Is(err, store.ErrInvalidEntity) {
		t.Errorf("expected invalid entity mapping, got %v", err)
	}
}
