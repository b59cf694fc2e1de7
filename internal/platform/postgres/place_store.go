package postgres

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
	"github.com/openstays/stays-api/internal/store"
)

// PlaceStore implements the store.PlaceStore interface using a PostgreSQL
// database as the storage backend. The amenity set lives in the
// place_amenities join table and is loaded and replaced together with the
// place row.
type PlaceStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPlaceStore creates a new PostgreSQL implementation of the PlaceStore
// interface.
func NewPlaceStore(db store.DBTX, log *slog.Logger) *PlaceStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &PlaceStore{
		db:     db,
		logger: log.With(slog.String("component", "place_store")),
	}
}

var _ store.PlaceStore = (*PlaceStore)(nil)

// Create implements store.PlaceStore.Create. The caller is expected to run
// this inside a transaction when atomicity with other writes matters; the
// row insert and the amenity links are two statements.
func (s *PlaceStore) Create(ctx context.Context, place *domain.Place) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := place.Validate(); err != nil {
		log.Warn("place validation failed during create",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return err
	}

	query := `
		INSERT INTO places (id, title, description, price, latitude, longitude, owner_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Price,
		place.Latitude,
		place.Longitude,
		place.OwnerID,
		place.CreatedAt,
		place.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return mapUniqueViolation(err, store.ErrIDExists)
		}
		log.Error("failed to create place",
			slog.String("error", err.Error()),
			slog.String("place_id", place.ID.String()))
		return MapError(err)
	}

	if err := s.insertAmenityLinks(ctx, place.ID, place.AmenityIDs); err != nil {
		return err
	}

	log.Debug("place created", slog.String("place_id", place.ID.String()))
	return nil
}

// GetByID implements store.PlaceStore.GetByID.
func (s *PlaceStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Place, error) {
	query := `
		SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		FROM places
		WHERE id = $1
	`
	var place domain.Place
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&place.ID,
		&place.Title,
		&place.Description,
		&place.Price,
		&place.Latitude,
		&place.Longitude,
		&place.OwnerID,
		&place.CreatedAt,
		&place.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrPlaceNotFound
		}
		return nil, err
	}

	place.AmenityIDs, err = s.amenityIDs(ctx, place.ID)
	if err != nil {
		return nil, err
	}
	return &place, nil
}

// List implements store.PlaceStore.List.
func (s *PlaceStore) List(ctx context.Context) ([]*domain.Place, error) {
	return s.list(ctx, `
		SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		FROM places
		ORDER BY id
	`)
}

// ListByOwner implements store.PlaceStore.ListByOwner.
func (s *PlaceStore) ListByOwner(ctx context.Context, ownerID uuid.UUID) ([]*domain.Place, error) {
	return s.list(ctx, `
		SELECT id, title, description, price, latitude, longitude, owner_id, created_at, updated_at
		FROM places
		WHERE owner_id = $1
		ORDER BY id
	`, ownerID)
}

// Update implements store.PlaceStore.Update. The stored amenity set is
// replaced wholesale with the place's current one.
func (s *PlaceStore) Update(ctx context.Context, place *domain.Place) error {
	if err := place.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE places
		SET title = $2, description = $3, price = $4, latitude = $5, longitude = $6, owner_id = $7, updated_at = $8
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		place.ID,
		place.Title,
		place.Description,
		place.Price,
		place.Latitude,
		place.Longitude,
		place.OwnerID,
		place.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	if err := checkRowsAffected(result, store.ErrPlaceNotFound); err != nil {
		return err
	}

	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM place_amenities WHERE place_id = $1`, place.ID); err != nil {
		return err
	}
	return s.insertAmenityLinks(ctx, place.ID, place.AmenityIDs)
}

// Delete implements store.PlaceStore.Delete. Amenity links go away through
// the join table's ON DELETE CASCADE.
func (s *PlaceStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM places WHERE id = $1`, id)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrPlaceNotFound)
}

// WithTx implements store.PlaceStore.WithTx.
func (s *PlaceStore) WithTx(tx *sql.Tx) store.PlaceStore {
	return &PlaceStore{db: tx, logger: s.logger}
}

func (s *PlaceStore) list(ctx context.Context, query string, args ...any) ([]*domain.Place, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var places []*domain.Place
	for rows.Next() {
		var place domain.Place
		if err := rows.Scan(
			&place.ID,
			&place.Title,
			&place.Description,
			&place.Price,
			&place.Latitude,
			&place.Longitude,
			&place.OwnerID,
			&place.CreatedAt,
			&place.UpdatedAt,
		); err != nil {
			return nil, err
		}
		places = append(places, &place)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for _, place := range places {
		place.AmenityIDs, err = s.amenityIDs(ctx, place.ID)
		if err != nil {
			return nil, err
		}
	}
	return places, nil
}

func (s *PlaceStore) amenityIDs(ctx context.Context, placeID uuid.UUID) ([]uuid.UUID, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT amenity_id
		FROM place_amenities
		WHERE place_id = $1
		ORDER BY amenity_id
	`, placeID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (s *PlaceStore) insertAmenityLinks(ctx context.Context, placeID uuid.UUID, amenityIDs []uuid.UUID) error {
	for _, amenityID := range amenityIDs {
		if _, err := s.db.ExecContext(ctx, `
			INSERT INTO place_amenities (place_id, amenity_id)
			VALUES ($1, $2)
		`, placeID, amenityID); err != nil {
			return MapError(err)
		}
	}
	return nil
}
