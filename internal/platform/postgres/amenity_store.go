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

// amenityNameConstraint is the unique constraint name on amenities.name.
const amenityNameConstraint = "amenities_name_key"

// AmenityStore implements the store.AmenityStore interface using a
// PostgreSQL database as the storage backend.
type AmenityStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewAmenityStore creates a new PostgreSQL implementation of the
// AmenityStore interface.
func NewAmenityStore(db store.DBTX, log *slog.Logger) *AmenityStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &AmenityStore{
		db:     db,
		logger: log.With(slog.String("component", "amenity_store")),
	}
}

var _ store.AmenityStore = (*AmenityStore)(nil)

// Create implements store.AmenityStore.Create.
func (s *AmenityStore) Create(ctx context.Context, amenity *domain.Amenity) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := amenity.Validate(); err != nil {
		return err
	}

	query := `
		INSERT INTO amenities (id, name, created_at, updated_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		amenity.ID,
		amenity.Name,
		amenity.CreatedAt,
		amenity.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			return s.mapAmenityUnique(err)
		}
		log.Error("failed to create amenity",
			slog.String("error", err.Error()),
			slog.String("amenity_id", amenity.ID.String()))
		return err
	}

	log.Debug("amenity created", slog.String("amenity_id", amenity.ID.String()))
	return nil
}

// GetByID implements store.AmenityStore.GetByID.
func (s *AmenityStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE id = $1
	`
	return s.scanAmenity(s.db.QueryRowContext(ctx, query, id))
}

// GetByName implements store.AmenityStore.GetByName.
func (s *AmenityStore) GetByName(ctx context.Context, name string) (*domain.Amenity, error) {
	query := `
		SELECT id, name, created_at, updated_at
		FROM amenities
		WHERE name = $1
		ORDER BY id
		LIMIT 1
	`
	return s.scanAmenity(s.db.QueryRowContext(ctx, query, name))
}

// List implements store.AmenityStore.List.
func (s *AmenityStore) List(ctx context.Context) ([]*domain.Amenity, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, name, created_at, updated_at
		FROM amenities
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var amenities []*domain.Amenity
	for rows.Next() {
		var amenity domain.Amenity
		if err := rows.Scan(
			&amenity.ID,
			&amenity.Name,
			&amenity.CreatedAt,
			&amenity.UpdatedAt,
		); err != nil {
			return nil, err
		}
		amenities = append(amenities, &amenity)
	}
	return amenities, rows.Err()
}

// Update implements store.AmenityStore.Update.
func (s *AmenityStore) Update(ctx context.Context, amenity *domain.Amenity) error {
	if err := amenity.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE amenities
		SET name = $2, updated_at = $3
		WHERE id = $1
	`
	result, err := s.db.ExecContext(ctx, query, amenity.ID, amenity.Name, amenity.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err) {
			return s.mapAmenityUnique(err)
		}
		return err
	}
	return checkRowsAffected(result, store.ErrAmenityNotFound)
}

// Delete implements store.AmenityStore.Delete. Links in place_amenities go
// away through ON DELETE CASCADE.
func (s *AmenityStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM amenities WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(result, store.ErrAmenityNotFound)
}

// WithTx implements store.AmenityStore.WithTx.
func (s *AmenityStore) WithTx(tx *sql.Tx) store.AmenityStore {
	return &AmenityStore{db: tx, logger: s.logger}
}

func (s *AmenityStore) scanAmenity(row *sql.Row) (*domain.Amenity, error) {
	var amenity domain.Amenity
	err := row.Scan(
		&amenity.ID,
		&amenity.Name,
		&amenity.CreatedAt,
		&amenity.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrAmenityNotFound
		}
		return nil, err
	}
	return &amenity, nil
}

func (s *AmenityStore) mapAmenityUnique(err error) error {
	if constraintName(err) == amenityNameConstraint {
		return mapUniqueViolation(err, store.ErrAmenityNameExists)
	}
	return mapUniqueViolation(err, store.ErrIDExists)
}
