package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/openstays/stays-api/internal/domain"
	"github.com/openstays/stays-api/internal/platform/logger"
	"github.com/openstays/stays-api/internal/store"
)

// reviewPairConstraint is the unique constraint name on (user_id, place_id).
const reviewPairConstraint = "reviews_user_id_place_id_key"

// ReviewStore implements the store.ReviewStore interface using a PostgreSQL
// database as the storage backend.
type ReviewStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewReviewStore creates a new PostgreSQL implementation of the ReviewStore
// interface.
func NewReviewStore(db store.DBTX, log *slog.Logger) *ReviewStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}
	return &ReviewStore{
		db:     db,
		logger: log.With(slog.String("component", "review_store")),
	}
}

var _ store.ReviewStore = (*ReviewStore)(nil)

// Create implements store.ReviewStore.Create.
func (s *ReviewStore) Create(ctx context.Context, review *domain.Review) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := review.Validate(); err != nil {
		log.Warn("review validation failed during create",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	query := `
		INSERT INTO reviews (id, text, rating, user_id, place_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.Text,
		review.Rating,
		review.UserID,
		review.PlaceID,
		review.CreatedAt,
		review.UpdatedAt,
	)
	if err != nil {
		if IsUniqueViolation(err) {
			if constraintName(err) == reviewPairConstraint {
				return fmt.Errorf("%w: review for (user, place) pair: %v", store.ErrDuplicate, err)
			}
			return mapUniqueViolation(err, store.ErrIDExists)
		}
		if IsForeignKeyViolation(err) {
			return MapError(err)
		}
		log.Error("failed to create review",
			slog.String("error", err.Error()),
			slog.String("review_id", review.ID.String()))
		return err
	}

	log.Debug("review created",
		slog.String("review_id", review.ID.String()),
		slog.String("place_id", review.PlaceID.String()))
	return nil
}

// GetByID implements store.ReviewStore.GetByID.
func (s *ReviewStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Review, error) {
	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE id = $1
	`
	return s.scanReview(s.db.QueryRowContext(ctx, query, id))
}

// GetByUserAndPlace implements store.ReviewStore.GetByUserAndPlace. The
// unique constraint allows at most one row; ORDER BY keeps the query
// deterministic regardless.
func (s *ReviewStore) GetByUserAndPlace(ctx context.Context, userID, placeID uuid.UUID) (*domain.Review, error) {
	query := `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE user_id = $1 AND place_id = $2
		ORDER BY id
		LIMIT 1
	`
	return s.scanReview(s.db.QueryRowContext(ctx, query, userID, placeID))
}

// List implements store.ReviewStore.List.
func (s *ReviewStore) List(ctx context.Context) ([]*domain.Review, error) {
	return s.list(ctx, `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		ORDER BY id
	`)
}

// ListByPlace implements store.ReviewStore.ListByPlace.
func (s *ReviewStore) ListByPlace(ctx context.Context, placeID uuid.UUID) ([]*domain.Review, error) {
	return s.list(ctx, `
		SELECT id, text, rating, user_id, place_id, created_at, updated_at
		FROM reviews
		WHERE place_id = $1
		ORDER BY id
	`, placeID)
}

// Update implements store.ReviewStore.Update. The user and place references
// are immutable, so only text, rating, and the timestamp are written.
func (s *ReviewStore) Update(ctx context.Context, review *domain.Review) error {
	if err := review.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE reviews
		SET text = $2, rating = $3, updated_at = $4
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		review.ID,
		review.Text,
		review.Rating,
		review.UpdatedAt,
	)
	if err != nil {
		return MapError(err)
	}
	return checkRowsAffected(result, store.ErrReviewNotFound)
}

// Delete implements store.ReviewStore.Delete.
func (s *ReviewStore) Delete(ctx context.Context, id uuid.UUID) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return checkRowsAffected(result, store.ErrReviewNotFound)
}

// DeleteByPlace implements store.ReviewStore.DeleteByPlace. Removing zero
// rows is fine; a place without reviews is not an error.
func (s *ReviewStore) DeleteByPlace(ctx context.Context, placeID uuid.UUID) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM reviews WHERE place_id = $1`, placeID)
	return err
}

// WithTx implements store.ReviewStore.WithTx.
func (s *ReviewStore) WithTx(tx *sql.Tx) store.ReviewStore {
	return &ReviewStore{db: tx, logger: s.logger}
}

func (s *ReviewStore) scanReview(row *sql.Row) (*domain.Review, error) {
	var review domain.Review
	err := row.Scan(
		&review.ID,
		&review.Text,
		&review.Rating,
		&review.UserID,
		&review.PlaceID,
		&review.CreatedAt,
		&review.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrReviewNotFound
		}
		return nil, err
	}
	return &review, nil
}

func (s *ReviewStore) list(ctx context.Context, query string, args ...any) ([]*domain.Review, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var reviews []*domain.Review
	for rows.Next() {
		var review domain.Review
		if err := rows.Scan(
			&review.ID,
			&review.Text,
			&review.Rating,
			&review.UserID,
			&review.PlaceID,
			&review.CreatedAt,
			&review.UpdatedAt,
		); err != nil {
			return nil, err
		}
		reviews = append(reviews, &review)
	}
	return reviews, rows.Err()
}
