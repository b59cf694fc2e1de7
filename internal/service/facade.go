package service

import (
	"context"
	"database/sql"
	"log/slog"

	"github.com/openstays/stays-api/internal/service/auth"
	"github.com/openstays/stays-api/internal/store"
)

// Facade coordinates the per-entity stores and enforces cross-entity rules.
// All handler-facing operations live on this type; it holds no mutable state
// of its own and is safe for concurrent use.
type Facade struct {
	users     store.UserStore
	places    store.PlaceStore
	reviews   store.ReviewStore
	amenities store.AmenityStore
	hasher    auth.PasswordHasher
	db        *sql.DB // nil when the backend has no transactions (memory)
	logger    *slog.Logger
}

// NewFacade creates a Facade over the given stores. db may be nil, in which
// case multi-store operations run without a shared transaction; pass the
// database handle for the relational backend so they run atomically.
func NewFacade(
	users store.UserStore,
	places store.PlaceStore,
	reviews store.ReviewStore,
	amenities store.AmenityStore,
	hasher auth.PasswordHasher,
	db *sql.DB,
	log *slog.Logger,
) *Facade {
	if log == nil {
		log = slog.Default()
	}
	return &Facade{
		users:     users,
		places:    places,
		reviews:   reviews,
		amenities: amenities,
		hasher:    hasher,
		db:        db,
		logger:    log,
	}
}

// stores is the set of per-entity stores one facade operation runs against,
// possibly bound to a shared transaction.
type stores struct {
	users     store.UserStore
	places    store.PlaceStore
	reviews   store.ReviewStore
	amenities store.AmenityStore
}

// run invokes fn against transaction-bound stores when a database handle is
// present, and against the plain stores otherwise. fn returning an error
// rolls the transaction back.
func (f *Facade) run(ctx context.Context, fn func(ctx context.Context, s stores) error) error {
	if f.db == nil {
		return fn(ctx, stores{f.users, f.places, f.reviews, f.amenities})
	}
	return store.RunInTransaction(ctx, f.db, func(ctx context.Context, tx *sql.Tx) error {
		return fn(ctx, stores{
			users:     f.users.WithTx(tx),
			places:    f.places.WithTx(tx),
			reviews:   f.reviews.WithTx(tx),
			amenities: f.amenities.WithTx(tx),
		})
	})
}
