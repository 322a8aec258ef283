// Package store implements the record store: CRUD and filtered lookup
// for teams, players, matches, statistics, and users over Postgres.
package store

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound is returned when a referenced record id does not resolve.
var ErrNotFound = errors.New("record not found")

// ErrConflict is returned when a delete is rejected because dependent
// records still reference the target.
var ErrConflict = errors.New("record still referenced")

// Store bundles the per-entity stores over one shared pool. It is
// passed explicitly to its consumers, never held as a package global.
type Store struct {
	Teams      *TeamStore
	Players    *PlayerStore
	Matches    *MatchStore
	Statistics *StatisticStore
	Users      *UserStore
}

// New creates a Store backed by the given pool.
func New(pool *pgxpool.Pool) *Store {
	return &Store{
		Teams:      &TeamStore{pool: pool},
		Players:    &PlayerStore{pool: pool},
		Matches:    &MatchStore{pool: pool},
		Statistics: &StatisticStore{pool: pool},
		Users:      &UserStore{pool: pool},
	}
}
