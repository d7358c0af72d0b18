package ratelimit

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgStore persists counters in the rate_limits table. Counters survive
// process restarts and are shared across instances.
type PgStore struct {
	pool *pgxpool.Pool
}

// NewPgStore creates a PgStore backed by the given pool.
func NewPgStore(pool *pgxpool.Pool) *PgStore {
	return &PgStore{pool: pool}
}

var _ Store = (*PgStore)(nil)

// Allow implements Store. Expired rows are swept first (an expired counter
// is logically absent), then a single upsert performs the check-and-increment
// so two requests racing for the last slot admit exactly one.
func (s *PgStore) Allow(ctx context.Context, identifier string, window time.Duration, max int) (bool, error) {
	if _, err := s.pool.Exec(ctx,
		`DELETE FROM rate_limits WHERE expires_at < NOW()`,
	); err != nil {
		return false, fmt.Errorf("ratelimit: sweep: %w", err)
	}

	var count int
	err := s.pool.QueryRow(ctx,
		`INSERT INTO rate_limits (identifier, count, expires_at)
		 VALUES ($1, 1, $2)
		 ON CONFLICT (identifier) DO UPDATE
		   SET count = rate_limits.count + 1
		   WHERE rate_limits.count < $3
		 RETURNING count`,
		identifier, time.Now().UTC().Add(window), max,
	).Scan(&count)
	if errors.Is(err, pgx.ErrNoRows) {
		// Conflict row exists and already holds max admissions.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("ratelimit: increment: %w", err)
	}
	return true, nil
}
