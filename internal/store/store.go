package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Wilyam390/Pyrenees-forecast/internal/models"
)

// ErrDuplicateEntry reports that an insert hit a uniqueness constraint. The
// weather service converts it into an update, the my-mountains service treats
// it as an idempotent add.
var ErrDuplicateEntry = errors.New("duplicate entry")

const uniqueViolationCode = "23505"

type Store struct {
	pool *pgxpool.Pool
}

func New(ctx context.Context, dsn string) (*Store, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to db: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		return nil, fmt.Errorf("ping db: %w", err)
	}
	return &Store{pool: pool}, nil
}

func (s *Store) Close() {
	s.pool.Close()
}

// Migrate creates the tables on startup. The unique constraint on
// (mountain_id, band) is what keeps at most one cache row per key under
// concurrent writers. The payload column is json rather than jsonb: fresh
// reads must return the stored bytes unchanged, and jsonb rewrites key order.
func (s *Store) Migrate(ctx context.Context) error {
	ddl := []string{
		`CREATE TABLE IF NOT EXISTS weather_cache (
			id          serial PRIMARY KEY,
			mountain_id text NOT NULL,
			band        text NOT NULL,
			payload     json NOT NULL,
			fetched_at  timestamptz NOT NULL,
			ttl_seconds int NOT NULL,
			CONSTRAINT uniq_mtn_band UNIQUE (mountain_id, band)
		)`,
		`CREATE TABLE IF NOT EXISTS my_mountains (
			id            serial PRIMARY KEY,
			mountain_id   text NOT NULL UNIQUE,
			display_order int NOT NULL DEFAULT 0,
			added_at      timestamptz NOT NULL DEFAULT now()
		)`,
	}
	for _, stmt := range ddl {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}
	return nil
}

// GetForecast returns the cache row for (mountainID, band), or nil when no
// row exists.
func (s *Store) GetForecast(ctx context.Context, mountainID, band string) (*models.ForecastCacheEntry, error) {
	var entry models.ForecastCacheEntry
	err := s.pool.QueryRow(ctx,
		`SELECT mountain_id, band, payload, fetched_at, ttl_seconds
		 FROM weather_cache
		 WHERE mountain_id = $1 AND band = $2`,
		mountainID, band,
	).Scan(&entry.MountainID, &entry.Band, &entry.Payload, &entry.FetchedAt, &entry.TTLSeconds)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get forecast: %w", err)
	}
	return &entry, nil
}

// InsertForecast inserts a new cache row. A concurrent first-writer race
// surfaces as ErrDuplicateEntry so the caller can fall back to an update.
func (s *Store) InsertForecast(ctx context.Context, entry models.ForecastCacheEntry) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO weather_cache (mountain_id, band, payload, fetched_at, ttl_seconds)
		 VALUES ($1, $2, $3, $4, $5)`,
		entry.MountainID, entry.Band, []byte(entry.Payload), entry.FetchedAt, entry.TTLSeconds,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("insert forecast: %w", err)
	}
	return nil
}

// UpdateForecast overwrites payload, fetched_at and ttl of an existing row.
func (s *Store) UpdateForecast(ctx context.Context, entry models.ForecastCacheEntry) error {
	_, err := s.pool.Exec(ctx,
		`UPDATE weather_cache
		 SET payload = $3, fetched_at = $4, ttl_seconds = $5
		 WHERE mountain_id = $1 AND band = $2`,
		entry.MountainID, entry.Band, []byte(entry.Payload), entry.FetchedAt, entry.TTLSeconds,
	)
	if err != nil {
		return fmt.Errorf("update forecast: %w", err)
	}
	return nil
}

// AddMountain appends a mountain to the saved list. Adding one that is
// already saved returns ErrDuplicateEntry.
func (s *Store) AddMountain(ctx context.Context, mountainID string) error {
	_, err := s.pool.Exec(ctx,
		`INSERT INTO my_mountains (mountain_id, display_order)
		 VALUES ($1, COALESCE((SELECT MAX(display_order) + 1 FROM my_mountains), 0))`,
		mountainID,
	)
	if isUniqueViolation(err) {
		return ErrDuplicateEntry
	}
	if err != nil {
		return fmt.Errorf("add mountain: %w", err)
	}
	return nil
}

// RemoveMountain deletes a mountain from the saved list. Removing an absent
// one is a no-op.
func (s *Store) RemoveMountain(ctx context.Context, mountainID string) error {
	_, err := s.pool.Exec(ctx,
		`DELETE FROM my_mountains WHERE mountain_id = $1`,
		mountainID,
	)
	if err != nil {
		return fmt.Errorf("remove mountain: %w", err)
	}
	return nil
}

// ListMountains returns saved mountain ids in display order.
func (s *Store) ListMountains(ctx context.Context) ([]string, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT mountain_id FROM my_mountains ORDER BY display_order, added_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("list mountains: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

// ReorderMountains rewrites display_order to match the given id sequence.
// Ids not present in the list are ignored.
func (s *Store) ReorderMountains(ctx context.Context, mountainIDs []string) error {
	batch := &pgx.Batch{}
	for i, id := range mountainIDs {
		batch.Queue(
			`UPDATE my_mountains SET display_order = $1 WHERE mountain_id = $2`,
			i, id,
		)
	}
	br := s.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range mountainIDs {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("reorder mountains: %w", err)
		}
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
