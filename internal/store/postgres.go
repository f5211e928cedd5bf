package store

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// postgresStore implements Store on a PostgreSQL key-value table, so
// session state survives restarts when the service runs with a database.
type postgresStore struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewPostgresStore creates a PostgreSQL-backed store.
func NewPostgresStore(pool *pgxpool.Pool, logger zerolog.Logger) *postgresStore {
	return &postgresStore{
		pool:   pool,
		logger: logger.With().Str("store", "postgres").Logger(),
	}
}

// EnsureSchema creates the backing table if it does not exist.
func (s *postgresStore) EnsureSchema(ctx context.Context) error {
	schema := `
		CREATE TABLE IF NOT EXISTS session_state (
			key VARCHAR(255) PRIMARY KEY,
			value BYTEA NOT NULL,
			updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
		)
	`

	if _, err := s.pool.Exec(ctx, schema); err != nil {
		s.logger.Error().Err(err).Msg("failed to create session_state table")
		return fmt.Errorf("failed to create session_state table: %w", err)
	}

	return nil
}

// Load returns the value stored under key, or ErrNotFound.
func (s *postgresStore) Load(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM session_state WHERE key = $1`

	var value []byte
	err := s.pool.QueryRow(ctx, query, key).Scan(&value)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, ErrNotFound
		}
		s.logger.Error().Err(err).Str("key", key).Msg("failed to load state")
		return nil, fmt.Errorf("failed to load state for key %s: %w", key, err)
	}

	return value, nil
}

// Save writes the value under key, replacing any previous value.
func (s *postgresStore) Save(ctx context.Context, key string, value []byte) error {
	query := `
		INSERT INTO session_state (key, value, updated_at)
		VALUES ($1, $2, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE
		SET value = EXCLUDED.value, updated_at = CURRENT_TIMESTAMP
	`

	if _, err := s.pool.Exec(ctx, query, key, value); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to save state")
		return fmt.Errorf("failed to save state for key %s: %w", key, err)
	}

	return nil
}

// Delete removes the key. Deleting an absent key is not an error.
func (s *postgresStore) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM session_state WHERE key = $1`

	if _, err := s.pool.Exec(ctx, query, key); err != nil {
		s.logger.Error().Err(err).Str("key", key).Msg("failed to delete state")
		return fmt.Errorf("failed to delete state for key %s: %w", key, err)
	}

	return nil
}
