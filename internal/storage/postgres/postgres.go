package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresStorage: Postgres реализация storage.Backend поверх таблицы kv_entries
type PostgresStorage struct {
	pool *pgxpool.Pool
}

// New открывает пул соединений и проверяет доступность базы
func New(ctx context.Context, databaseURL string) (*PostgresStorage, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStorage{pool: pool}, nil
}

func (s *PostgresStorage) Get(ctx context.Context, ownerUserID, key string) ([]byte, bool, error) {
	query := `
		SELECT value
		FROM kv_entries
		WHERE owner_user_id = $1 AND key = $2
	`

	var value []byte
	err := s.pool.QueryRow(ctx, query, ownerUserID, key).Scan(&value)
	if err == pgx.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get kv entry %s: %w", key, err)
	}

	return value, true, nil
}

func (s *PostgresStorage) Set(ctx context.Context, ownerUserID, key string, value []byte) error {
	query := `
		INSERT INTO kv_entries (owner_user_id, key, value, updated_at)
		VALUES ($1, $2, $3, NOW())
		ON CONFLICT (owner_user_id, key)
		DO UPDATE SET
			value = EXCLUDED.value,
			updated_at = NOW()
	`

	// nil []byte would be sent as NULL
	if value == nil {
		value = []byte{}
	}

	if _, err := s.pool.Exec(ctx, query, ownerUserID, key, value); err != nil {
		return fmt.Errorf("failed to set kv entry %s: %w", key, err)
	}
	return nil
}

func (s *PostgresStorage) Delete(ctx context.Context, ownerUserID, key string) error {
	query := `DELETE FROM kv_entries WHERE owner_user_id = $1 AND key = $2`

	if _, err := s.pool.Exec(ctx, query, ownerUserID, key); err != nil {
		return fmt.Errorf("failed to delete kv entry %s: %w", key, err)
	}
	return nil
}

// Close закрывает пул
func (s *PostgresStorage) Close() error {
	s.pool.Close()
	return nil
}
