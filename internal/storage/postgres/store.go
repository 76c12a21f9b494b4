package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/lib/pq"
	"github.com/stpnv0/CampusHaven/internal/storage"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type Store struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func New(db *dbpg.DB) *Store {
	return &Store{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	query := `SELECT value FROM records WHERE key = $1`

	row, err := s.db.QueryRowWithRetry(ctx, s.strategy, query, key)
	if err != nil {
		return nil, fmt.Errorf("get record: %w", err)
	}

	var value []byte
	if err = row.Scan(&value); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("scan record: %w", err)
	}

	return value, nil
}

func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	query := `INSERT INTO records (key, value, updated_at)
			  VALUES ($1, $2, now())
			  ON CONFLICT (key) DO UPDATE
			  SET value = EXCLUDED.value, updated_at = EXCLUDED.updated_at`

	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, key, value); err != nil {
		return fmt.Errorf("put record: %w", err)
	}

	return nil
}

func (s *Store) Delete(ctx context.Context, key string) error {
	query := `DELETE FROM records WHERE key = $1`

	if _, err := s.db.ExecWithRetry(ctx, s.strategy, query, key); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}

	return nil
}
