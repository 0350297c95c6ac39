package credentials

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Donghyun-K/board-client/internal/client/repositories/metadata"
	"github.com/Donghyun-K/board-client/internal/dbx"
)

// SQLiteStore keeps the token in the metadata table of the client database,
// so it survives restarts.
type SQLiteStore struct {
	db  *sql.DB
	now func() time.Time
}

var _ Store = (*SQLiteStore)(nil)

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db, now: time.Now}
}

func (s *SQLiteStore) Set(ctx context.Context, token string) error {
	if token == "" {
		return ErrEmptyToken
	}
	savedAt := s.now().UTC().Format(time.RFC3339Nano)

	return dbx.WithTx(ctx, s.db, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, TokenKey, []byte(token)); err != nil {
			return err
		}
		return repo.Set(ctx, SavedAtKey, []byte(savedAt))
	})
}

func (s *SQLiteStore) Get(ctx context.Context) (string, bool, error) {
	v, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, TokenKey)
	if err != nil {
		return "", false, err
	}
	if !found || len(v) == 0 {
		return "", false, nil
	}
	return string(v), true, nil
}

func (s *SQLiteStore) SavedAt(ctx context.Context) (time.Time, bool, error) {
	v, found, err := metadata.NewSQLiteRepository(s.db).Get(ctx, SavedAtKey)
	if err != nil || !found {
		return time.Time{}, false, err
	}
	at, err := time.Parse(time.RFC3339Nano, string(v))
	if err != nil {
		return time.Time{}, false, fmt.Errorf("parse %s: %w", SavedAtKey, err)
	}
	return at, true, nil
}

func (s *SQLiteStore) Clear(ctx context.Context) error {
	return metadata.NewSQLiteRepository(s.db).Delete(ctx, TokenKey, SavedAtKey)
}
