package tokens

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/nuroki/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/nuroki/internal/dbx"
)

// SQLStorage persists values in the metadata table of the local database.
// SetAll runs in a single transaction.
type SQLStorage struct {
	db *sql.DB
}

func NewSQLStorage(db *sql.DB) *SQLStorage {
	return &SQLStorage{db: db}
}

func (s *SQLStorage) repo(tx dbx.DBTX) metadata.Repository {
	return metadata.NewSQLiteRepository(tx)
}

func (s *SQLStorage) Get(ctx context.Context, key string) (string, bool, error) {
	return s.repo(s.db).Get(ctx, key)
}

func (s *SQLStorage) Set(ctx context.Context, key, value string) error {
	return s.repo(s.db).Set(ctx, key, value)
}

func (s *SQLStorage) Remove(ctx context.Context, key string) error {
	return s.repo(s.db).Delete(ctx, key)
}

func (s *SQLStorage) SetAll(ctx context.Context, values map[string]string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := s.repo(tx)
		for k, v := range values {
			if err := repo.Set(ctx, k, v); err != nil {
				return err
			}
		}
		return nil
	})
}

// RemoveAll deletes keys with a single statement.
func (s *SQLStorage) RemoveAll(ctx context.Context, keys ...string) error {
	return s.repo(s.db).Delete(ctx, keys...)
}
