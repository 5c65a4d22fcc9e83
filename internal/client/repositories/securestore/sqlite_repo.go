package securestore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/potholeauth/internal/dbx"
)

// sqliteRepo is the row-level access to secure_store. It stores whatever
// bytes it is given; sealing happens in SQLiteStore.
type sqliteRepo struct {
	db dbx.DBTX
}

func (r *sqliteRepo) get(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := r.db.QueryRowContext(ctx, `SELECT value FROM secure_store WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to get secure_store[%s]: %w", key, err)
	}
	return value, true, nil
}

func (r *sqliteRepo) set(ctx context.Context, key string, value []byte) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO secure_store (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set secure_store[%s]: %w", key, err)
	}
	return nil
}

func (r *sqliteRepo) delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM secure_store WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete secure_store[%s]: %w", key, err)
	}
	return nil
}
