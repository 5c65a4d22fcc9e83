package securestore

import (
	"context"
	"database/sql"
	"fmt"
	"sort"

	"github.com/dmitrijs2005/potholeauth/internal/client/migrations"
	"github.com/dmitrijs2005/potholeauth/internal/common"
	"github.com/dmitrijs2005/potholeauth/internal/cryptox"
	"github.com/dmitrijs2005/potholeauth/internal/dbx"
	"github.com/dmitrijs2005/potholeauth/internal/filex"
	"github.com/pressly/goose/v3"
	_ "modernc.org/sqlite"
)

// SQLiteStore keeps values AES-GCM sealed under a device key. The entry key
// is bound in as additional data, so a value moved to another key does not
// open.
type SQLiteStore struct {
	db        *sql.DB
	deviceKey []byte
}

func NewSQLiteStore(db *sql.DB, deviceKey []byte) (*SQLiteStore, error) {
	if len(deviceKey) != cryptox.KeySize {
		return nil, fmt.Errorf("device key must be %d bytes, got %d", cryptox.KeySize, len(deviceKey))
	}
	return &SQLiteStore{db: db, deviceKey: deviceKey}, nil
}

// RunMigrations applies the embedded client schema.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// Open opens (creating if needed) the database at dbPath and the device key
// at keyPath, and migrates the schema.
func Open(ctx context.Context, dbPath, keyPath string) (*SQLiteStore, error) {
	if err := filex.EnsureParentDir(dbPath); err != nil {
		return nil, err
	}

	deviceKey, err := filex.ReadOrCreateSecret(keyPath, cryptox.KeySize, common.GenerateRandByteArray)
	if err != nil {
		return nil, fmt.Errorf("device key: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, err
	}
	// a single connection serializes writers and keeps transactions simple
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return NewSQLiteStore(db, deviceKey)
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	sealed, ok, err := (&sqliteRepo{db: s.db}).get(ctx, key)
	if err != nil || !ok {
		return nil, ok, err
	}

	value, err := cryptox.Open(sealed, s.deviceKey, []byte(key))
	if err != nil {
		return nil, false, fmt.Errorf("%w: %s", ErrCorrupted, key)
	}
	return value, true, nil
}

func (s *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	return s.SetMany(ctx, map[string][]byte{key: value})
}

func (s *SQLiteStore) Delete(ctx context.Context, key string) error {
	return (&sqliteRepo{db: s.db}).delete(ctx, key)
}

func (s *SQLiteStore) SetMany(ctx context.Context, values map[string][]byte) error {
	keys := make([]string, 0, len(values))
	sealed := make(map[string][]byte, len(values))
	for k, v := range values {
		b, err := cryptox.Seal(v, s.deviceKey, []byte(k))
		if err != nil {
			return err
		}
		keys = append(keys, k)
		sealed[k] = b
	}
	sort.Strings(keys)

	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := &sqliteRepo{db: tx}
		for _, k := range keys {
			if err := repo.set(ctx, k, sealed[k]); err != nil {
				return err
			}
		}
		return nil
	})
}

func (s *SQLiteStore) DeleteMany(ctx context.Context, keys ...string) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := &sqliteRepo{db: tx}
		for _, k := range keys {
			if err := repo.delete(ctx, k); err != nil {
				return err
			}
		}
		return nil
	})
}
