// AngelaMos | 2026
// sql.go

package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/carterperez-dev/cskit/internal/config"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "pgx"
)

const schema = `CREATE TABLE IF NOT EXISTS kv_entries (
	entry_key   TEXT PRIMARY KEY,
	entry_value TEXT NOT NULL
)`

// SQLStore keeps blobs in a single kv_entries table. The same queries run
// on SQLite and PostgreSQL; placeholders are rebound per driver.
type SQLStore struct {
	db *sqlx.DB

	getQuery    string
	upsertQuery string
	deleteQuery string
}

func NewSQLStore(
	ctx context.Context,
	driver string,
	cfg config.StoreConfig,
) (*SQLStore, error) {
	db, err := sqlx.ConnectContext(ctx, driver, cfg.DSN)
	if err != nil {
		return nil, fmt.Errorf("connect to %s: %w", driver, err)
	}

	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(cfg.MaxOpenConns)
		db.SetMaxIdleConns(cfg.MaxIdleConns)
		db.SetConnMaxLifetime(jitteredDuration(cfg.ConnMaxLifetime))
		db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)
	}

	s := &SQLStore{
		db:          db,
		getQuery:    db.Rebind(`SELECT entry_value FROM kv_entries WHERE entry_key = ?`),
		upsertQuery: db.Rebind(`INSERT INTO kv_entries (entry_key, entry_value) VALUES (?, ?) ON CONFLICT (entry_key) DO UPDATE SET entry_value = excluded.entry_value`),
		deleteQuery: db.Rebind(`DELETE FROM kv_entries WHERE entry_key = ?`),
	}

	if _, err := db.ExecContext(ctx, schema); err != nil {
		_ = db.Close() //nolint:errcheck // cleanup on schema failure
		return nil, fmt.Errorf("create kv schema: %w", err)
	}

	return s, nil
}

func (s *SQLStore) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.db.GetContext(ctx, &value, s.getQuery, key)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("select %s: %w", key, err)
	}
	return value, true, nil
}

func (s *SQLStore) Set(ctx context.Context, key, value string) error {
	if _, err := s.db.ExecContext(ctx, s.upsertQuery, key, value); err != nil {
		return fmt.Errorf("upsert %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ExecContext(ctx, s.deleteQuery, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}

func (s *SQLStore) Keys(ctx context.Context) ([]string, error) {
	var keys []string
	if err := s.db.SelectContext(ctx, &keys, `SELECT entry_key FROM kv_entries ORDER BY entry_key`); err != nil {
		return nil, fmt.Errorf("list keys: %w", err)
	}
	return keys, nil
}

func (s *SQLStore) Apply(ctx context.Context, ops ...Op) error {
	return InTx(ctx, s.db, func(tx *sqlx.Tx) error {
		for _, op := range ops {
			var err error
			if op.Delete {
				_, err = tx.ExecContext(ctx, s.deleteQuery, op.Key)
			} else {
				_, err = tx.ExecContext(ctx, s.upsertQuery, op.Key, op.Value)
			}
			if err != nil {
				return fmt.Errorf("apply %s: %w", op.Key, err)
			}
		}
		return nil
	})
}

func (s *SQLStore) Ping(ctx context.Context) error {
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := s.db.PingContext(pingCtx); err != nil {
		return fmt.Errorf("database ping failed: %w", err)
	}
	return nil
}

func (s *SQLStore) Stats() sql.DBStats {
	return s.db.Stats()
}

func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

func InTx(ctx context.Context, db *sqlx.DB, fn func(tx *sqlx.Tx) error) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback() //nolint:errcheck // best-effort rollback on panic
			panic(p)
		}
	}()

	if err := fn(tx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			return fmt.Errorf("rollback failed: %w (original: %w)", rbErr, err)
		}
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}

	return nil
}

func jitteredDuration(base time.Duration) time.Duration {
	if base < 7 {
		return base
	}
	//nolint:gosec // G404: non-security-sensitive jitter for connection pool
	jitter := time.Duration(rand.Int64N(int64(base / 7)))
	return base + jitter
}
