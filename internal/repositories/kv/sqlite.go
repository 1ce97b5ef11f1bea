package kv

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/myblog/internal/dbx"
	"github.com/dmitrijs2005/myblog/internal/migrations"
	"github.com/pressly/goose/v3"

	_ "modernc.org/sqlite"
)

// SQLiteStore keeps every key in one row of the kv table.
type SQLiteStore struct {
	db *sql.DB
}

func NewSQLiteStore(db *sql.DB) *SQLiteStore {
	return &SQLiteStore{db: db}
}

// RunMigrations applies the embedded goose migrations.
func RunMigrations(ctx context.Context, db *sql.DB) error {
	goose.SetBaseFS(migrations.Migrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	return goose.UpContext(ctx, db, ".")
}

// sqliteParams are added to every DSN unless the caller already set them.
// Several processes may share one file: writers wait for the lock instead of
// failing with SQLITE_BUSY, and transactions take the write lock on BEGIN so
// a read-then-write never has to upgrade.
var sqliteParams = []struct{ key, value string }{
	{"_pragma", "busy_timeout(5000)"},
	{"_txlock", "immediate"},
}

func sqliteDSN(dsn string) string {
	query := ""
	if i := strings.IndexByte(dsn, '?'); i >= 0 {
		query = dsn[i+1:]
	}

	var b strings.Builder
	b.WriteString(dsn)
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	for _, p := range sqliteParams {
		if hasSQLiteParam(query, p.key, p.value) {
			continue
		}
		b.WriteString(sep)
		b.WriteString(p.key)
		b.WriteString("=")
		b.WriteString(p.value)
		sep = "&"
	}
	return b.String()
}

// hasSQLiteParam reports whether query already sets key. _pragma may repeat,
// so it only counts when it names the same pragma.
func hasSQLiteParam(query, key, value string) bool {
	for _, kv := range strings.Split(query, "&") {
		k, v, _ := strings.Cut(kv, "=")
		if k != key {
			continue
		}
		if key != "_pragma" {
			return true
		}
		name, _, _ := strings.Cut(value, "(")
		if strings.HasPrefix(strings.ToLower(v), name) {
			return true
		}
	}
	return false
}

// OpenSQLite opens (creating if needed) the database at dsn and migrates it.
// The pool is limited to one connection: the store has a single writer and
// ":memory:" databases are per connection.
func OpenSQLite(ctx context.Context, dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", sqliteDSN(dsn))
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", dsn, err)
	}
	db.SetMaxOpenConns(1)

	if err := RunMigrations(ctx, db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate sqlite %s: %w", dsn, err)
	}
	return NewSQLiteStore(db), nil
}

func getValue(ctx context.Context, q dbx.DBTX, key string) ([]byte, error) {
	var value []byte
	err := q.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if value == nil {
		value = []byte{}
	}
	return value, nil
}

func setValue(ctx context.Context, q dbx.DBTX, key string, value []byte) error {
	if value == nil {
		value = []byte{}
	}
	_, err := q.ExecContext(ctx, `
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

func (r *SQLiteStore) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := getValue(ctx, r.db, key)
	if err != nil {
		return nil, fmt.Errorf("failed to get kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStore) Set(ctx context.Context, key string, value []byte) error {
	if err := setValue(ctx, r.db, key, value); err != nil {
		return fmt.Errorf("failed to set kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStore) Delete(ctx context.Context, key string) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key)
	if err != nil {
		return fmt.Errorf("failed to delete kv[%s]: %w", key, err)
	}
	return nil
}

func (r *SQLiteStore) Take(ctx context.Context, key string) ([]byte, error) {
	value, err := dbx.InTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) ([]byte, error) {
		value, err := getValue(ctx, tx, key)
		if err != nil || value == nil {
			return value, err
		}
		if _, err := tx.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
			return nil, err
		}
		return value, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to take kv[%s]: %w", key, err)
	}
	return value, nil
}

func (r *SQLiteStore) Incr(ctx context.Context, key string) (int64, error) {
	n, err := dbx.InTx(ctx, r.db, nil, func(ctx context.Context, tx dbx.DBTX) (int64, error) {
		value, err := getValue(ctx, tx, key)
		if err != nil {
			return 0, err
		}
		n, err := parseCounter(value)
		if err != nil {
			return 0, err
		}
		n++
		if err := setValue(ctx, tx, key, []byte(strconv.FormatInt(n, 10))); err != nil {
			return 0, err
		}
		return n, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to incr kv[%s]: %w", key, err)
	}
	return n, nil
}

func (r *SQLiteStore) Clear(ctx context.Context) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM kv`)
	if err != nil {
		return fmt.Errorf("failed to clear kv: %w", err)
	}
	return nil
}

func (r *SQLiteStore) List(ctx context.Context) (map[string][]byte, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT key, value FROM kv`)
	if err != nil {
		return nil, fmt.Errorf("failed to list kv: %w", err)
	}
	defer rows.Close()

	result := make(map[string][]byte)
	for rows.Next() {
		var key string
		var value []byte
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("failed to scan kv row: %w", err)
		}
		result[key] = value
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate kv rows: %w", err)
	}

	return result, nil
}

func (r *SQLiteStore) Close() error {
	return r.db.Close()
}
