package store

import (
	"context"
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteKV backs the KV contract with a single-table SQLite database.
// Snapshots live in records(key, value); the database file is the unit
// of durability.
type SQLiteKV struct {
	db     *sql.DB
	dbFile string
}

// OpenSQLite opens (or creates) the database at path and ensures the
// schema exists.
func OpenSQLite(ctx context.Context, path string) (*SQLiteKV, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, wrapErr("kv", "open", path, err)
	}
	// SQLite allows one writer; a single connection avoids lock errors.
	db.SetMaxOpenConns(1)
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, wrapErr("kv", "ping", path, err)
	}
	const schema = `CREATE TABLE IF NOT EXISTS records (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);`
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, wrapErr("kv", "create schema", path, err)
	}
	return &SQLiteKV{db: db, dbFile: path}, nil
}

func (s *SQLiteKV) Read(ctx context.Context, key string) ([]byte, bool, error) {
	var value []byte
	err := s.db.QueryRowContext(ctx, "SELECT value FROM records WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, wrapErr("kv", "read", key, err)
	}
	return value, true, nil
}

func (s *SQLiteKV) Write(ctx context.Context, key string, value []byte) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT INTO records (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	return wrapErr("kv", "write", key, err)
}

func (s *SQLiteKV) Close() error {
	return s.db.Close()
}
