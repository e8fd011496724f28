package cache

import (
	"context"
	"database/sql"
	"errors"

	_ "github.com/tursodatabase/go-libsql"
)

// SQLiteMedium stores the blob in a one-row table of a local libsql/SQLite
// database. SQLite serializes writers, so individual reads and writes are
// ordered by the database.
type SQLiteMedium struct {
	db     *sql.DB
	ownsDB bool
}

const sqliteBlobSchema = `
	CREATE TABLE IF NOT EXISTS TranslationBlob (
		ID INTEGER PRIMARY KEY CHECK (ID = 1),
		Data BLOB NOT NULL
	);
`

// NewSQLiteMedium opens (or creates) the database file and ensures the blob
// table exists.
func NewSQLiteMedium(file string) (*SQLiteMedium, error) {
	db, err := sql.Open("libsql", "file:"+file)
	if err != nil {
		return nil, &Error{Message: "opening cache database", Cause: err}
	}

	m, err := NewSQLiteMediumFromDB(db)
	if err != nil {
		_ = db.Close()
		return nil, err
	}
	m.ownsDB = true
	return m, nil
}

// NewSQLiteMediumFromDB wraps an existing database handle. The caller keeps
// ownership of the handle.
func NewSQLiteMediumFromDB(db *sql.DB) (*SQLiteMedium, error) {
	if _, err := db.Exec(sqliteBlobSchema); err != nil {
		return nil, &Error{Message: "creating TranslationBlob table", Cause: err}
	}
	return &SQLiteMedium{db: db}, nil
}

// Read returns the stored blob, ok is false when no row has been written yet.
func (m *SQLiteMedium) Read(ctx context.Context) ([]byte, bool, error) {
	var data []byte
	err := m.db.QueryRowContext(ctx,
		`SELECT Data FROM TranslationBlob WHERE ID = 1`,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, &Error{Message: "reading blob row", Cause: err}
	}
	return data, true, nil
}

// Write upserts the single blob row.
func (m *SQLiteMedium) Write(ctx context.Context, data []byte) error {
	_, err := m.db.ExecContext(ctx,
		`INSERT INTO TranslationBlob (ID, Data) VALUES (1, ?)
		 ON CONFLICT (ID) DO UPDATE SET Data = excluded.Data`,
		data,
	)
	if err != nil {
		return &Error{Message: "writing blob row", Cause: err}
	}
	return nil
}

// Close closes the database handle if this medium opened it.
func (m *SQLiteMedium) Close() error {
	if m.ownsDB {
		return m.db.Close()
	}
	return nil
}

// Verify SQLiteMedium implements Medium
var _ Medium = (*SQLiteMedium)(nil)
