package journal

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

// SQLite is a journal in a local SQLite database file.
type SQLite struct {
	sqlJournal
}

// NewSQLite opens, creating it if needed, the SQLite journal at path.
func NewSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	j, err := newSQLJournal(db, false)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &SQLite{j}, nil
}
