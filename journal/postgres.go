package journal

import (
	"database/sql"

	_ "github.com/jackc/pgx/v5/stdlib"
)

// Postgres is a journal shared by several fund operators in a PostgreSQL database.
type Postgres struct {
	sqlJournal
}

// NewPostgres connects to dsn and creates the snapshots table if needed.
func NewPostgres(dsn string) (*Postgres, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	j, err := newSQLJournal(db, true)
	if err != nil {
		db.Close()
		return nil, err
	}
	return &Postgres{j}, nil
}
