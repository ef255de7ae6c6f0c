// Package journal records fund snapshots for audit and trend analysis.
package journal

import (
	"context"
	"errors"
	"fmt"

	"github.com/foundersfund/fund"
)

// ErrNotFound is returned by Get for an unknown snapshot id.
var ErrNotFound = errors.New("journal: snapshot not found")

// Journal is an append-only store of snapshots.
type Journal interface {
	// Record appends a snapshot. Recording the same id twice is an error.
	Record(ctx context.Context, s fund.Snapshot) error
	// Get returns the snapshot with the given id.
	Get(ctx context.Context, id string) (fund.Snapshot, error)
	// Trend returns the trend rows of every snapshot, oldest first.
	Trend(ctx context.Context) ([]fund.TrendRow, error)
	Close() error
}

// Kinds of journal.
const (
	KindSQLite   = "sqlite"
	KindPostgres = "postgres"
	KindCSV      = "csv"
)

// Open opens a journal of the given kind. dsn is a file path for sqlite and
// csv, a connection string for postgres.
func Open(kind, dsn string) (Journal, error) {
	switch kind {
	case KindSQLite, "":
		return NewSQLite(dsn)
	case KindPostgres:
		return NewPostgres(dsn)
	case KindCSV:
		return NewCSV(dsn)
	default:
		return nil, fmt.Errorf("journal: unknown kind %q", kind)
	}
}
