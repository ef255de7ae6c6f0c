package journal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/foundersfund/fund"
)

// sqlJournal is the database/sql implementation shared by SQLite and Postgres.
type sqlJournal struct {
	db *sql.DB
	// numbered placeholders ($1, $2) instead of ?.
	numbered bool
}

func newSQLJournal(db *sql.DB, numbered bool) (sqlJournal, error) {
	for _, stmt := range Schema {
		if _, err := db.Exec(stmt); err != nil {
			return sqlJournal{}, fmt.Errorf("journal: create schema: %w", err)
		}
	}
	return sqlJournal{db: db, numbered: numbered}, nil
}

// rebind rewrites ? placeholders for the driver.
func (j sqlJournal) rebind(query string) string {
	if !j.numbered {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (j sqlJournal) Record(ctx context.Context, s fund.Snapshot) error {
	body, err := json.Marshal(s)
	if err != nil {
		return fmt.Errorf("journal: encode snapshot %q: %w", s.ID, err)
	}
	_, err = j.db.ExecContext(ctx, j.rebind(`
		INSERT INTO snapshots
		(id, recorded_at, window_start, window_end, wallet, profit_total, realized, unrealized, errors, body)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`),
		s.ID,
		s.Timestamp.UTC().Format(time.RFC3339Nano),
		s.State.Window.Start.String(),
		s.State.Window.End.String(),
		s.State.WalletSizeEndOfWindow.Decimal().String(),
		s.Outputs.ProfitTotal.Decimal().String(),
		s.Outputs.RealizedProfit.Decimal().String(),
		s.State.UnrealizedPnlEndOfWindow.Decimal().String(),
		len(s.Issues.Errors()),
		string(body),
	)
	if err != nil {
		return fmt.Errorf("journal: record snapshot %q: %w", s.ID, err)
	}
	return nil
}

func (j sqlJournal) Get(ctx context.Context, id string) (fund.Snapshot, error) {
	var body string
	err := j.db.QueryRowContext(ctx, j.rebind(`SELECT body FROM snapshots WHERE id = ?`), id).Scan(&body)
	if errors.Is(err, sql.ErrNoRows) {
		return fund.Snapshot{}, fmt.Errorf("%w: %q", ErrNotFound, id)
	}
	if err != nil {
		return fund.Snapshot{}, fmt.Errorf("journal: get snapshot %q: %w", id, err)
	}
	return decodeSnapshot(body)
}

func (j sqlJournal) Trend(ctx context.Context) ([]fund.TrendRow, error) {
	rows, err := j.db.QueryContext(ctx, `SELECT body FROM snapshots ORDER BY recorded_at, id`)
	if err != nil {
		return nil, fmt.Errorf("journal: list snapshots: %w", err)
	}
	defer rows.Close()

	var trend []fund.TrendRow
	for rows.Next() {
		var body string
		if err := rows.Scan(&body); err != nil {
			return nil, err
		}
		s, err := decodeSnapshot(body)
		if err != nil {
			return nil, err
		}
		trend = append(trend, s.TrendRow)
	}
	return trend, rows.Err()
}

func (j sqlJournal) Close() error {
	return j.db.Close()
}

func decodeSnapshot(body string) (fund.Snapshot, error) {
	var s fund.Snapshot
	if err := json.Unmarshal([]byte(body), &s); err != nil {
		return fund.Snapshot{}, fmt.Errorf("journal: decode snapshot: %w", err)
	}
	return s, nil
}
