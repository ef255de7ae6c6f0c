package journal

// Schema creates the snapshots table. Amounts are stored as exact decimal
// text and timestamps as RFC 3339 UTC text, which sorts chronologically.
var Schema = []string{
	`CREATE TABLE IF NOT EXISTS snapshots (
	id TEXT PRIMARY KEY,
	recorded_at TEXT NOT NULL,
	window_start TEXT NOT NULL,
	window_end TEXT NOT NULL,
	wallet TEXT NOT NULL,
	profit_total TEXT NOT NULL,
	realized TEXT NOT NULL,
	unrealized TEXT NOT NULL,
	errors INTEGER NOT NULL,
	body TEXT NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS idx_snapshots_recorded_at ON snapshots(recorded_at)`,
}
