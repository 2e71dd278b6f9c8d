// internal/daily/store.go
//
// SQLite persistence for daily puzzle results: one result per owner per
// date, plus the per-date leaderboard query.

package daily

import (
	"context"
	"database/sql"
)

// Result is one finished daily round.
type Result struct {
	OwnerID string `json:"ownerId"`
	Date    string `json:"date"`
	Score   int    `json:"score"`
	Words   int    `json:"words"`
}

// Store wraps the daily_results table.
type Store struct{ db *sql.DB }

// NewStore binds a Store to db.
func NewStore(db *sql.DB) *Store { return &Store{db: db} }

// AlreadyPlayed reports whether ownerID has a recorded result for date.
func (s *Store) AlreadyPlayed(ctx context.Context, ownerID, date string) (bool, error) {
	var cnt int
	err := s.db.QueryRowContext(ctx,
		"SELECT COUNT(1) FROM daily_results WHERE owner_id=? AND date=?",
		ownerID, date,
	).Scan(&cnt)
	return cnt > 0, err
}

// InsertResult records one finished daily round, ignoring duplicates.
func (s *Store) InsertResult(ctx context.Context, r Result) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO daily_results(owner_id, date, score, words)
		 VALUES(?,?,?,?)`, r.OwnerID, r.Date, r.Score, r.Words,
	)
	return err
}

// LBRow is one leaderboard entry.
type LBRow struct {
	OwnerID string `json:"ownerId"`
	Score   int    `json:"score"`
	Words   int    `json:"words"`
}

// Leaderboard returns the top results for a date, best score first.
func (s *Store) Leaderboard(ctx context.Context, date string, limit int) ([]LBRow, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT owner_id, score, words
		 FROM daily_results
		 WHERE date=?
		 ORDER BY score DESC, words DESC, created_at ASC
		 LIMIT ?`, date, limit,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []LBRow
	for rows.Next() {
		var r LBRow
		if err := rows.Scan(&r.OwnerID, &r.Score, &r.Words); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
