package corpus

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"contentgate/internal/asset"

	_ "github.com/mattn/go-sqlite3"
)

// SQLiteStore is the durable published-content archive. The archive command
// appends each distributed session into it; fatigue analysis reads its
// recency window back out.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates or opens the archive database.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLiteStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to init schema: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) initSchema() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS published_assets (
			id TEXT PRIMARY KEY,
			advisor_id TEXT NOT NULL,
			segment TEXT,
			content_type TEXT,
			text TEXT,
			hook TEXT,
			published_at TIMESTAMP
		);`,
		`CREATE INDEX IF NOT EXISTS idx_published_advisor ON published_assets(advisor_id, published_at);`,
	}
	for _, q := range queries {
		if _, err := s.db.Exec(q); err != nil {
			return err
		}
	}
	return nil
}

// SaveAssets archives a batch, upserting on asset id so re-archiving a
// session is idempotent.
func (s *SQLiteStore) SaveAssets(ctx context.Context, assets []asset.Asset) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO published_assets (id, advisor_id, segment, content_type, text, hook, published_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			advisor_id=excluded.advisor_id,
			segment=excluded.segment,
			content_type=excluded.content_type,
			text=excluded.text,
			hook=excluded.hook,
			published_at=excluded.published_at`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, a := range assets {
		ts := a.Timestamp
		if ts.IsZero() {
			ts = time.Now().UTC()
		}
		if _, err := stmt.ExecContext(ctx, a.ID, a.AdvisorID, string(a.Segment), string(a.Type), a.Text, a.Hook, ts); err != nil {
			return fmt.Errorf("failed to archive asset %s: %w", a.ID, err)
		}
	}
	return tx.Commit()
}

// Load implements Provider against the archive, newest first.
func (s *SQLiteStore) Load(ctx context.Context, advisorID string, windowDays int) ([]asset.Asset, []LoadFailure, error) {
	cutoff := time.Now().AddDate(0, 0, -windowDays)
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, advisor_id, segment, content_type, text, hook, published_at
		FROM published_assets
		WHERE advisor_id = ? AND published_at >= ?
		ORDER BY published_at DESC, id ASC`, advisorID, cutoff)
	if err != nil {
		return nil, nil, err
	}
	defer rows.Close()

	var assets []asset.Asset
	var failures []LoadFailure
	for rows.Next() {
		var a asset.Asset
		var segment, contentType string
		if err := rows.Scan(&a.ID, &a.AdvisorID, &segment, &contentType, &a.Text, &a.Hook, &a.Timestamp); err != nil {
			failures = append(failures, LoadFailure{Path: "sqlite:" + a.ID, Reason: err.Error()})
			continue
		}
		a.Segment = asset.NormalizeSegment(segment)
		a.Type = asset.NormalizeContentType(contentType)
		assets = append(assets, a)
	}
	return assets, failures, rows.Err()
}
