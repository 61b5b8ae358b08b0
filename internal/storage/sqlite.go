package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using modernc.org/sqlite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite opens a SQLite database at the given path and configures WAL mode.
func NewSQLite(dsn string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	for _, pragma := range []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout=5000",
		"PRAGMA synchronous=NORMAL",
	} {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, eris.Wrapf(err, "sqlite: exec %s", pragma)
		}
	}
	return &SQLiteStore{db: db}, nil
}

const sqliteMigration = `
CREATE TABLE IF NOT EXISTS profiles (
	driver_id        TEXT PRIMARY KEY,
	profile_id       TEXT NOT NULL UNIQUE,
	full_name        TEXT,
	email            TEXT,
	phone            TEXT,
	risk_level       TEXT NOT NULL,
	risk_score       INTEGER NOT NULL DEFAULT 0,
	confidence_score REAL NOT NULL DEFAULT 0,
	status           TEXT NOT NULL DEFAULT 'pending',
	filename         TEXT,
	document         TEXT NOT NULL,
	created_at       DATETIME NOT NULL DEFAULT (datetime('now')),
	updated_at       DATETIME NOT NULL DEFAULT (datetime('now'))
);

CREATE INDEX IF NOT EXISTS idx_profiles_status ON profiles(status);
CREATE INDEX IF NOT EXISTS idx_profiles_risk_level ON profiles(risk_level);
CREATE INDEX IF NOT EXISTS idx_profiles_full_name ON profiles(full_name);
CREATE INDEX IF NOT EXISTS idx_profiles_created_at ON profiles(created_at);
`

func (s *SQLiteStore) Migrate(ctx context.Context) error {
	_, err := s.db.ExecContext(ctx, sqliteMigration)
	return eris.Wrap(err, "sqlite: migrate")
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) Insert(ctx context.Context, summary Summary, document map[string]any) error {
	docJSON, err := json.Marshal(document)
	if err != nil {
		return eris.Wrap(err, "sqlite: marshal document")
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles
		 (driver_id, profile_id, full_name, email, phone, risk_level, risk_score,
		  confidence_score, status, filename, document, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		summary.DriverID, summary.ProfileID, summary.FullName, summary.Email,
		summary.Phone, summary.RiskLevel, summary.RiskScore, summary.ConfidenceScore,
		summary.Status, summary.Filename, string(docJSON),
		summary.CreatedAt, summary.UpdatedAt,
	)
	return eris.Wrapf(err, "sqlite: insert profile %s", summary.DriverID)
}

const summaryColumns = `driver_id, profile_id, full_name, email, phone,
	risk_level, risk_score, confidence_score, status, filename,
	created_at, updated_at`

func (s *SQLiteStore) GetByID(ctx context.Context, driverID string) (*Record, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT `+summaryColumns+`, document FROM profiles WHERE driver_id = ?`,
		driverID,
	)

	var sm Summary
	var fullName, email, phone, filename sql.NullString
	var docJSON string
	err := row.Scan(&sm.DriverID, &sm.ProfileID, &fullName, &email, &phone,
		&sm.RiskLevel, &sm.RiskScore, &sm.ConfidenceScore, &sm.Status, &filename,
		&sm.CreatedAt, &sm.UpdatedAt, &docJSON)
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, eris.Wrapf(err, "sqlite: get profile %s", driverID)
	}
	sm.FullName, sm.Email, sm.Phone, sm.Filename =
		fullName.String, email.String, phone.String, filename.String

	var doc map[string]any
	if err := json.Unmarshal([]byte(docJSON), &doc); err != nil {
		return nil, eris.Wrapf(err, "sqlite: unmarshal profile %s", driverID)
	}

	// The status column is authoritative; the stored document keeps its
	// creation-time snapshot.
	doc["status"] = sm.Status
	doc["updated_at"] = sm.UpdatedAt
	return &Record{Summary: sm, Document: doc}, nil
}

func (s *SQLiteStore) List(ctx context.Context, filter ListFilter) ([]Summary, error) {
	query := `SELECT ` + summaryColumns + ` FROM profiles WHERE 1=1`
	var args []any

	if filter.Status != "" {
		query += ` AND status = ?`
		args = append(args, filter.Status)
	}
	query += ` ORDER BY created_at DESC`

	limit := filter.Limit
	if limit <= 0 {
		limit = 100
	}
	query += ` LIMIT ?`
	args = append(args, limit)

	if filter.Offset > 0 {
		query += ` OFFSET ?`
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: list profiles")
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (s *SQLiteStore) Search(ctx context.Context, query string, limit int) ([]Summary, error) {
	if limit <= 0 {
		limit = 50
	}
	like := "%" + query + "%"
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+summaryColumns+` FROM profiles
		 WHERE full_name LIKE ? OR email LIKE ? OR phone LIKE ? OR profile_id LIKE ?
		 ORDER BY created_at DESC LIMIT ?`,
		like, like, like, like, limit,
	)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: search profiles")
	}
	defer rows.Close()
	return scanSummaries(rows)
}

func (s *SQLiteStore) UpdateStatus(ctx context.Context, driverID, status string) error {
	res, err := s.db.ExecContext(ctx,
		`UPDATE profiles SET status = ?, updated_at = ? WHERE driver_id = ?`,
		status, time.Now().UTC().Format(time.RFC3339), driverID,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: update status %s", driverID)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrap(err, "sqlite: rows affected")
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *SQLiteStore) Statistics(ctx context.Context) (*Statistics, error) {
	stats := &Statistics{
		ByRiskLevel: make(map[string]int),
		ByStatus:    make(map[string]int),
	}

	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM profiles`,
	).Scan(&stats.TotalProfiles); err != nil {
		return nil, eris.Wrap(err, "sqlite: count profiles")
	}

	if err := s.countBy(ctx, "risk_level", stats.ByRiskLevel); err != nil {
		return nil, err
	}
	if err := s.countBy(ctx, "status", stats.ByStatus); err != nil {
		return nil, err
	}

	// created_at holds RFC3339 UTC strings; format the cutoff the same way
	// so the comparison stays lexical.
	if err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM profiles WHERE created_at >= strftime('%Y-%m-%dT%H:%M:%SZ', 'now', '-1 day')`,
	).Scan(&stats.RecentUploads); err != nil {
		return nil, eris.Wrap(err, "sqlite: count recent uploads")
	}
	return stats, nil
}

func (s *SQLiteStore) countBy(ctx context.Context, column string, out map[string]int) error {
	rows, err := s.db.QueryContext(ctx,
		`SELECT `+column+`, COUNT(*) FROM profiles GROUP BY `+column,
	)
	if err != nil {
		return eris.Wrapf(err, "sqlite: count by %s", column)
	}
	defer rows.Close()

	for rows.Next() {
		var key string
		var n int
		if err := rows.Scan(&key, &n); err != nil {
			return eris.Wrapf(err, "sqlite: scan count by %s", column)
		}
		out[key] = n
	}
	return eris.Wrapf(rows.Err(), "sqlite: count by %s iterate", column)
}

func scanSummaries(rows *sql.Rows) ([]Summary, error) {
	var summaries []Summary
	for rows.Next() {
		var sm Summary
		var fullName, email, phone, filename sql.NullString
		if err := rows.Scan(&sm.DriverID, &sm.ProfileID, &fullName, &email, &phone,
			&sm.RiskLevel, &sm.RiskScore, &sm.ConfidenceScore, &sm.Status, &filename,
			&sm.CreatedAt, &sm.UpdatedAt); err != nil {
			return nil, eris.Wrap(err, "sqlite: scan summary")
		}
		sm.FullName, sm.Email, sm.Phone, sm.Filename =
			fullName.String, email.String, phone.String, filename.String
		summaries = append(summaries, sm)
	}
	return summaries, eris.Wrap(rows.Err(), "sqlite: iterate summaries")
}
