// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package profilestore persists user style profiles in a SQLite database.
package profilestore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/email-engine/pkg/types"
)

// Store manages the profile SQLite database.
type Store struct {
	db *sql.DB
}

// NewStore opens or creates the profile database at cfg.Path, creating the
// parent directory and schema as needed.
func NewStore(cfg types.ProfileStoreConfig) (*Store, error) {
	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating profile directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS profiles (
			user_id TEXT PRIMARY KEY,
			email_address TEXT,
			analyzed_emails INTEGER NOT NULL DEFAULT 0,
			confidence_score REAL NOT NULL DEFAULT 0,
			updated_at TEXT NOT NULL,
			payload TEXT NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_profiles_updated_at ON profiles(updated_at)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Save writes a profile, replacing any existing record for the same user.
func (s *Store) Save(ctx context.Context, profile *types.UserProfile) error {
	payload, err := json.Marshal(profile)
	if err != nil {
		return fmt.Errorf("serializing profile %s: %w", profile.UserID, err)
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email_address, analyzed_emails, confidence_score, updated_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(user_id) DO UPDATE SET
			email_address = excluded.email_address,
			analyzed_emails = excluded.analyzed_emails,
			confidence_score = excluded.confidence_score,
			updated_at = excluded.updated_at,
			payload = excluded.payload`,
		profile.UserID,
		profile.EmailAddress,
		profile.AnalyzedEmails,
		profile.ConfidenceScore,
		profile.UpdatedAt.UTC().Format(time.RFC3339Nano),
		string(payload),
	)
	if err != nil {
		return fmt.Errorf("saving profile %s: %w", profile.UserID, err)
	}
	return nil
}

// Load returns the profile for userID, or (nil, nil) when no record exists.
func (s *Store) Load(ctx context.Context, userID string) (*types.UserProfile, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM profiles WHERE user_id = ?`, userID,
	).Scan(&payload)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("loading profile %s: %w", userID, err)
	}

	var profile types.UserProfile
	if err := json.Unmarshal([]byte(payload), &profile); err != nil {
		return nil, fmt.Errorf("parsing profile %s: %w", userID, err)
	}
	return &profile, nil
}

// Summary is one row of the profile listing.
type Summary struct {
	UserID          string
	EmailAddress    string
	AnalyzedEmails  int
	ConfidenceScore float64
	UpdatedAt       time.Time
}

// List returns summaries for all stored profiles, most recently updated
// first.
func (s *Store) List(ctx context.Context) ([]Summary, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT user_id, email_address, analyzed_emails, confidence_score, updated_at
		 FROM profiles ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("listing profiles: %w", err)
	}
	defer rows.Close()

	var out []Summary
	for rows.Next() {
		var row Summary
		var updatedAt string
		if err := rows.Scan(&row.UserID, &row.EmailAddress, &row.AnalyzedEmails, &row.ConfidenceScore, &updatedAt); err != nil {
			return nil, fmt.Errorf("scanning profile row: %w", err)
		}
		ts, err := time.Parse(time.RFC3339Nano, updatedAt)
		if err != nil {
			return nil, fmt.Errorf("parsing updated_at for profile %s: %w", row.UserID, err)
		}
		row.UpdatedAt = ts
		out = append(out, row)
	}
	return out, rows.Err()
}

// Delete removes the profile for userID. Deleting a missing profile is not
// an error.
func (s *Store) Delete(ctx context.Context, userID string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM profiles WHERE user_id = ?`, userID); err != nil {
		return fmt.Errorf("deleting profile %s: %w", userID, err)
	}
	return nil
}
