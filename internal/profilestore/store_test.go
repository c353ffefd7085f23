// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package profilestore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/email-engine/pkg/types"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := NewStore(types.ProfileStoreConfig{Path: filepath.Join(t.TempDir(), "profiles", "profiles.db")})
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleProfile(userID string) *types.UserProfile {
	now := time.Now().UTC()
	return &types.UserProfile{
		UserID:          userID,
		EmailAddress:    userID + "@example.com",
		CreatedAt:       now,
		UpdatedAt:       now,
		StyleMetrics:    types.DefaultStyleMetrics(),
		Preferences:     map[string]string{"sender_role": "Analyst"},
		AnalyzedEmails:  5,
		ConfidenceScore: 0.45,
	}
}

func TestSaveAndLoad(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	want := sampleProfile("sam")
	want.StyleMetrics.FormalityScore = 0.72
	require.NoError(t, s.Save(ctx, want))

	got, err := s.Load(ctx, "sam")
	require.NoError(t, err)
	require.NotNil(t, got)

	assert.Equal(t, "sam", got.UserID)
	assert.Equal(t, "sam@example.com", got.EmailAddress)
	assert.Equal(t, 5, got.AnalyzedEmails)
	assert.Equal(t, 0.45, got.ConfidenceScore)
	assert.Equal(t, 0.72, got.StyleMetrics.FormalityScore)
	assert.Equal(t, "Analyst", got.Preferences["sender_role"])
}

func TestLoadMissing(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Load(context.Background(), "nobody")
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestSaveUpsert(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := sampleProfile("sam")
	require.NoError(t, s.Save(ctx, p))

	p.AnalyzedEmails = 12
	p.ConfidenceScore = 0.66
	p.UpdatedAt = p.UpdatedAt.Add(time.Hour)
	require.NoError(t, s.Save(ctx, p))

	got, err := s.Load(ctx, "sam")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, 12, got.AnalyzedEmails)
	assert.Equal(t, 0.66, got.ConfidenceScore)

	rows, err := s.List(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}

func TestListOrdering(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	base := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	for i, userID := range []string{"old", "middle", "recent"} {
		p := sampleProfile(userID)
		p.UpdatedAt = base.Add(time.Duration(i) * time.Hour)
		require.NoError(t, s.Save(ctx, p))
	}

	rows, err := s.List(ctx)
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, "recent", rows[0].UserID)
	assert.Equal(t, "middle", rows[1].UserID)
	assert.Equal(t, "old", rows[2].UserID)
	assert.Equal(t, base.Add(2*time.Hour), rows[0].UpdatedAt)
}

func TestDelete(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	require.NoError(t, s.Save(ctx, sampleProfile("sam")))
	require.NoError(t, s.Delete(ctx, "sam"))

	got, err := s.Load(ctx, "sam")
	require.NoError(t, err)
	assert.Nil(t, got)

	// Deleting an absent profile is a no-op.
	require.NoError(t, s.Delete(ctx, "sam"))
}

func TestListRejectsCorruptTimestamp(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO profiles (user_id, email_address, analyzed_emails, confidence_score, updated_at, payload)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		"mangled", "mangled@example.com", 1, 0.1, "yesterday-ish", "{}")
	require.NoError(t, err)

	_, err = s.List(ctx)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mangled")
}

func TestReopenPersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "profiles.db")
	ctx := context.Background()

	s, err := NewStore(types.ProfileStoreConfig{Path: path})
	require.NoError(t, err)
	require.NoError(t, s.Save(ctx, sampleProfile("sam")))
	require.NoError(t, s.Close())

	s, err = NewStore(types.ProfileStoreConfig{Path: path})
	require.NoError(t, err)
	defer s.Close()

	got, err := s.Load(ctx, "sam")
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "sam@example.com", got.EmailAddress)
}
