// Package kvstore persists application state as JSON documents under a
// small fixed set of keys.
package kvstore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/barx10/treningsappen-wife-sub000/internal/sqlite"
)

// Keys under which the application stores its snapshots.
const (
	KeyExercises             = "exercises"
	KeyHistory               = "workout_history"
	KeyActiveSession         = "active_session"
	KeyProfile               = "user_profile"
	KeyFavoriteWorkouts      = "favorite_workouts"
	KeyAIPlanCache           = "ai_plan_cache"
	KeyAIRecommendationCache = "ai_recommendation_cache"
)

// ErrNotFound is returned by Get when the key holds no value.
var ErrNotFound = errors.New("key not found")

// Store reads and writes values in the kv_store table.
type Store struct {
	db *sqlite.Database
}

// New creates a Store backed by the given database.
func New(db *sqlite.Database) *Store {
	return &Store{db: db}
}

// Get returns the value stored under key or ErrNotFound.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	var value string
	err := s.db.ReadOnly.QueryRowContext(ctx, `
		SELECT value
		FROM kv_store
		WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("query kv_store: %w", err)
	}
	return value, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key string, value string) error {
	_, err := s.db.ReadWrite.ExecContext(ctx, `
		INSERT INTO kv_store (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT (key) DO UPDATE SET
			value = excluded.value,
			updated_at = excluded.updated_at`, key, value)
	if err != nil {
		return fmt.Errorf("upsert kv_store: %w", err)
	}
	return nil
}

// Remove deletes the value stored under key. Removing an absent key is not
// an error.
func (s *Store) Remove(ctx context.Context, key string) error {
	if _, err := s.db.ReadWrite.ExecContext(ctx, `
		DELETE FROM kv_store
		WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete from kv_store: %w", err)
	}
	return nil
}
