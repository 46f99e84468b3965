package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
)

// sessionRepository persists the workout history and the single active
// session.
type sessionRepository struct {
	store  *kvstore.Store
	logger *slog.Logger
}

// History returns all non-active sessions, oldest first in storage order.
func (r *sessionRepository) History(ctx context.Context) ([]fitness.WorkoutSession, error) {
	var history []fitness.WorkoutSession
	err := loadJSON(ctx, r.store, kvstore.KeyHistory, &history)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load history: %w", err)
	}
	return history, nil
}

// Active returns the in-progress session or ErrNotFound.
func (r *sessionRepository) Active(ctx context.Context) (fitness.WorkoutSession, error) {
	var sess fitness.WorkoutSession
	err := loadJSON(ctx, r.store, kvstore.KeyActiveSession, &sess)
	if errors.Is(err, kvstore.ErrNotFound) {
		return fitness.WorkoutSession{}, ErrNotFound
	}
	if err != nil {
		return fitness.WorkoutSession{}, fmt.Errorf("load active session: %w", err)
	}
	return sess, nil
}

// SaveActive stores the in-progress session.
func (r *sessionRepository) SaveActive(ctx context.Context, sess fitness.WorkoutSession) error {
	return saveJSON(ctx, r.store, kvstore.KeyActiveSession, sess)
}

// ClearActive removes the in-progress session.
func (r *sessionRepository) ClearActive(ctx context.Context) error {
	if err := r.store.Remove(ctx, kvstore.KeyActiveSession); err != nil {
		return fmt.Errorf("clear active session: %w", err)
	}
	return nil
}

// Append adds a finished session to the history. Sessions in the history
// are immutable.
func (r *sessionRepository) Append(ctx context.Context, sess fitness.WorkoutSession) error {
	history, err := r.History(ctx)
	if err != nil {
		return err
	}
	history = append(history, sess)
	if err = saveJSON(ctx, r.store, kvstore.KeyHistory, history); err != nil {
		return err
	}
	r.logger.LogAttrs(ctx, slog.LevelInfo, "appended session to history",
		slog.String("session", sess.ID),
		slog.String("status", string(sess.Status)),
		slog.Int("history_size", len(history)))
	return nil
}
