package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
)

// profileRepository persists the user profile.
type profileRepository struct {
	store  *kvstore.Store
	logger *slog.Logger
}

// Get returns the stored profile. A store without one yields a default
// profile with the general training goal rather than an error.
func (r *profileRepository) Get(ctx context.Context) (fitness.UserProfile, error) {
	var profile fitness.UserProfile
	err := loadJSON(ctx, r.store, kvstore.KeyProfile, &profile)
	if errors.Is(err, kvstore.ErrNotFound) {
		return fitness.UserProfile{Goal: fitness.GoalGeneral}, nil
	}
	if err != nil {
		return fitness.UserProfile{}, fmt.Errorf("load profile: %w", err)
	}
	if profile.Goal == "" {
		profile.Goal = fitness.GoalGeneral
	}
	return profile, nil
}

// Set stores the profile.
func (r *profileRepository) Set(ctx context.Context, profile fitness.UserProfile) error {
	return saveJSON(ctx, r.store, kvstore.KeyProfile, profile)
}
