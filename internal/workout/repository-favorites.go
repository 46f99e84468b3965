package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/google/uuid"
)

// favoriteRepository persists the user's favorite workout templates.
type favoriteRepository struct {
	store  *kvstore.Store
	logger *slog.Logger
}

// List returns all favorites.
func (r *favoriteRepository) List(ctx context.Context) ([]FavoriteWorkout, error) {
	var favorites []FavoriteWorkout
	err := loadJSON(ctx, r.store, kvstore.KeyFavoriteWorkouts, &favorites)
	if errors.Is(err, kvstore.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load favorites: %w", err)
	}
	return favorites, nil
}

// Add appends a favorite and assigns its identifier.
func (r *favoriteRepository) Add(ctx context.Context, favorite FavoriteWorkout) (FavoriteWorkout, error) {
	if favorite.Name == "" {
		return FavoriteWorkout{}, fmt.Errorf("favorite workout missing name")
	}
	if len(favorite.ExerciseIDs) == 0 {
		return FavoriteWorkout{}, fmt.Errorf("favorite workout %q has no exercises", favorite.Name)
	}
	favorite.ID = uuid.NewString()

	favorites, err := r.List(ctx)
	if err != nil {
		return FavoriteWorkout{}, err
	}
	favorites = append(favorites, favorite)
	if err = saveJSON(ctx, r.store, kvstore.KeyFavoriteWorkouts, favorites); err != nil {
		return FavoriteWorkout{}, err
	}
	return favorite, nil
}

// Remove deletes a favorite by identifier.
func (r *favoriteRepository) Remove(ctx context.Context, id string) error {
	favorites, err := r.List(ctx)
	if err != nil {
		return err
	}
	for i, favorite := range favorites {
		if favorite.ID != id {
			continue
		}
		favorites = append(favorites[:i], favorites[i+1:]...)
		return saveJSON(ctx, r.store, kvstore.KeyFavoriteWorkouts, favorites)
	}
	return ErrNotFound
}
