package workout

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/fitness"
	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
	"github.com/google/uuid"
)

// exerciseRepository persists the exercise catalog.
type exerciseRepository struct {
	store  *kvstore.Store
	logger *slog.Logger
}

// List returns the full catalog. A store without one yet gets the built-in
// catalog seeded first.
func (r *exerciseRepository) List(ctx context.Context) (fitness.Catalog, error) {
	var catalog fitness.Catalog
	err := loadJSON(ctx, r.store, kvstore.KeyExercises, &catalog)
	if errors.Is(err, kvstore.ErrNotFound) {
		catalog = builtinExercises()
		if err = r.save(ctx, catalog); err != nil {
			return nil, fmt.Errorf("seed builtin catalog: %w", err)
		}
		return catalog, nil
	}
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}
	return catalog, nil
}

// RefreshBuiltins re-applies the canonical built-in list over the stored
// catalog. Built-in entries are replaced by their canonical definition,
// newly added builtins appear, and custom entries survive untouched.
func (r *exerciseRepository) RefreshBuiltins(ctx context.Context) error {
	stored, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}

	refreshed := fitness.Catalog(builtinExercises())
	for _, def := range stored {
		if def.Custom {
			refreshed = append(refreshed, def)
		}
	}

	if err = r.save(ctx, refreshed); err != nil {
		return fmt.Errorf("save refreshed catalog: %w", err)
	}
	r.logger.LogAttrs(ctx, slog.LevelInfo, "refreshed builtin exercises",
		slog.Int("builtin", len(builtinExercises())),
		slog.Int("total", len(refreshed)))
	return nil
}

// CreateCustom validates and appends a user-authored exercise. The
// identifier is assigned here.
func (r *exerciseRepository) CreateCustom(ctx context.Context, def fitness.ExerciseDefinition) (fitness.ExerciseDefinition, error) {
	def.ID = "custom-" + uuid.NewString()
	def.Custom = true
	if err := def.Validate(); err != nil {
		return fitness.ExerciseDefinition{}, fmt.Errorf("validate exercise: %w", err)
	}

	catalog, err := r.List(ctx)
	if err != nil {
		return fitness.ExerciseDefinition{}, fmt.Errorf("list catalog: %w", err)
	}
	catalog = append(catalog, def)
	if err = r.save(ctx, catalog); err != nil {
		return fitness.ExerciseDefinition{}, fmt.Errorf("save catalog: %w", err)
	}
	return def, nil
}

// UpdateCustom replaces a user-authored exercise. Built-in entries are
// managed by RefreshBuiltins and cannot be edited.
func (r *exerciseRepository) UpdateCustom(ctx context.Context, def fitness.ExerciseDefinition) error {
	def.Custom = true
	if err := def.Validate(); err != nil {
		return fmt.Errorf("validate exercise: %w", err)
	}

	catalog, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}
	for i, existing := range catalog {
		if existing.ID != def.ID {
			continue
		}
		if !existing.Custom {
			return fmt.Errorf("exercise %s: %w", def.ID, ErrBuiltinExercise)
		}
		catalog[i] = def
		return r.save(ctx, catalog)
	}
	return ErrNotFound
}

// DeleteCustom removes a user-authored exercise from the catalog. History
// references to it stay behind and simply stop resolving.
func (r *exerciseRepository) DeleteCustom(ctx context.Context, id string) error {
	catalog, err := r.List(ctx)
	if err != nil {
		return fmt.Errorf("list catalog: %w", err)
	}
	for i, existing := range catalog {
		if existing.ID != id {
			continue
		}
		if !existing.Custom {
			return fmt.Errorf("exercise %s: %w", id, ErrBuiltinExercise)
		}
		catalog = append(catalog[:i], catalog[i+1:]...)
		return r.save(ctx, catalog)
	}
	return ErrNotFound
}

func (r *exerciseRepository) save(ctx context.Context, catalog fitness.Catalog) error {
	return saveJSON(ctx, r.store, kvstore.KeyExercises, catalog)
}
