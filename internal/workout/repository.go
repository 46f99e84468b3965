package workout

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/barx10/treningsappen-wife-sub000/internal/kvstore"
)

// repository groups the per-entity stores over the shared key-value table.
type repository struct {
	exercises *exerciseRepository
	sessions  *sessionRepository
	profile   *profileRepository
	favorites *favoriteRepository
}

func newRepository(store *kvstore.Store, logger *slog.Logger) *repository {
	return &repository{
		exercises: &exerciseRepository{store: store, logger: logger},
		sessions:  &sessionRepository{store: store, logger: logger},
		profile:   &profileRepository{store: store, logger: logger},
		favorites: &favoriteRepository{store: store, logger: logger},
	}
}

// loadJSON reads the snapshot stored under key into dst. A missing key
// returns kvstore.ErrNotFound with dst untouched.
func loadJSON(ctx context.Context, store *kvstore.Store, key string, dst any) error {
	raw, err := store.Get(ctx, key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode %s snapshot: %w", key, err)
	}
	return nil
}

// saveJSON serializes src and stores it under key.
func saveJSON(ctx context.Context, store *kvstore.Store, key string, src any) error {
	raw, err := json.Marshal(src)
	if err != nil {
		return fmt.Errorf("encode %s snapshot: %w", key, err)
	}
	if err := store.Set(ctx, key, string(raw)); err != nil {
		return fmt.Errorf("store %s snapshot: %w", key, err)
	}
	return nil
}
