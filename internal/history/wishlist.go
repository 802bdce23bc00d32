package history

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"strings"
	"sync"

	apperrors "myroom/pkg/errors"
	"myroom/pkg/kvstore"
	"myroom/pkg/logger"
	"myroom/pkg/sanitizer"
)

// Wishlist is the set of hotel ids saved by the visitor, in the order they
// were added.
type Wishlist struct {
	kv  kvstore.Store
	log *logger.Logger

	mu  sync.Mutex
	ids []string
}

func NewWishlist(kv kvstore.Store, log *logger.Logger) *Wishlist {
	return &Wishlist{kv: kv, log: log}
}

func (w *Wishlist) Load(ctx context.Context) []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.ids = nil
	data, err := w.kv.Get(ctx, KeyWishlist)
	switch {
	case errors.Is(err, kvstore.ErrNotFound):
	case err != nil:
		w.log.Error("Failed to read wishlist", "error", err)
	default:
		var ids []string
		if err := json.Unmarshal(data, &ids); err != nil {
			w.log.Warn("Discarding corrupted wishlist", "error", err)
			break
		}
		w.ids = sanitizer.NormalizeStringSlice(ids, strings.TrimSpace)
	}
	return append([]string{}, w.ids...)
}

// Toggle adds id when it is missing and removes it otherwise. It reports
// whether id is in the wishlist afterwards.
func (w *Wishlist) Toggle(ctx context.Context, id string) (bool, error) {
	if id == "" {
		return false, apperrors.InvalidInput("Hotel ID cannot be empty")
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	next := slices.Clone(w.ids)
	added := false
	if i := slices.Index(next, id); i >= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next = append(next, id)
		added = true
	}

	data, err := json.Marshal(next)
	if err != nil {
		return false, apperrors.Internal("Failed to encode wishlist", err)
	}
	if err := w.kv.Set(ctx, KeyWishlist, data); err != nil {
		w.log.Error("Failed to save wishlist", "error", err)
		return false, apperrors.Storage("Failed to save wishlist", err)
	}
	w.ids = next
	return added, nil
}

func (w *Wishlist) Contains(id string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return slices.Contains(w.ids, id)
}

func (w *Wishlist) IDs() []string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return append([]string{}, w.ids...)
}

func (w *Wishlist) Clear(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	if err := w.kv.Remove(ctx, KeyWishlist); err != nil {
		w.log.Error("Failed to clear wishlist", "error", err)
		return apperrors.Storage("Failed to clear wishlist", err)
	}
	w.ids = nil
	return nil
}
