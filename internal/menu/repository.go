package menu

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/store"

	"go.uber.org/zap"
)

type Repository interface {
	List(ctx context.Context) ([]Item, error)
	Get(ctx context.Context, id string) (*Item, error)
	Insert(ctx context.Context, item Item) error
	Update(ctx context.Context, item Item) error
	Delete(ctx context.Context, id string) error
}

// repository keeps the whole catalog in memory and writes the full
// collection back to the blob store after every mutation.
type repository struct {
	mu    sync.RWMutex
	items []Item
	blobs store.Store
}

// NewRepository hydrates the catalog from the blob store. A missing
// blob installs the default catalog; a corrupt blob is logged and
// replaced by the defaults rather than crashing startup.
func NewRepository(ctx context.Context, blobs store.Store) (Repository, error) {
	r := &repository{blobs: blobs}

	blob, err := blobs.Load(ctx, store.KeyMenu)
	switch {
	case errors.Is(err, store.ErrNotFound):
		r.items = DefaultItems()
		if err := r.persist(ctx); err != nil {
			return nil, err
		}
		return r, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load menu: %w", err)
	}

	if err := json.Unmarshal(blob, &r.items); err != nil {
		logger.FromCtx(ctx).Warn("menu blob is corrupt, falling back to default catalog",
			zap.Error(err),
		)
		r.items = DefaultItems()
		return r, nil
	}

	for i := range r.items {
		r.items[i].Category = NormalizeCategory(string(r.items[i].Category))
	}
	return r, nil
}

func (r *repository) List(_ context.Context) ([]Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Item, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *repository) Get(_ context.Context, id string) (*Item, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, item := range r.items {
		if item.ID == id {
			cp := item
			return &cp, nil
		}
	}
	return nil, ErrItemNotFound
}

func (r *repository) Insert(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items = append(r.items, item)
	return r.persist(ctx)
}

func (r *repository) Update(ctx context.Context, item Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == item.ID {
			r.items[i] = item
			return r.persist(ctx)
		}
	}
	return ErrItemNotFound
}

func (r *repository) Delete(ctx context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i := range r.items {
		if r.items[i].ID == id {
			r.items = append(r.items[:i], r.items[i+1:]...)
			return r.persist(ctx)
		}
	}
	return ErrItemNotFound
}

// persist writes the full catalog blob. Callers hold the write lock.
// A save failure is logged and swallowed: the in-memory state is the
// source of truth for the session and is never rolled back.
func (r *repository) persist(ctx context.Context) error {
	blob, err := json.Marshal(r.items)
	if err != nil {
		return fmt.Errorf("failed to encode menu: %w", err)
	}
	if err := r.blobs.Save(ctx, store.KeyMenu, blob); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist menu", zap.Error(err))
	}
	return nil
}
