package order

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/ryo-harano/coffee-app/internal/logger"
	"github.com/ryo-harano/coffee-app/internal/menu"
	"github.com/ryo-harano/coffee-app/internal/store"

	"go.uber.org/zap"
)

type Repository interface {
	// Prepend inserts a new order at the head of the ledger, most
	// recent first.
	Prepend(ctx context.Context, o Order) error
	List(ctx context.Context) ([]Order, error)
	// MarkAllViewed flips every order's viewed flag and persists the
	// ledger once.
	MarkAllViewed(ctx context.Context) error
	UnviewedCount(ctx context.Context) (int, error)
	// HasID reports whether an order with the given id already exists.
	HasID(ctx context.Context, id string) (bool, error)
}

// repository is the append-only ledger, held in memory and written
// back to the blob store as one collection after each mutation.
type repository struct {
	mu     sync.RWMutex
	orders []Order
	blobs  store.Store
}

// NewRepository hydrates the ledger from the blob store. A missing
// blob starts an empty ledger; a corrupt one is logged and discarded
// rather than crashing startup.
func NewRepository(ctx context.Context, blobs store.Store) (Repository, error) {
	r := &repository{blobs: blobs}

	blob, err := blobs.Load(ctx, store.KeyOrders)
	switch {
	case errors.Is(err, store.ErrNotFound):
		return r, nil
	case err != nil:
		return nil, fmt.Errorf("failed to load orders: %w", err)
	}

	if err := json.Unmarshal(blob, &r.orders); err != nil {
		logger.FromCtx(ctx).Warn("order blob is corrupt, starting with an empty ledger",
			zap.Error(err),
		)
		r.orders = nil
		return r, nil
	}

	// Legacy data used beverage temperature as the category.
	for i := range r.orders {
		for j := range r.orders[i].Items {
			r.orders[i].Items[j].Category = menu.NormalizeCategory(string(r.orders[i].Items[j].Category))
		}
	}
	return r, nil
}

func (r *repository) Prepend(ctx context.Context, o Order) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.orders = append([]Order{o}, r.orders...)
	r.persist(ctx)
	return nil
}

func (r *repository) List(_ context.Context) ([]Order, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]Order, len(r.orders))
	copy(out, r.orders)
	return out, nil
}

func (r *repository) MarkAllViewed(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	changed := false
	for i := range r.orders {
		if !r.orders[i].Viewed {
			r.orders[i].Viewed = true
			changed = true
		}
	}
	if changed {
		r.persist(ctx)
	}
	return nil
}

func (r *repository) UnviewedCount(_ context.Context) (int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	count := 0
	for _, o := range r.orders {
		if !o.Viewed {
			count++
		}
	}
	return count, nil
}

func (r *repository) HasID(_ context.Context, id string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, o := range r.orders {
		if o.ID == id {
			return true, nil
		}
	}
	return false, nil
}

// persist writes the full ledger blob. Callers hold the write lock.
// Save failures never roll back the in-memory ledger.
func (r *repository) persist(ctx context.Context) {
	blob, err := json.Marshal(r.orders)
	if err != nil {
		logger.FromCtx(ctx).Warn("failed to encode orders", zap.Error(err))
		return
	}
	if err := r.blobs.Save(ctx, store.KeyOrders, blob); err != nil {
		logger.FromCtx(ctx).Warn("failed to persist orders", zap.Error(err))
	}
}
