// Package store is the persistence collaborator: whole collections are
// saved and loaded as opaque JSON blobs under fixed storage keys, the
// same shape the storefront used in browser local storage.
package store

import (
	"context"
	"errors"
)

// Fixed storage keys. The v7 suffix is the storage schema generation
// carried over from the client data; bumping it orphans old blobs
// instead of migrating them.
const (
	KeyMenu   = "coffee-menu-v7"
	KeyOrders = "coffee-orders-v7"
)

var (
	ErrNotFound = errors.New("storage key not found")
)

// Store loads and saves opaque blobs by key. Load returns ErrNotFound
// when the key has never been written.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, blob []byte) error
}
