package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching positive SKU lookups
type CacheRepository interface {
	Get(ctx context.Context, key string) (*StoredProduct, error)
	Set(ctx context.Context, key string, value *StoredProduct, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// Extractor defines the interface for the vision-model extraction client
type Extractor interface {
	ExtractProducts(ctx context.Context, image []byte) ([]Product, error)
}

// ProductStore defines the interface for the downstream product database.
// Lookup returns ErrProductNotFound for a clean miss and ErrDatabaseFailure
// for transport or protocol failures; callers decide how lenient to be.
type ProductStore interface {
	Lookup(ctx context.Context, sku string) (*StoredProduct, error)
	Upsert(ctx context.Context, payload UpsertPayload) error
}
