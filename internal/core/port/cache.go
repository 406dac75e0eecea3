package port

import (
	"context"
	"time"
)

// Cache stores read results by key. Values are JSON encoded by the
// implementation. A miss is (false, nil).
type Cache interface {
	Get(ctx context.Context, key string, dst any) (bool, error)
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
