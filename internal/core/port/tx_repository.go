package port

import (
	"context"

	"github.com/google/uuid"

	"sedulur-fund/internal/core/domain"
)

// TxRepository persists write attempts so callers can poll them.
// Implementations must be safe for concurrent use.
type TxRepository interface {
	// Save inserts or replaces the attempt by id.
	Save(ctx context.Context, attempt *domain.TxAttempt) error
	// Get returns the attempt or nil when it does not exist.
	Get(ctx context.Context, id uuid.UUID) (*domain.TxAttempt, error)
	// Latest returns the most recently created attempt for key, or nil.
	Latest(ctx context.Context, key string) (*domain.TxAttempt, error)
}
