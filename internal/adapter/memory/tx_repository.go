// Package memory keeps transaction attempts in process. It backs the
// service when Postgres is disabled.
package memory

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"sedulur-fund/internal/core/domain"
)

// TxRepository implements port.TxRepository with maps guarded by a mutex.
// Stored attempts are copies; callers never share memory with the store.
type TxRepository struct {
	mu       sync.RWMutex
	attempts map[uuid.UUID]domain.TxAttempt
	latest   map[string]uuid.UUID
}

func NewTxRepository() *TxRepository {
	return &TxRepository{
		attempts: make(map[uuid.UUID]domain.TxAttempt),
		latest:   make(map[string]uuid.UUID),
	}
}

// Save inserts or replaces the attempt. The first save of an id makes it
// the latest attempt for its key.
func (r *TxRepository) Save(_ context.Context, attempt *domain.TxAttempt) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.attempts[attempt.ID]; !ok {
		r.latest[attempt.Key] = attempt.ID
	}
	r.attempts[attempt.ID] = clone(attempt)
	return nil
}

func (r *TxRepository) Get(_ context.Context, id uuid.UUID) (*domain.TxAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	a, ok := r.attempts[id]
	if !ok {
		return nil, nil
	}
	return &a, nil
}

func (r *TxRepository) Latest(_ context.Context, key string) (*domain.TxAttempt, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	id, ok := r.latest[key]
	if !ok {
		return nil, nil
	}
	a := r.attempts[id]
	return &a, nil
}

func clone(a *domain.TxAttempt) domain.TxAttempt {
	c := *a
	if a.CampaignID != nil {
		id := *a.CampaignID
		c.CampaignID = &id
	}
	return c
}
