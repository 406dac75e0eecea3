package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"sedulur-fund/internal/core/domain"
)

// dbtx is the part of pgxpool.Pool the repository uses.
type dbtx interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// TxRepository implements port.TxRepository using pgxpool for PostgreSQL.
type TxRepository struct {
	db dbtx
}

// NewTxRepository returns a new repository instance. pool is usually a
// *pgxpool.Pool.
func NewTxRepository(pool dbtx) *TxRepository {
	return &TxRepository{db: pool}
}

const selectAttempt = `SELECT id, key, kind, account, campaign_id, state, tx_hash, error, message, created_at, updated_at FROM tx_attempts`

// Save upserts the attempt. Only mutable columns change on conflict.
func (r *TxRepository) Save(ctx context.Context, a *domain.TxAttempt) error {
	var campaignID *int64
	if a.CampaignID != nil {
		id := int64(*a.CampaignID)
		campaignID = &id
	}
	_, err := r.db.Exec(ctx, `
        INSERT INTO tx_attempts (id, key, kind, account, campaign_id, state, tx_hash, error, message, created_at, updated_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        ON CONFLICT (id) DO UPDATE SET
            state = EXCLUDED.state,
            tx_hash = EXCLUDED.tx_hash,
            error = EXCLUDED.error,
            message = EXCLUDED.message,
            updated_at = EXCLUDED.updated_at`,
		a.ID, a.Key, string(a.Kind), a.Account, campaignID, string(a.State), a.TxHash, a.Error, a.Message, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		return fmt.Errorf("save attempt %s: %w", a.ID, err)
	}
	return nil
}

func (r *TxRepository) Get(ctx context.Context, id uuid.UUID) (*domain.TxAttempt, error) {
	return scanAttempt(r.db.QueryRow(ctx, selectAttempt+` WHERE id = $1`, id))
}

// Latest returns the newest attempt for key by creation time.
func (r *TxRepository) Latest(ctx context.Context, key string) (*domain.TxAttempt, error) {
	return scanAttempt(r.db.QueryRow(ctx, selectAttempt+` WHERE key = $1 ORDER BY created_at DESC LIMIT 1`, key))
}

func scanAttempt(row pgx.Row) (*domain.TxAttempt, error) {
	var (
		a           domain.TxAttempt
		kind, state string
		campaignID  *int64
	)
	err := row.Scan(&a.ID, &a.Key, &kind, &a.Account, &campaignID, &state, &a.TxHash, &a.Error, &a.Message, &a.CreatedAt, &a.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	a.Kind = domain.TxKind(kind)
	a.State = domain.TxState(state)
	if campaignID != nil {
		id := uint64(*campaignID)
		a.CampaignID = &id
	}
	a.CreatedAt = a.CreatedAt.UTC()
	a.UpdatedAt = a.UpdatedAt.UTC()
	return &a, nil
}
