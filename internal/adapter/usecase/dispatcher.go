package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/google/uuid"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/errmsg"
)

// storeTimeout bounds repository writes made outside a request.
const storeTimeout = 5 * time.Second

var errReverted = errors.New("transaction reverted")

// dispatch runs one write attempt. It returns once the transaction is
// broadcast or has failed; a failed attempt is returned without error so
// callers can show its message. Confirmation continues in the background.
func (u *CrowdfundUseCase) dispatch(ctx context.Context, intent domain.WriteIntent) (*domain.TxAttempt, error) {
	if u.writer == nil {
		return nil, domain.ErrWritesDisabled
	}

	attempt := domain.NewTxAttempt(intent, u.writer.From(), u.now())
	if err := u.acquire(attempt); err != nil {
		return nil, err
	}

	// The fresh attempt replaces the key's latest before anything is signed
	// so pollers never see the previous outcome.
	if err := u.repo.Save(ctx, attempt); err != nil {
		u.release(attempt.Key)
		return nil, fmt.Errorf("save attempt: %w", err)
	}

	tx, err := u.writer.Sign(ctx, intent)
	if err != nil {
		u.fail(ctx, attempt, err)
		u.release(attempt.Key)
		return attempt, nil
	}
	u.advance(ctx, attempt, attempt.MarkSubmitted(u.now()))

	if err = u.writer.Send(ctx, tx); err != nil {
		u.fail(ctx, attempt, err)
		u.release(attempt.Key)
		return attempt, nil
	}
	u.advance(ctx, attempt, attempt.MarkPending(tx.Hash(), u.now()))

	snapshot := *attempt
	go u.track(attempt, tx, intent)
	return &snapshot, nil
}

// acquire reserves the attempt's key. At most one write per key is
// outstanding.
func (u *CrowdfundUseCase) acquire(a *domain.TxAttempt) error {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.closed {
		return domain.ErrWritesDisabled
	}
	if id, ok := u.inFlight[a.Key]; ok {
		return fmt.Errorf("%w: attempt %s", domain.ErrWriteInFlight, id)
	}
	u.inFlight[a.Key] = a.ID
	u.wg.Add(1)
	return nil
}

func (u *CrowdfundUseCase) release(key string) {
	u.mu.Lock()
	delete(u.inFlight, key)
	u.mu.Unlock()
	u.wg.Done()
}

// track waits for the receipt and records the terminal state.
func (u *CrowdfundUseCase) track(attempt *domain.TxAttempt, tx *types.Transaction, intent domain.WriteIntent) {
	defer u.release(attempt.Key)

	ctx, cancel := context.WithTimeout(u.base, u.opts.ConfirmTimeout)
	defer cancel()

	receipt, err := u.writer.WaitMined(ctx, tx)
	switch {
	case err != nil && u.base.Err() != nil:
		u.logger.Warn("confirmation tracking stopped",
			slog.String("attempt_id", attempt.ID.String()),
			slog.String("tx_hash", attempt.TxHash))
	case err != nil:
		u.fail(context.Background(), attempt, err)
	case receipt.Status != types.ReceiptStatusSuccessful:
		u.fail(context.Background(), attempt, fmt.Errorf("%w: %s", errReverted, attempt.TxHash))
	default:
		u.advance(context.Background(), attempt, attempt.MarkConfirmed(u.now()))
		u.invalidate(intent, attempt)
	}
}

// advance persists a transition that already happened on attempt.
func (u *CrowdfundUseCase) advance(ctx context.Context, attempt *domain.TxAttempt, transitionErr error) {
	if transitionErr != nil {
		u.logger.Error("attempt transition", slog.String("attempt_id", attempt.ID.String()), slog.Any("error", transitionErr))
		return
	}
	u.logger.Info("write attempt",
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("kind", string(attempt.Kind)),
		slog.String("state", string(attempt.State)),
		slog.String("tx_hash", attempt.TxHash))
	u.save(ctx, attempt)
}

func (u *CrowdfundUseCase) fail(ctx context.Context, attempt *domain.TxAttempt, cause error) {
	msg := errmsg.TranslateErr(cause)
	if errors.Is(cause, errReverted) || errors.Is(cause, context.DeadlineExceeded) {
		msg = errmsg.MsgTxFailed
	}
	if err := attempt.MarkFailed(cause.Error(), msg, u.now()); err != nil {
		u.logger.Error("attempt transition", slog.String("attempt_id", attempt.ID.String()), slog.Any("error", err))
		return
	}
	u.logger.Info("write attempt",
		slog.String("attempt_id", attempt.ID.String()),
		slog.String("kind", string(attempt.Kind)),
		slog.String("state", string(attempt.State)),
		slog.String("tx_hash", attempt.TxHash),
		slog.Any("error", cause))
	u.save(ctx, attempt)
}

func (u *CrowdfundUseCase) save(ctx context.Context, attempt *domain.TxAttempt) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), storeTimeout)
	defer cancel()
	if err := u.repo.Save(ctx, attempt); err != nil {
		u.logger.Error("save attempt", slog.String("attempt_id", attempt.ID.String()), slog.Any("error", err))
	}
}

// invalidate drops cached reads a confirmed write may have changed.
func (u *CrowdfundUseCase) invalidate(intent domain.WriteIntent, attempt *domain.TxAttempt) {
	from := u.writer.From()
	keys := []string{balanceKey(from), allowanceKey(from), lastClaimKey(from)}
	if intent.Kind.TargetsCampaign() {
		keys = append(keys, campaignKey(intent.CampaignID), donationKey(intent.CampaignID, from))
	}

	ctx, cancel := context.WithTimeout(context.Background(), storeTimeout)
	defer cancel()
	if err := u.cacheDrop(ctx, keys...); err != nil {
		u.logger.Warn("cache invalidation failed", slog.String("attempt_id", attempt.ID.String()), slog.Any("error", err))
	}
}

func (u *CrowdfundUseCase) Attempt(ctx context.Context, id uuid.UUID) (*domain.TxAttempt, error) {
	a, err := u.repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get attempt: %w", err)
	}
	if a == nil {
		return nil, domain.ErrAttemptNotFound
	}
	return a, nil
}

func (u *CrowdfundUseCase) LatestAttempt(ctx context.Context, intent domain.WriteIntent) (*domain.TxAttempt, error) {
	if u.writer == nil {
		return nil, domain.ErrWritesDisabled
	}
	a, err := u.repo.Latest(ctx, intent.Key(u.writer.From()))
	if err != nil {
		return nil, fmt.Errorf("latest attempt: %w", err)
	}
	if a == nil {
		return nil, domain.ErrAttemptNotFound
	}
	return a, nil
}
