package domain

import (
	"fmt"
	"math/big"
	"strconv"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// TxKind names a state-changing intent.
type TxKind string

const (
	TxCreateCampaign TxKind = "create_campaign"
	TxUpdateCampaign TxKind = "update_campaign"
	TxExtendDeadline TxKind = "extend_deadline"
	TxCancelCampaign TxKind = "cancel_campaign"
	TxDonateNative   TxKind = "donate_native"
	TxDonateToken    TxKind = "donate_token"
	TxWithdraw       TxKind = "withdraw"
	TxRefund         TxKind = "refund"
	TxApprove        TxKind = "approve"
	TxClaimFaucet    TxKind = "claim_faucet"
)

// TargetsCampaign reports whether the kind acts on an existing campaign id.
func (k TxKind) TargetsCampaign() bool {
	switch k {
	case TxCreateCampaign, TxApprove, TxClaimFaucet:
		return false
	default:
		return true
	}
}

// TxState is the lifecycle of one write attempt:
// idle -> submitted -> pending -> confirmed | failed.
// Failed is also reachable directly from idle and submitted.
type TxState string

const (
	TxIdle      TxState = "idle"
	TxSubmitted TxState = "submitted"
	TxPending   TxState = "pending_confirmation"
	TxConfirmed TxState = "confirmed"
	TxFailed    TxState = "failed"
)

// Terminal reports whether no further transition is possible.
func (s TxState) Terminal() bool {
	return s == TxConfirmed || s == TxFailed
}

// WriteIntent describes a single state-changing call. Only the fields the
// kind needs are read.
type WriteIntent struct {
	Kind       TxKind
	CampaignID uint64

	Create *CreateCampaignInput

	Description string
	ImageCID    string

	AdditionalSeconds uint64

	// Amount is the donation value for donate kinds and the allowance for approve.
	Amount  *big.Int
	Spender common.Address
}

// Key identifies the intent for in-flight deduplication and "latest
// attempt" lookups.
func (w WriteIntent) Key(account common.Address) string {
	key := string(w.Kind) + ":" + account.Hex()
	if w.Kind.TargetsCampaign() {
		key += ":" + strconv.FormatUint(w.CampaignID, 10)
	}
	return key
}

// TxAttempt is the tracked state of one submission. Every resubmission
// gets a new attempt; attempts are never reused.
type TxAttempt struct {
	ID         uuid.UUID `json:"id"`
	Key        string    `json:"-"`
	Kind       TxKind    `json:"kind"`
	Account    string    `json:"account"`
	CampaignID *uint64   `json:"campaign_id,omitempty"`
	State      TxState   `json:"state"`
	TxHash     string    `json:"tx_hash,omitempty"`
	Error      string    `json:"-"`
	Message    string    `json:"message,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewTxAttempt starts a fresh attempt in the idle state.
func NewTxAttempt(intent WriteIntent, account common.Address, now time.Time) *TxAttempt {
	a := &TxAttempt{
		ID:        uuid.New(),
		Key:       intent.Key(account),
		Kind:      intent.Kind,
		Account:   account.Hex(),
		State:     TxIdle,
		CreatedAt: now.UTC(),
		UpdatedAt: now.UTC(),
	}
	if intent.Kind.TargetsCampaign() {
		id := intent.CampaignID
		a.CampaignID = &id
	}
	return a
}

// MarkSubmitted records that the transaction was signed.
func (a *TxAttempt) MarkSubmitted(now time.Time) error {
	return a.transition(TxSubmitted, now, TxIdle)
}

// MarkPending records that the transaction was broadcast.
func (a *TxAttempt) MarkPending(hash common.Hash, now time.Time) error {
	if err := a.transition(TxPending, now, TxSubmitted); err != nil {
		return err
	}
	a.TxHash = hash.Hex()
	return nil
}

// MarkConfirmed records a successful receipt.
func (a *TxAttempt) MarkConfirmed(now time.Time) error {
	return a.transition(TxConfirmed, now, TxPending)
}

// MarkFailed moves any non-terminal attempt to failed. raw is the
// technical error kept for logs, message the sentence shown to users.
func (a *TxAttempt) MarkFailed(raw, message string, now time.Time) error {
	if err := a.transition(TxFailed, now, TxIdle, TxSubmitted, TxPending); err != nil {
		return err
	}
	a.Error = raw
	a.Message = message
	return nil
}

func (a *TxAttempt) transition(to TxState, now time.Time, from ...TxState) error {
	for _, s := range from {
		if a.State == s {
			a.State = to
			a.UpdatedAt = now.UTC()
			return nil
		}
	}
	return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, a.State, to)
}
