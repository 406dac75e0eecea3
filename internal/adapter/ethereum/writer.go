package ethereum

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"

	"sedulur-fund/internal/core/domain"
)

// Writer implements port.ChainWriter with a single local key. Nonces are
// assigned locally so transactions signed back to back never collide; the
// counter resyncs from the node's pending nonce after a failed broadcast.
type Writer struct {
	client *Client
	auth   *bind.TransactOpts

	mu    sync.Mutex
	nonce *uint64 // next nonce to sign with, nil until synced
}

// NewWriter creates a writer that signs with the hex encoded private key
// for chainID.
func (c *Client) NewWriter(hexKey string, chainID uint64) (*Writer, error) {
	key, err := crypto.HexToECDSA(strings.TrimPrefix(hexKey, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse private key: %w", err)
	}
	return c.newWriter(key, chainID)
}

func (c *Client) newWriter(key *ecdsa.PrivateKey, chainID uint64) (*Writer, error) {
	auth, err := bind.NewKeyedTransactorWithChainID(key, new(big.Int).SetUint64(chainID))
	if err != nil {
		return nil, fmt.Errorf("new transactor: %w", err)
	}
	return &Writer{client: c, auth: auth}, nil
}

// From returns the signing account.
func (w *Writer) From() common.Address {
	return w.auth.From
}

// Sign builds, estimates and signs the transaction for intent without
// broadcasting it.
func (w *Writer) Sign(ctx context.Context, intent domain.WriteIntent) (*types.Transaction, error) {
	contract, method, args, value, err := w.prepare(intent)
	if err != nil {
		return nil, err
	}

	w.mu.Lock()
	defer w.mu.Unlock()

	if w.nonce == nil {
		n, err := w.client.backend.PendingNonceAt(ctx, w.auth.From)
		if err != nil {
			return nil, fmt.Errorf("pending nonce: %w", err)
		}
		w.nonce = &n
	}

	opts := *w.auth
	opts.Context = ctx
	opts.NoSend = true
	opts.Value = value
	opts.Nonce = new(big.Int).SetUint64(*w.nonce)

	tx, err := contract.Transact(&opts, method, args...)
	if err != nil {
		return nil, fmt.Errorf("sign %s: %w", method, w.client.decodeRevert(err))
	}
	*w.nonce++
	return tx, nil
}

// Send broadcasts a signed transaction. A rejected broadcast leaves a gap
// at its nonce, so the next Sign asks the node again.
func (w *Writer) Send(ctx context.Context, tx *types.Transaction) error {
	if err := w.client.backend.SendTransaction(ctx, tx); err != nil {
		w.resync()
		return fmt.Errorf("send %s: %w", tx.Hash().Hex(), w.client.decodeRevert(err))
	}
	return nil
}

func (w *Writer) resync() {
	w.mu.Lock()
	w.nonce = nil
	w.mu.Unlock()
}

// WaitMined blocks until the transaction has a receipt or ctx is done.
func (w *Writer) WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error) {
	receipt, err := bind.WaitMined(ctx, w.client.backend, tx)
	if err != nil {
		return nil, fmt.Errorf("wait %s: %w", tx.Hash().Hex(), err)
	}
	return receipt, nil
}

func (w *Writer) prepare(in domain.WriteIntent) (*bind.BoundContract, string, []any, *big.Int, error) {
	cf := w.client.crowdFunding
	id := idArg(in.CampaignID)

	switch in.Kind {
	case domain.TxCreateCampaign:
		if in.Create == nil {
			return nil, "", nil, nil, fmt.Errorf("%s: missing campaign input", in.Kind)
		}
		c := in.Create
		secs := uint64(c.Duration.Seconds())
		return cf, "createCampaign", []any{
			c.Title, c.Description, c.TargetAmount, secs, c.ImageCID, uint8(c.PaymentType), uint8(c.Category),
		}, nil, nil
	case domain.TxUpdateCampaign:
		return cf, "updateCampaign", []any{id, in.Description, in.ImageCID}, nil, nil
	case domain.TxExtendDeadline:
		return cf, "extendDeadline", []any{id, in.AdditionalSeconds}, nil, nil
	case domain.TxCancelCampaign:
		return cf, "cancelCampaign", []any{id}, nil, nil
	case domain.TxDonateNative:
		return cf, "donateETH", []any{id}, in.Amount, nil
	case domain.TxDonateToken:
		return cf, "donateToken", []any{id, in.Amount}, nil, nil
	case domain.TxWithdraw:
		return cf, "withdraw", []any{id}, nil, nil
	case domain.TxRefund:
		return cf, "refund", []any{id}, nil, nil
	case domain.TxApprove:
		spender := in.Spender
		if spender == (common.Address{}) {
			spender = w.client.crowdFundingAddr
		}
		return w.client.token, "approve", []any{spender, in.Amount}, nil, nil
	case domain.TxClaimFaucet:
		return w.client.token, "claimFaucet", nil, nil, nil
	default:
		return nil, "", nil, nil, fmt.Errorf("unknown write kind %q", in.Kind)
	}
}
