package port

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"

	"sedulur-fund/internal/core/domain"
)

// CampaignChain is the read surface of the crowdfunding contract. It is an
// outbound port; every method is side-effect free and safe to retry.
type CampaignChain interface {
	// GetCampaign returns the raw record for id. Unknown ids come back as a
	// zero record (zero creator), not as an error.
	GetCampaign(ctx context.Context, id uint64) (domain.Campaign, error)
	// GetCampaigns returns up to limit records starting at start, in id
	// order. The records do not carry their ids.
	GetCampaigns(ctx context.Context, start, limit uint64) ([]domain.Campaign, error)
	GetCampaignCount(ctx context.Context) (uint64, error)
	GetCampaignsByCategory(ctx context.Context, category domain.Category) ([]uint64, error)
	// GetDonators returns donor accounts in contribution order; an account
	// appears once per contribution.
	GetDonators(ctx context.Context, id uint64) ([]common.Address, error)
	GetDonation(ctx context.Context, id uint64, donor common.Address) (*big.Int, error)
	IsCampaignActive(ctx context.Context, id uint64) (bool, error)
	IsCampaignSuccessful(ctx context.Context, id uint64) (bool, error)
	GetActiveCampaignCount(ctx context.Context, creator common.Address) (uint64, error)
}

// TokenChain is the read surface of the token contract.
type TokenChain interface {
	BalanceOf(ctx context.Context, account common.Address) (*big.Int, error)
	Allowance(ctx context.Context, owner, spender common.Address) (*big.Int, error)
	// LastClaimTime returns the unix time of the last faucet claim, zero if never.
	LastClaimTime(ctx context.Context, account common.Address) (uint64, error)
	FaucetAmount(ctx context.Context) (*big.Int, error)
	FaucetCooldown(ctx context.Context) (time.Duration, error)
}

// ChainWriter signs, broadcasts and tracks transactions for one account.
// Sign runs gas estimation, so contract reverts surface there. Every
// successful Sign takes the next nonce, so concurrent dispatches may sign
// and send independently.
type ChainWriter interface {
	From() common.Address
	Sign(ctx context.Context, intent domain.WriteIntent) (*types.Transaction, error)
	Send(ctx context.Context, tx *types.Transaction) error
	WaitMined(ctx context.Context, tx *types.Transaction) (*types.Receipt, error)
}
