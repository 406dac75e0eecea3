package port

import (
	"context"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"

	"sedulur-fund/internal/core/domain"
)

// CrowdfundUseCase defines the operations exposed to the pages. It is the
// primary port into the application; the HTTP adapter depends only on it.
// Every method takes the caller's Session and refuses to work when the
// session names a different chain.
type CrowdfundUseCase interface {
	// ListCampaigns returns one page of campaigns in id order.
	ListCampaigns(ctx context.Context, sess domain.Session, start, limit uint64) (*CampaignPage, error)
	// CampaignsByCategory returns every campaign in the category.
	CampaignsByCategory(ctx context.Context, sess domain.Session, category domain.Category) ([]CampaignDetails, error)
	CampaignCount(ctx context.Context, sess domain.Session) (uint64, error)
	// GetCampaign returns a campaign with the actions available to the
	// session account. domain.ErrCampaignNotFound when it does not exist.
	GetCampaign(ctx context.Context, sess domain.Session, id uint64) (*CampaignView, error)
	// Donators returns unique donors of a campaign joined with their amounts.
	Donators(ctx context.Context, sess domain.Session, id uint64) ([]domain.Donator, error)
	// DonationHistory builds the donor dashboard for account.
	DonationHistory(ctx context.Context, sess domain.Session, account common.Address) (*DonorDashboard, error)
	// CreatorDashboard builds the creator dashboard for account.
	CreatorDashboard(ctx context.Context, sess domain.Session, account common.Address) (*CreatorDashboard, error)
	FaucetStatus(ctx context.Context, sess domain.Session, account common.Address) (*FaucetStatus, error)

	// Write operations validate their input, then dispatch a fresh attempt.
	// They return once the transaction is broadcast (or has failed);
	// confirmation is tracked in the background and visible through Attempt.
	CreateCampaign(ctx context.Context, sess domain.Session, in domain.CreateCampaignInput) (*domain.TxAttempt, error)
	UpdateCampaign(ctx context.Context, sess domain.Session, id uint64, description, imageCID string) (*domain.TxAttempt, error)
	ExtendDeadline(ctx context.Context, sess domain.Session, id uint64, extra time.Duration) (*domain.TxAttempt, error)
	CancelCampaign(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error)
	// Donate picks the native or token path from the campaign's payment
	// type. Token donations return domain.ErrApprovalRequired while the
	// allowance is below amount.
	Donate(ctx context.Context, sess domain.Session, id uint64, amount *big.Int) (*domain.TxAttempt, error)
	Withdraw(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error)
	Refund(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error)
	Approve(ctx context.Context, sess domain.Session, amount *big.Int) (*domain.TxAttempt, error)
	ClaimFaucet(ctx context.Context, sess domain.Session) (*domain.TxAttempt, error)

	// Attempt returns a tracked attempt; domain.ErrAttemptNotFound if unknown.
	Attempt(ctx context.Context, id uuid.UUID) (*domain.TxAttempt, error)
	// LatestAttempt returns the newest attempt for the signer and intent key.
	LatestAttempt(ctx context.Context, intent domain.WriteIntent) (*domain.TxAttempt, error)
}

// CampaignDetails is a campaign with its status derived at read time.
type CampaignDetails struct {
	Campaign domain.Campaign
	Status   domain.CampaignStatus
}

// CampaignPage is one page of the campaign list.
type CampaignPage struct {
	Start     uint64
	Limit     uint64
	Total     uint64
	Campaigns []CampaignDetails
}

// CampaignActions says what the viewing account may do with a campaign.
type CampaignActions struct {
	IsCreator      bool
	CanWithdraw    bool
	CanCancel      bool
	CanUpdate      bool
	CanExtend      bool
	CanRefund      bool
	ViewerDonation *big.Int
}

// CampaignView is the campaign detail page model.
type CampaignView struct {
	CampaignDetails
	Actions CampaignActions
}

// DonatedCampaign is one row of the donor dashboard.
type DonatedCampaign struct {
	Campaign domain.Campaign
	Amount   *big.Int
	Outcome  domain.DonationOutcome
}

// DonorDashboard summarises an account's donations.
type DonorDashboard struct {
	Donations   []DonatedCampaign
	TotalNative *big.Int
	TotalToken  *big.Int
	Supported   int
}

// CreatorDashboard summarises the campaigns an account created.
type CreatorDashboard struct {
	Campaigns     []CampaignDetails
	Active        int
	Successful    int
	RaisedNative  *big.Int
	RaisedToken   *big.Int
	ActiveOnChain uint64
	CanCreate     bool
	TokenBalance  *big.Int
}

// FaucetStatus is the faucet page model for one account.
type FaucetStatus struct {
	Balance      *big.Int
	FaucetAmount *big.Int
	Cooldown     time.Duration
	LastClaim    uint64
	NextClaim    uint64
	CanClaim     bool
	Remaining    time.Duration
}
