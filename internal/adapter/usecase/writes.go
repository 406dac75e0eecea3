package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"sedulur-fund/internal/core/domain"
)

func (u *CrowdfundUseCase) CreateCampaign(ctx context.Context, sess domain.Session, in domain.CreateCampaignInput) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxCreateCampaign, Create: &in})
}

func (u *CrowdfundUseCase) UpdateCampaign(ctx context.Context, sess domain.Session, id uint64, description, imageCID string) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if err := domain.ValidateUpdate(description); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{
		Kind:        domain.TxUpdateCampaign,
		CampaignID:  id,
		Description: description,
		ImageCID:    imageCID,
	})
}

func (u *CrowdfundUseCase) ExtendDeadline(ctx context.Context, sess domain.Session, id uint64, extra time.Duration) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if err := domain.ValidateExtension(extra); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{
		Kind:              domain.TxExtendDeadline,
		CampaignID:        id,
		AdditionalSeconds: uint64(extra / time.Second),
	})
}

func (u *CrowdfundUseCase) CancelCampaign(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxCancelCampaign, CampaignID: id})
}

func (u *CrowdfundUseCase) Donate(ctx context.Context, sess domain.Session, id uint64, amount *big.Int) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if u.writer == nil {
		return nil, domain.ErrWritesDisabled
	}
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	if err = domain.ValidateDonation(c.PaymentType, amount); err != nil {
		return nil, err
	}

	intent := domain.WriteIntent{Kind: domain.TxDonateNative, CampaignID: id, Amount: amount}
	if c.PaymentType == domain.PaymentToken {
		allowance, err := u.allowance(ctx, u.writer.From())
		if err != nil {
			return nil, err
		}
		if allowance.Cmp(amount) < 0 {
			return nil, fmt.Errorf("%w: allowance %s below %s", domain.ErrApprovalRequired, allowance, amount)
		}
		intent.Kind = domain.TxDonateToken
	}
	return u.dispatch(ctx, intent)
}

func (u *CrowdfundUseCase) Withdraw(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: id})
}

func (u *CrowdfundUseCase) Refund(ctx context.Context, sess domain.Session, id uint64) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxRefund, CampaignID: id})
}

func (u *CrowdfundUseCase) Approve(ctx context.Context, sess domain.Session, amount *big.Int) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if err := domain.ValidateApproval(amount); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxApprove, Amount: amount, Spender: u.opts.Spender})
}

func (u *CrowdfundUseCase) ClaimFaucet(ctx context.Context, sess domain.Session) (*domain.TxAttempt, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	return u.dispatch(ctx, domain.WriteIntent{Kind: domain.TxClaimFaucet})
}
