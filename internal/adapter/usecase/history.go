package usecase

import (
	"context"
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/port"
)

// ComposeHistory joins the three per-campaign batches of a donation history
// read. Index i of every slice refers to campaign id i. Every campaign with
// a positive amount yields one entry whose outcome comes from the active
// and successful flags alone; the claimed and cancelled latches are not
// consulted.
//
// The join is all-or-nothing: a missing batch, a missing element or
// batches of different lengths return domain.ErrNotReady.
func ComposeHistory(amounts []*big.Int, active, successful []bool) ([]domain.DonationEntry, error) {
	if amounts == nil || active == nil || successful == nil {
		return nil, fmt.Errorf("%w: batch missing", domain.ErrNotReady)
	}
	if len(active) != len(amounts) || len(successful) != len(amounts) {
		return nil, fmt.Errorf("%w: batch sizes %d/%d/%d differ",
			domain.ErrNotReady, len(amounts), len(active), len(successful))
	}

	entries := []domain.DonationEntry{}
	for i, amount := range amounts {
		if amount == nil {
			return nil, fmt.Errorf("%w: donation %d missing", domain.ErrNotReady, i)
		}
		if amount.Sign() <= 0 {
			continue
		}
		entries = append(entries, domain.DonationEntry{
			CampaignID: uint64(i),
			Amount:     amount,
			Outcome:    domain.OutcomeFromFlags(active[i], successful[i]),
		})
	}
	return entries, nil
}

// DonationHistory reads the donation amount and both outcome flags for
// every campaign concurrently, then composes them. The batches are
// independent calls and may observe different blocks.
func (u *CrowdfundUseCase) DonationHistory(ctx context.Context, sess domain.Session, account common.Address) (*port.DonorDashboard, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}

	campaigns, err := u.allCampaigns(ctx)
	if err != nil {
		return nil, err
	}
	n := len(campaigns)

	var (
		amounts    []*big.Int
		active     []bool
		successful []bool
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		amounts, err = batch(gctx, u.opts.BatchLimit, n, func(ctx context.Context, i int) (*big.Int, error) {
			return u.donation(ctx, uint64(i), account)
		})
		return err
	})
	g.Go(func() error {
		var err error
		active, err = batch(gctx, u.opts.BatchLimit, n, func(ctx context.Context, i int) (bool, error) {
			ok, err := u.chain.IsCampaignActive(ctx, uint64(i))
			if err != nil {
				return false, fmt.Errorf("is campaign %d active: %w", i, err)
			}
			return ok, nil
		})
		return err
	})
	g.Go(func() error {
		var err error
		successful, err = batch(gctx, u.opts.BatchLimit, n, func(ctx context.Context, i int) (bool, error) {
			ok, err := u.chain.IsCampaignSuccessful(ctx, uint64(i))
			if err != nil {
				return false, fmt.Errorf("is campaign %d successful: %w", i, err)
			}
			return ok, nil
		})
		return err
	})
	if err = g.Wait(); err != nil {
		return nil, err
	}

	entries, err := ComposeHistory(amounts, active, successful)
	if err != nil {
		return nil, err
	}

	dash := &port.DonorDashboard{
		Donations:   make([]port.DonatedCampaign, 0, len(entries)),
		TotalNative: new(big.Int),
		TotalToken:  new(big.Int),
		Supported:   len(entries),
	}
	for _, e := range entries {
		c := campaigns[e.CampaignID]
		dash.Donations = append(dash.Donations, port.DonatedCampaign{
			Campaign: c,
			Amount:   e.Amount,
			Outcome:  e.Outcome,
		})
		if c.PaymentType == domain.PaymentToken {
			dash.TotalToken.Add(dash.TotalToken, e.Amount)
		} else {
			dash.TotalNative.Add(dash.TotalNative, e.Amount)
		}
	}
	return dash, nil
}
