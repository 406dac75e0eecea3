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

// campaign loads one record. Only existing records are cached; status is
// never cached because it depends on the current time.
func (u *CrowdfundUseCase) campaign(ctx context.Context, id uint64) (domain.Campaign, error) {
	key := campaignKey(id)
	gen := u.cacheGeneration()
	var c domain.Campaign
	if u.cacheGet(ctx, key, &c) {
		return c, nil
	}
	c, err := u.chain.GetCampaign(ctx, id)
	if err != nil {
		return domain.Campaign{}, fmt.Errorf("get campaign %d: %w", id, err)
	}
	if !c.Exists() {
		return domain.Campaign{}, fmt.Errorf("campaign %d: %w", id, domain.ErrCampaignNotFound)
	}
	c.ID = id
	u.cacheSet(ctx, gen, key, c)
	return c, nil
}

func (u *CrowdfundUseCase) donation(ctx context.Context, id uint64, donor common.Address) (*big.Int, error) {
	key := donationKey(id, donor)
	gen := u.cacheGeneration()
	var amount *big.Int
	if u.cacheGet(ctx, key, &amount) && amount != nil {
		return amount, nil
	}
	amount, err := u.chain.GetDonation(ctx, id, donor)
	if err != nil {
		return nil, fmt.Errorf("get donation %d: %w", id, err)
	}
	u.cacheSet(ctx, gen, key, amount)
	return amount, nil
}

func (u *CrowdfundUseCase) details(c domain.Campaign) port.CampaignDetails {
	return port.CampaignDetails{Campaign: c, Status: domain.DeriveStatus(c, u.now())}
}

// allCampaigns reads every campaign in one call and assigns ids by index.
func (u *CrowdfundUseCase) allCampaigns(ctx context.Context) ([]domain.Campaign, error) {
	count, err := u.chain.GetCampaignCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("get campaign count: %w", err)
	}
	if count == 0 {
		return []domain.Campaign{}, nil
	}
	cs, err := u.chain.GetCampaigns(ctx, 0, count)
	if err != nil {
		return nil, fmt.Errorf("get campaigns: %w", err)
	}
	for i := range cs {
		cs[i].ID = uint64(i)
	}
	return cs, nil
}

func (u *CrowdfundUseCase) ListCampaigns(ctx context.Context, sess domain.Session, start, limit uint64) (*port.CampaignPage, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if limit == 0 {
		limit = defaultPageSize
	}
	limit = min(limit, maxPageSize)

	var (
		total uint64
		raw   []domain.Campaign
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		if total, err = u.chain.GetCampaignCount(gctx); err != nil {
			return fmt.Errorf("get campaign count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if raw, err = u.chain.GetCampaigns(gctx, start, limit); err != nil {
			return fmt.Errorf("get campaigns: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	page := &port.CampaignPage{
		Start:     start,
		Limit:     limit,
		Total:     total,
		Campaigns: make([]port.CampaignDetails, len(raw)),
	}
	// the contract does not echo ids; position in the page is the id
	for i, c := range raw {
		c.ID = start + uint64(i)
		page.Campaigns[i] = u.details(c)
	}
	return page, nil
}

func (u *CrowdfundUseCase) CampaignsByCategory(ctx context.Context, sess domain.Session, category domain.Category) ([]port.CampaignDetails, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	if !category.Valid() {
		return nil, &domain.ValidationError{Field: "category", Message: "Unknown category"}
	}
	ids, err := u.chain.GetCampaignsByCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("get campaigns by category: %w", err)
	}
	return batch(ctx, u.opts.BatchLimit, len(ids), func(ctx context.Context, i int) (port.CampaignDetails, error) {
		c, err := u.campaign(ctx, ids[i])
		if err != nil {
			return port.CampaignDetails{}, err
		}
		return u.details(c), nil
	})
}

func (u *CrowdfundUseCase) CampaignCount(ctx context.Context, sess domain.Session) (uint64, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return 0, err
	}
	n, err := u.chain.GetCampaignCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("get campaign count: %w", err)
	}
	return n, nil
}

func (u *CrowdfundUseCase) GetCampaign(ctx context.Context, sess domain.Session, id uint64) (*port.CampaignView, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	c, err := u.campaign(ctx, id)
	if err != nil {
		return nil, err
	}
	view := &port.CampaignView{CampaignDetails: u.details(c)}
	if sess.Account == (common.Address{}) {
		return view, nil
	}

	donated, err := u.donation(ctx, id, sess.Account)
	if err != nil {
		return nil, err
	}
	view.Actions = actionsFor(view.CampaignDetails, sess.Account, donated)
	return view, nil
}

func actionsFor(d port.CampaignDetails, viewer common.Address, donated *big.Int) port.CampaignActions {
	creator := d.Campaign.CreatedBy(viewer)
	active := d.Status == domain.StatusActive
	return port.CampaignActions{
		IsCreator:      creator,
		CanWithdraw:    creator && d.Status == domain.StatusSuccess,
		CanCancel:      creator && active && d.Campaign.Collected().Sign() == 0,
		CanUpdate:      creator && active,
		CanExtend:      creator && active,
		CanRefund:      d.Status == domain.StatusFailed && donated != nil && donated.Sign() > 0,
		ViewerDonation: donated,
	}
}

func (u *CrowdfundUseCase) Donators(ctx context.Context, sess domain.Session, id uint64) ([]domain.Donator, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}
	accounts, err := u.chain.GetDonators(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get donators %d: %w", id, err)
	}

	unique := make([]common.Address, 0, len(accounts))
	seen := make(map[common.Address]struct{}, len(accounts))
	for _, a := range accounts {
		if _, ok := seen[a]; ok {
			continue
		}
		seen[a] = struct{}{}
		unique = append(unique, a)
	}

	return batch(ctx, u.opts.BatchLimit, len(unique), func(ctx context.Context, i int) (domain.Donator, error) {
		amount, err := u.donation(ctx, id, unique[i])
		if err != nil {
			return domain.Donator{}, err
		}
		return domain.Donator{Account: unique[i], Amount: amount}, nil
	})
}

func (u *CrowdfundUseCase) CreatorDashboard(ctx context.Context, sess domain.Session, account common.Address) (*port.CreatorDashboard, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}

	var (
		all     []domain.Campaign
		onChain uint64
		balance *big.Int
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		all, err = u.allCampaigns(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		if onChain, err = u.chain.GetActiveCampaignCount(gctx, account); err != nil {
			return fmt.Errorf("get active campaign count: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		balance, err = u.balance(gctx, account)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	dash := &port.CreatorDashboard{
		Campaigns:     []port.CampaignDetails{},
		RaisedNative:  new(big.Int),
		RaisedToken:   new(big.Int),
		ActiveOnChain: onChain,
		CanCreate:     onChain < domain.MaxActiveCampaigns,
		TokenBalance:  balance,
	}
	for _, c := range all {
		if !c.CreatedBy(account) {
			continue
		}
		d := u.details(c)
		dash.Campaigns = append(dash.Campaigns, d)
		switch d.Status {
		case domain.StatusActive:
			dash.Active++
		case domain.StatusSuccess, domain.StatusClaimed:
			dash.Successful++
		}
		if c.PaymentType == domain.PaymentToken {
			dash.RaisedToken.Add(dash.RaisedToken, c.Collected())
		} else {
			dash.RaisedNative.Add(dash.RaisedNative, c.Collected())
		}
	}
	return dash, nil
}
