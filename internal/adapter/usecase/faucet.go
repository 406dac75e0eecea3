package usecase

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"golang.org/x/sync/errgroup"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/port"
)

func (u *CrowdfundUseCase) balance(ctx context.Context, account common.Address) (*big.Int, error) {
	key := balanceKey(account)
	gen := u.cacheGeneration()
	var v *big.Int
	if u.cacheGet(ctx, key, &v) && v != nil {
		return v, nil
	}
	v, err := u.token.BalanceOf(ctx, account)
	if err != nil {
		return nil, fmt.Errorf("balance of %s: %w", account.Hex(), err)
	}
	u.cacheSet(ctx, gen, key, v)
	return v, nil
}

func (u *CrowdfundUseCase) allowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	key := allowanceKey(owner)
	gen := u.cacheGeneration()
	var v *big.Int
	if u.cacheGet(ctx, key, &v) && v != nil {
		return v, nil
	}
	v, err := u.token.Allowance(ctx, owner, u.opts.Spender)
	if err != nil {
		return nil, fmt.Errorf("allowance of %s: %w", owner.Hex(), err)
	}
	u.cacheSet(ctx, gen, key, v)
	return v, nil
}

func (u *CrowdfundUseCase) lastClaim(ctx context.Context, account common.Address) (uint64, error) {
	key := lastClaimKey(account)
	gen := u.cacheGeneration()
	var v uint64
	if u.cacheGet(ctx, key, &v) {
		return v, nil
	}
	v, err := u.token.LastClaimTime(ctx, account)
	if err != nil {
		return 0, fmt.Errorf("last claim of %s: %w", account.Hex(), err)
	}
	u.cacheSet(ctx, gen, key, v)
	return v, nil
}

func (u *CrowdfundUseCase) FaucetStatus(ctx context.Context, sess domain.Session, account common.Address) (*port.FaucetStatus, error) {
	if err := sess.CheckNetwork(u.opts.ChainID); err != nil {
		return nil, err
	}

	st := &port.FaucetStatus{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		st.Balance, err = u.balance(gctx, account)
		return err
	})
	g.Go(func() error {
		var err error
		if st.FaucetAmount, err = u.token.FaucetAmount(gctx); err != nil {
			return fmt.Errorf("faucet amount: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		if st.Cooldown, err = u.token.FaucetCooldown(gctx); err != nil {
			return fmt.Errorf("faucet cooldown: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		var err error
		st.LastClaim, err = u.lastClaim(gctx, account)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	applyCooldown(st, u.now())
	return st, nil
}

// applyCooldown fills the claim window fields. An account that never
// claimed can claim immediately.
func applyCooldown(st *port.FaucetStatus, now time.Time) {
	if st.LastClaim == 0 {
		st.CanClaim = true
		return
	}
	next := time.Unix(int64(st.LastClaim), 0).Add(st.Cooldown)
	st.NextClaim = uint64(next.Unix())
	if !now.Before(next) {
		st.CanClaim = true
		return
	}
	st.Remaining = next.Sub(now)
}
