package usecase

import (
	"context"
	"log/slog"
	"strconv"
	"sync"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"sedulur-fund/internal/core/port"
)

const (
	defaultPageSize = 12
	maxPageSize     = 100
)

// Options tunes the use case. Zero values fall back to defaults.
type Options struct {
	// ChainID is the only chain sessions may be connected to.
	ChainID uint64
	// Spender is the crowdfunding contract address; token allowances are
	// checked and granted against it.
	Spender common.Address
	// BatchLimit caps concurrent calls within one batched read.
	BatchLimit int
	// ConfirmTimeout bounds background confirmation tracking.
	ConfirmTimeout time.Duration
	// CacheTTL applies to every cached read.
	CacheTTL time.Duration
}

// CrowdfundUseCase implements port.CrowdfundUseCase. Reads go to the chain
// through a short-lived cache; writes are dispatched through the optional
// ChainWriter and tracked in the TxRepository.
type CrowdfundUseCase struct {
	chain  port.CampaignChain
	token  port.TokenChain
	writer port.ChainWriter
	repo   port.TxRepository
	cache  port.Cache
	logger *slog.Logger
	opts   Options
	now    func() time.Time

	mu       sync.Mutex
	closed   bool
	inFlight map[string]uuid.UUID
	wg       sync.WaitGroup

	// cacheGen counts invalidations. A read only stores its result when no
	// invalidation ran since it started, so a slow read cannot put back a
	// value a confirmed write just dropped.
	cacheMu  sync.RWMutex
	cacheGen uint64

	// base outlives single requests; confirmation trackers derive from it.
	base context.Context
	stop context.CancelFunc
}

// NewCrowdfundUseCase wires the use case. writer may be nil, in which case
// every write returns domain.ErrWritesDisabled.
func NewCrowdfundUseCase(
	chain port.CampaignChain,
	token port.TokenChain,
	writer port.ChainWriter,
	repo port.TxRepository,
	cache port.Cache,
	logger *slog.Logger,
	opts Options,
) *CrowdfundUseCase {
	if opts.BatchLimit <= 0 {
		opts.BatchLimit = 8
	}
	if opts.ConfirmTimeout <= 0 {
		opts.ConfirmTimeout = 2 * time.Minute
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = 30 * time.Second
	}
	if logger == nil {
		logger = slog.Default()
	}
	base, stop := context.WithCancel(context.Background())
	return &CrowdfundUseCase{
		chain:    chain,
		token:    token,
		writer:   writer,
		repo:     repo,
		cache:    cache,
		logger:   logger,
		opts:     opts,
		now:      time.Now,
		inFlight: make(map[string]uuid.UUID),
		base:     base,
		stop:     stop,
	}
}

// Close stops accepting writes and waits for in-flight ones to settle. When
// ctx expires first, confirmation tracking is abandoned and the affected
// attempts stay pending.
func (u *CrowdfundUseCase) Close(ctx context.Context) error {
	u.mu.Lock()
	u.closed = true
	u.mu.Unlock()

	done := make(chan struct{})
	go func() {
		u.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		u.stop()
		return nil
	case <-ctx.Done():
		u.stop()
		<-done
		return ctx.Err()
	}
}

// batch runs fetch for every index in [0, n) with at most limit calls in
// flight and returns the results in index order. Any failure fails the
// whole batch; partial results are never returned.
func batch[T any](ctx context.Context, limit, n int, fetch func(ctx context.Context, i int) (T, error)) ([]T, error) {
	out := make([]T, n)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		i := i
		g.Go(func() error {
			v, err := fetch(ctx, i)
			if err != nil {
				return err
			}
			out[i] = v
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return out, nil
}

func (u *CrowdfundUseCase) cacheGet(ctx context.Context, key string, dst any) bool {
	ok, err := u.cache.Get(ctx, key, dst)
	if err != nil {
		u.logger.Warn("cache get failed", slog.String("key", key), slog.Any("error", err))
		return false
	}
	return ok
}

func (u *CrowdfundUseCase) cacheGeneration() uint64 {
	u.cacheMu.RLock()
	defer u.cacheMu.RUnlock()
	return u.cacheGen
}

// cacheSet stores value unless the cache was invalidated after gen was
// taken.
func (u *CrowdfundUseCase) cacheSet(ctx context.Context, gen uint64, key string, value any) {
	u.cacheMu.RLock()
	defer u.cacheMu.RUnlock()
	if gen != u.cacheGen {
		return
	}
	if err := u.cache.Set(ctx, key, value, u.opts.CacheTTL); err != nil {
		u.logger.Warn("cache set failed", slog.String("key", key), slog.Any("error", err))
	}
}

// cacheDrop bumps the generation and deletes keys in one step.
func (u *CrowdfundUseCase) cacheDrop(ctx context.Context, keys ...string) error {
	u.cacheMu.Lock()
	defer u.cacheMu.Unlock()
	u.cacheGen++
	return u.cache.Delete(ctx, keys...)
}

func campaignKey(id uint64) string {
	return "campaign:" + strconv.FormatUint(id, 10)
}

func donationKey(id uint64, donor common.Address) string {
	return "donation:" + strconv.FormatUint(id, 10) + ":" + donor.Hex()
}

func balanceKey(account common.Address) string {
	return "balance:" + account.Hex()
}

func allowanceKey(owner common.Address) string {
	return "allowance:" + owner.Hex()
}

func lastClaimKey(account common.Address) string {
	return "faucet:" + account.Hex()
}
