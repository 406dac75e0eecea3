package usecase

import (
	"io"
	"log/slog"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"sedulur-fund/internal/adapter/cache"
	"sedulur-fund/internal/adapter/memory"
	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/port"
	"sedulur-fund/internal/core/port/mocks"
)

const testChainID = 84532

var (
	creator  = common.HexToAddress("0x1111111111111111111111111111111111111111")
	donor    = common.HexToAddress("0x2222222222222222222222222222222222222222")
	signer   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	spender  = common.HexToAddress("0x1A8DA2385043aDDA13Afa12772e8D8cbCdd3B367")
	baseTime = time.Unix(1_700_000_000, 0)
	sess     = domain.Session{Account: donor, ChainID: testChainID}
)

type fixture struct {
	chain  *mocks.MockCampaignChain
	token  *mocks.MockTokenChain
	writer *mocks.MockChainWriter
	repo   *memory.TxRepository
	cache  *cache.Memory
	uc     *CrowdfundUseCase
}

func newFixture(t *testing.T, withWriter bool) *fixture {
	t.Helper()
	f := &fixture{
		chain: mocks.NewMockCampaignChain(t),
		token: mocks.NewMockTokenChain(t),
		repo:  memory.NewTxRepository(),
		cache: cache.NewMemory(),
	}
	var writer port.ChainWriter
	if withWriter {
		f.writer = mocks.NewMockChainWriter(t)
		writer = f.writer
	}
	f.uc = NewCrowdfundUseCase(f.chain, f.token, writer, f.repo, f.cache,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
		Options{ChainID: testChainID, Spender: spender, BatchLimit: 2, ConfirmTimeout: time.Second})
	f.uc.now = func() time.Time { return baseTime }
	return f
}

// campaign builds a record whose deadline is offset seconds from baseTime.
func campaign(by common.Address, p domain.PaymentType, collected, target int64, offset int64) domain.Campaign {
	return domain.Campaign{
		Creator:         by,
		PaymentType:     p,
		TargetAmount:    big.NewInt(target),
		AmountCollected: big.NewInt(collected),
		Deadline:        uint64(baseTime.Unix() + offset),
		Title:           "Campaign",
	}
}
