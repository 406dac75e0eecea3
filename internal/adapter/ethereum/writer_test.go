package ethereum

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient/simulated"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sedulur-fund/internal/core/domain"
)

const testKey = "b71c71a67e1177ad4e901695e1b4b9ee17ae16c6668d313eac2f96dbcda3f291"

func newTestWriter(t *testing.T) *Writer {
	t.Helper()
	c, _ := newTestClient(t)
	w, err := c.NewWriter("0x"+testKey, 84532)
	require.NoError(t, err)
	return w
}

func TestNewWriter(t *testing.T) {
	w := newTestWriter(t)
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	assert.Equal(t, crypto.PubkeyToAddress(key.PublicKey), w.From())

	c, _ := newTestClient(t)
	_, err = c.NewWriter("zz", 84532)
	assert.Error(t, err)
}

func TestWriter_PrepareEncodesEveryKind(t *testing.T) {
	w := newTestWriter(t)
	amount := big.NewInt(1e15)

	tests := []struct {
		intent domain.WriteIntent
		method string
		token  bool
		value  bool
	}{
		{domain.WriteIntent{Kind: domain.TxCreateCampaign, Create: &domain.CreateCampaignInput{
			Title: "t", TargetAmount: big.NewInt(10), Duration: 48 * time.Hour, PaymentType: domain.PaymentToken, Category: domain.CategoryHealth,
		}}, "createCampaign", false, false},
		{domain.WriteIntent{Kind: domain.TxUpdateCampaign, CampaignID: 1, Description: "d", ImageCID: "c"}, "updateCampaign", false, false},
		{domain.WriteIntent{Kind: domain.TxExtendDeadline, CampaignID: 1, AdditionalSeconds: 3600}, "extendDeadline", false, false},
		{domain.WriteIntent{Kind: domain.TxCancelCampaign, CampaignID: 1}, "cancelCampaign", false, false},
		{domain.WriteIntent{Kind: domain.TxDonateNative, CampaignID: 1, Amount: amount}, "donateETH", false, true},
		{domain.WriteIntent{Kind: domain.TxDonateToken, CampaignID: 1, Amount: amount}, "donateToken", false, false},
		{domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: 1}, "withdraw", false, false},
		{domain.WriteIntent{Kind: domain.TxRefund, CampaignID: 1}, "refund", false, false},
		{domain.WriteIntent{Kind: domain.TxApprove, Amount: amount}, "approve", true, false},
		{domain.WriteIntent{Kind: domain.TxClaimFaucet}, "claimFaucet", true, false},
	}
	for _, tt := range tests {
		t.Run(string(tt.intent.Kind), func(t *testing.T) {
			contract, method, args, value, err := w.prepare(tt.intent)
			require.NoError(t, err)
			assert.Equal(t, tt.method, method)

			abiDef := w.client.crowdFundingABI
			wantContract := w.client.crowdFunding
			if tt.token {
				abiDef = w.client.tokenABI
				wantContract = w.client.token
			}
			assert.Same(t, wantContract, contract)

			_, err = abiDef.Pack(method, args...)
			require.NoError(t, err)

			if tt.value {
				assert.Equal(t, amount, value)
			} else {
				assert.Nil(t, value)
			}
		})
	}
}

func TestWriter_PrepareApproveDefaultsSpender(t *testing.T) {
	w := newTestWriter(t)
	_, _, args, _, err := w.prepare(domain.WriteIntent{Kind: domain.TxApprove, Amount: big.NewInt(1)})
	require.NoError(t, err)
	assert.Equal(t, crowdFundingAddr, args[0])

	other := common.HexToAddress("0x03")
	_, _, args, _, err = w.prepare(domain.WriteIntent{Kind: domain.TxApprove, Amount: big.NewInt(1), Spender: other})
	require.NoError(t, err)
	assert.Equal(t, other, args[0])
}

func TestWriter_PrepareRejectsBadIntent(t *testing.T) {
	w := newTestWriter(t)
	_, _, _, _, err := w.prepare(domain.WriteIntent{Kind: "mint"})
	assert.Error(t, err)
	_, _, _, _, err = w.prepare(domain.WriteIntent{Kind: domain.TxCreateCampaign})
	assert.Error(t, err)
}

// newSimulatedWriter funds the test key on a simulated chain. GasLimit is
// fixed so signing does not need contract code at the target addresses.
func newSimulatedWriter(t *testing.T) (*Writer, *simulated.Backend) {
	t.Helper()
	key, err := crypto.HexToECDSA(testKey)
	require.NoError(t, err)
	from := crypto.PubkeyToAddress(key.PublicKey)

	funds := new(big.Int).Mul(big.NewInt(100), big.NewInt(1e18))
	sim := simulated.NewBackend(types.GenesisAlloc{from: {Balance: funds}})
	t.Cleanup(func() { _ = sim.Close() })

	backend := sim.Client()
	chainID, err := backend.ChainID(context.Background())
	require.NoError(t, err)

	c, err := NewClient(backend, crowdFundingAddr, tokenAddr)
	require.NoError(t, err)
	w, err := c.newWriter(key, chainID.Uint64())
	require.NoError(t, err)
	w.auth.GasLimit = 200_000
	return w, sim
}

func TestWriter_ConcurrentWritesGetDistinctNonces(t *testing.T) {
	ctx := context.Background()
	w, sim := newSimulatedWriter(t)

	withdraw, err := w.Sign(ctx, domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: 1})
	require.NoError(t, err)
	refund, err := w.Sign(ctx, domain.WriteIntent{Kind: domain.TxRefund, CampaignID: 2})
	require.NoError(t, err)

	assert.Equal(t, uint64(0), withdraw.Nonce())
	assert.Equal(t, uint64(1), refund.Nonce())

	require.NoError(t, w.Send(ctx, withdraw))
	require.NoError(t, w.Send(ctx, refund))
	sim.Commit()

	waitCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	for _, tx := range []*types.Transaction{withdraw, refund} {
		receipt, err := w.WaitMined(waitCtx, tx)
		require.NoError(t, err)
		assert.Equal(t, types.ReceiptStatusSuccessful, receipt.Status)
	}
}

func TestWriter_FailedSendResyncsNonce(t *testing.T) {
	ctx := context.Background()
	w, _ := newSimulatedWriter(t)

	first, err := w.Sign(ctx, domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: 1})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), first.Nonce())

	// an unsigned transaction is rejected by the node
	bogus := types.NewTx(&types.LegacyTx{Nonce: 0, Gas: 21_000, GasPrice: big.NewInt(1), To: &crowdFundingAddr})
	require.Error(t, w.Send(ctx, bogus))

	again, err := w.Sign(ctx, domain.WriteIntent{Kind: domain.TxRefund, CampaignID: 2})
	require.NoError(t, err)
	assert.Equal(t, uint64(0), again.Nonce(), "nonce 0 was never broadcast")
	require.NoError(t, w.Send(ctx, again))
}
