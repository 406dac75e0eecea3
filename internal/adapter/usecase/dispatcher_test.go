package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/errmsg"
)

func newTx(nonce uint64) *types.Transaction {
	return types.NewTx(&types.LegacyTx{Nonce: nonce, Gas: 21000, GasPrice: big.NewInt(1)})
}

func mined(status uint64) *types.Receipt {
	return &types.Receipt{Status: status}
}

func closeUseCase(t *testing.T, f *fixture) {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	require.NoError(t, f.uc.Close(ctx))
}

func TestDispatch_Confirmed(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	tx := newTx(1)
	intent := domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: 3}

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, intent).Return(tx, nil).Once()
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil).Once()
	f.writer.EXPECT().WaitMined(mock.Anything, tx).Return(mined(types.ReceiptStatusSuccessful), nil).Once()

	require.NoError(t, f.cache.Set(ctx, campaignKey(3), "stale", 0))

	attempt, err := f.uc.Withdraw(ctx, sess, 3)
	require.NoError(t, err)
	assert.Equal(t, domain.TxPending, attempt.State)
	assert.Equal(t, tx.Hash().Hex(), attempt.TxHash)

	closeUseCase(t, f)

	stored, err := f.uc.Attempt(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TxConfirmed, stored.State)

	var v string
	ok, err := f.cache.Get(ctx, campaignKey(3), &v)
	require.NoError(t, err)
	assert.False(t, ok, "confirmed write must invalidate the campaign")
}

func TestDispatch_SignRejectedFailsImmediately(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(nil, errors.New("user rejected transaction")).Once()

	attempt, err := f.uc.ClaimFaucet(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, domain.TxFailed, attempt.State)
	assert.Equal(t, errmsg.MsgCancelled, attempt.Message)
	assert.Empty(t, attempt.TxHash)

	stored, err := f.uc.Attempt(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TxFailed, stored.State)

	closeUseCase(t, f)
}

func TestDispatch_RevertIsTranslated(t *testing.T) {
	f := newFixture(t, true)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).
		Return(nil, errors.New("sign refund: execution reverted: CrowdFunding__NoDonationToRefund"))

	attempt, err := f.uc.Refund(context.Background(), sess, 2)
	require.NoError(t, err)
	assert.Equal(t, domain.TxFailed, attempt.State)
	assert.Equal(t, "No donation to refund", attempt.Message)
	assert.Contains(t, attempt.Error, "CrowdFunding__NoDonationToRefund")
}

func TestDispatch_SendFailure(t *testing.T) {
	f := newFixture(t, true)
	tx := newTx(2)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(errors.New("insufficient funds for gas * price + value"))

	attempt, err := f.uc.CancelCampaign(context.Background(), sess, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.TxFailed, attempt.State)
	assert.Equal(t, errmsg.MsgInsufficient, attempt.Message)
}

func TestDispatch_ReceiptReverted(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	tx := newTx(3)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).Return(mined(types.ReceiptStatusFailed), nil)

	attempt, err := f.uc.CancelCampaign(ctx, sess, 1)
	require.NoError(t, err)
	closeUseCase(t, f)

	stored, err := f.uc.Attempt(ctx, attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TxFailed, stored.State)
	assert.Equal(t, errmsg.MsgTxFailed, stored.Message)
}

func TestDispatch_OneWritePerKey(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	tx := newTx(4)
	release := make(chan struct{})

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).RunAndReturn(func(context.Context, *types.Transaction) (*types.Receipt, error) {
		<-release
		return mined(types.ReceiptStatusSuccessful), nil
	})

	first, err := f.uc.Withdraw(ctx, sess, 8)
	require.NoError(t, err)

	_, err = f.uc.Withdraw(ctx, sess, 8)
	assert.ErrorIs(t, err, domain.ErrWriteInFlight)

	// a different campaign is a different key
	other, err := f.uc.Withdraw(ctx, sess, 9)
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)

	close(release)
	closeUseCase(t, f)
}

func TestDispatch_ResubmissionStartsFresh(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()
	tx := newTx(5)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(nil, errors.New("SedulurToken__CooldownNotExpired")).Once()
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(tx, nil).Once()
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).Return(mined(types.ReceiptStatusSuccessful), nil)

	failed, err := f.uc.ClaimFaucet(ctx, sess)
	require.NoError(t, err)
	require.Equal(t, domain.TxFailed, failed.State)

	retry, err := f.uc.ClaimFaucet(ctx, sess)
	require.NoError(t, err)
	assert.NotEqual(t, failed.ID, retry.ID)
	assert.Empty(t, retry.Message)

	closeUseCase(t, f)

	latest, err := f.uc.LatestAttempt(ctx, domain.WriteIntent{Kind: domain.TxClaimFaucet})
	require.NoError(t, err)
	assert.Equal(t, retry.ID, latest.ID)
	assert.Equal(t, domain.TxConfirmed, latest.State)
	assert.Empty(t, latest.Message)
}

func TestDispatch_CloseAbandonsTracking(t *testing.T) {
	f := newFixture(t, true)
	f.uc.opts.ConfirmTimeout = time.Minute
	tx := newTx(6)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, mock.Anything).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).RunAndReturn(func(ctx context.Context, _ *types.Transaction) (*types.Receipt, error) {
		<-ctx.Done()
		return nil, ctx.Err()
	})

	attempt, err := f.uc.Withdraw(context.Background(), sess, 1)
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	assert.ErrorIs(t, f.uc.Close(ctx), context.DeadlineExceeded)

	stored, err := f.uc.Attempt(context.Background(), attempt.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.TxPending, stored.State)

	_, err = f.uc.Withdraw(context.Background(), sess, 2)
	assert.ErrorIs(t, err, domain.ErrWritesDisabled)
}

func TestWrites_Disabled(t *testing.T) {
	f := newFixture(t, false)
	ctx := context.Background()

	_, err := f.uc.ClaimFaucet(ctx, sess)
	assert.ErrorIs(t, err, domain.ErrWritesDisabled)
	_, err = f.uc.Donate(ctx, sess, 1, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrWritesDisabled)
	_, err = f.uc.LatestAttempt(ctx, domain.WriteIntent{Kind: domain.TxClaimFaucet})
	assert.ErrorIs(t, err, domain.ErrWritesDisabled)
}

func TestWrites_ValidationNeverReachesChain(t *testing.T) {
	f := newFixture(t, true)
	ctx := context.Background()

	_, err := f.uc.CreateCampaign(ctx, sess, domain.CreateCampaignInput{Title: " "})
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.uc.UpdateCampaign(ctx, sess, 1, "", "cid")
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.uc.ExtendDeadline(ctx, sess, 1, 31*24*time.Hour)
	assert.ErrorIs(t, err, domain.ErrValidation)
	_, err = f.uc.Approve(ctx, sess, big.NewInt(0))
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = f.uc.Withdraw(ctx, domain.Session{ChainID: 1}, 1)
	assert.ErrorIs(t, err, domain.ErrWrongNetwork)
}

func TestDonate_NativeBelowMinimum(t *testing.T) {
	f := newFixture(t, true)
	f.chain.EXPECT().GetCampaign(mock.Anything, uint64(1)).Return(campaign(creator, domain.PaymentNative, 0, 100, 60), nil)

	_, err := f.uc.Donate(context.Background(), sess, 1, big.NewInt(1))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestDonate_TokenNeedsApproval(t *testing.T) {
	f := newFixture(t, true)
	f.chain.EXPECT().GetCampaign(mock.Anything, uint64(1)).Return(campaign(creator, domain.PaymentToken, 0, 100, 60), nil)
	f.writer.EXPECT().From().Return(signer)
	f.token.EXPECT().Allowance(mock.Anything, signer, spender).Return(big.NewInt(0), nil)

	_, err := f.uc.Donate(context.Background(), sess, 1, domain.MinDonationToken)
	assert.ErrorIs(t, err, domain.ErrApprovalRequired)
}

func TestDonate_TokenWithAllowance(t *testing.T) {
	f := newFixture(t, true)
	tx := newTx(7)
	amount := domain.MinDonation(domain.PaymentToken)

	f.chain.EXPECT().GetCampaign(mock.Anything, uint64(1)).Return(campaign(creator, domain.PaymentToken, 0, 100, 60), nil)
	f.writer.EXPECT().From().Return(signer)
	f.token.EXPECT().Allowance(mock.Anything, signer, spender).Return(amount, nil)
	f.writer.EXPECT().Sign(mock.Anything, domain.WriteIntent{Kind: domain.TxDonateToken, CampaignID: 1, Amount: amount}).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).Return(mined(types.ReceiptStatusSuccessful), nil)

	attempt, err := f.uc.Donate(context.Background(), sess, 1, amount)
	require.NoError(t, err)
	assert.Equal(t, domain.TxDonateToken, attempt.Kind)
	closeUseCase(t, f)
}

func TestApprove_UsesSpender(t *testing.T) {
	f := newFixture(t, true)
	tx := newTx(8)
	amount := big.NewInt(5)

	f.writer.EXPECT().From().Return(signer)
	f.writer.EXPECT().Sign(mock.Anything, domain.WriteIntent{Kind: domain.TxApprove, Amount: amount, Spender: spender}).Return(tx, nil)
	f.writer.EXPECT().Send(mock.Anything, tx).Return(nil)
	f.writer.EXPECT().WaitMined(mock.Anything, tx).Return(mined(types.ReceiptStatusSuccessful), nil)

	_, err := f.uc.Approve(context.Background(), sess, amount)
	require.NoError(t, err)
	closeUseCase(t, f)
}

func TestAttempt_NotFound(t *testing.T) {
	f := newFixture(t, false)
	_, err := f.uc.Attempt(context.Background(), [16]byte{1})
	assert.ErrorIs(t, err, domain.ErrAttemptNotFound)
}
