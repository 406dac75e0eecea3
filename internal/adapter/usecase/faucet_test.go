package usecase

import (
	"context"
	"math/big"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func expectFaucet(f *fixture, last uint64) {
	f.token.EXPECT().BalanceOf(mock.Anything, donor).Return(big.NewInt(3), nil)
	f.token.EXPECT().FaucetAmount(mock.Anything).Return(big.NewInt(100), nil)
	f.token.EXPECT().FaucetCooldown(mock.Anything).Return(24*time.Hour, nil)
	f.token.EXPECT().LastClaimTime(mock.Anything, donor).Return(last, nil)
}

func TestFaucetStatus_NeverClaimed(t *testing.T) {
	f := newFixture(t, false)
	expectFaucet(f, 0)

	st, err := f.uc.FaucetStatus(context.Background(), sess, donor)
	require.NoError(t, err)
	assert.True(t, st.CanClaim)
	assert.Zero(t, st.NextClaim)
	assert.Zero(t, st.Remaining)
	assert.Equal(t, "100", st.FaucetAmount.String())
	assert.Equal(t, "3", st.Balance.String())
}

func TestFaucetStatus_InCooldown(t *testing.T) {
	f := newFixture(t, false)
	last := uint64(baseTime.Add(-time.Hour).Unix())
	expectFaucet(f, last)

	st, err := f.uc.FaucetStatus(context.Background(), sess, donor)
	require.NoError(t, err)
	assert.False(t, st.CanClaim)
	assert.Equal(t, last+uint64((24*time.Hour).Seconds()), st.NextClaim)
	assert.Equal(t, 23*time.Hour, st.Remaining)
}

func TestFaucetStatus_CooldownElapsedExactly(t *testing.T) {
	f := newFixture(t, false)
	expectFaucet(f, uint64(baseTime.Add(-24*time.Hour).Unix()))

	st, err := f.uc.FaucetStatus(context.Background(), sess, donor)
	require.NoError(t, err)
	assert.True(t, st.CanClaim)
	assert.Zero(t, st.Remaining)
}
