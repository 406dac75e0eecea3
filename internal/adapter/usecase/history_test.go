package usecase

import (
	"context"
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sedulur-fund/internal/core/domain"
)

func amounts(vs ...int64) []*big.Int {
	out := make([]*big.Int, len(vs))
	for i, v := range vs {
		out[i] = big.NewInt(v)
	}
	return out
}

func TestComposeHistory_EmitsOnlyDonatedCampaigns(t *testing.T) {
	entries, err := ComposeHistory(
		amounts(0, 5, 0, 3),
		[]bool{false, true, false, false},
		[]bool{true, false, true, true},
	)
	require.NoError(t, err)
	require.Len(t, entries, 2)

	assert.Equal(t, uint64(1), entries[0].CampaignID)
	assert.Equal(t, domain.OutcomeActive, entries[0].Outcome)
	assert.Equal(t, "5", entries[0].Amount.String())

	assert.Equal(t, uint64(3), entries[1].CampaignID)
	assert.Equal(t, domain.OutcomeSuccessful, entries[1].Outcome)
}

func TestComposeHistory_Failed(t *testing.T) {
	entries, err := ComposeHistory(amounts(7), []bool{false}, []bool{false})
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, domain.OutcomeFailed, entries[0].Outcome)
}

func TestComposeHistory_NotReady(t *testing.T) {
	tests := []struct {
		name       string
		amounts    []*big.Int
		active     []bool
		successful []bool
	}{
		{"amounts pending", nil, []bool{true}, []bool{true}},
		{"active pending", amounts(1), nil, []bool{true}},
		{"successful pending", amounts(1), []bool{true}, nil},
		{"short batch", amounts(1, 2), []bool{true}, []bool{true, false}},
		{"missing element", []*big.Int{big.NewInt(1), nil}, []bool{true, true}, []bool{true, true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries, err := ComposeHistory(tt.amounts, tt.active, tt.successful)
			assert.ErrorIs(t, err, domain.ErrNotReady)
			assert.Nil(t, entries)
		})
	}
}

func TestComposeHistory_Empty(t *testing.T) {
	entries, err := ComposeHistory([]*big.Int{}, []bool{}, []bool{})
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestDonationHistory(t *testing.T) {
	f := newFixture(t, false)
	all := []domain.Campaign{
		campaign(creator, domain.PaymentNative, 0, 100, 60),
		campaign(creator, domain.PaymentNative, 5, 100, 60),
		campaign(creator, domain.PaymentToken, 0, 100, -60),
		campaign(creator, domain.PaymentToken, 300, 100, -60),
	}
	donated := amounts(0, 5, 0, 3)
	active := []bool{true, true, false, false}
	successful := []bool{false, false, false, true}

	f.chain.EXPECT().GetCampaignCount(mock.Anything).Return(4, nil)
	f.chain.EXPECT().GetCampaigns(mock.Anything, uint64(0), uint64(4)).Return(all, nil)
	for i := range all {
		id := uint64(i)
		f.chain.EXPECT().GetDonation(mock.Anything, id, donor).Return(donated[i], nil)
		f.chain.EXPECT().IsCampaignActive(mock.Anything, id).Return(active[i], nil)
		f.chain.EXPECT().IsCampaignSuccessful(mock.Anything, id).Return(successful[i], nil)
	}

	dash, err := f.uc.DonationHistory(context.Background(), sess, donor)
	require.NoError(t, err)

	require.Len(t, dash.Donations, 2)
	assert.Equal(t, uint64(1), dash.Donations[0].Campaign.ID)
	assert.Equal(t, domain.OutcomeActive, dash.Donations[0].Outcome)
	assert.Equal(t, uint64(3), dash.Donations[1].Campaign.ID)
	assert.Equal(t, domain.OutcomeSuccessful, dash.Donations[1].Outcome)

	assert.Equal(t, 2, dash.Supported)
	assert.Equal(t, "5", dash.TotalNative.String())
	assert.Equal(t, "3", dash.TotalToken.String())
}

func TestDonationHistory_NoCampaigns(t *testing.T) {
	f := newFixture(t, false)
	f.chain.EXPECT().GetCampaignCount(mock.Anything).Return(0, nil)

	dash, err := f.uc.DonationHistory(context.Background(), sess, donor)
	require.NoError(t, err)
	assert.Empty(t, dash.Donations)
	assert.Equal(t, 0, dash.Supported)
}

func TestDonationHistory_BatchFailureIsNotPartial(t *testing.T) {
	f := newFixture(t, false)
	f.chain.EXPECT().GetCampaignCount(mock.Anything).Return(2, nil)
	f.chain.EXPECT().GetCampaigns(mock.Anything, uint64(0), uint64(2)).
		Return([]domain.Campaign{campaign(creator, 0, 0, 1, 1), campaign(creator, 0, 0, 1, 1)}, nil)
	f.chain.EXPECT().GetDonation(mock.Anything, mock.Anything, donor).Return(big.NewInt(1), nil).Maybe()
	f.chain.EXPECT().IsCampaignActive(mock.Anything, mock.Anything).Return(true, nil).Maybe()
	f.chain.EXPECT().IsCampaignSuccessful(mock.Anything, mock.Anything).Return(false, errors.New("rpc down"))

	dash, err := f.uc.DonationHistory(context.Background(), sess, donor)
	assert.ErrorContains(t, err, "rpc down")
	assert.Nil(t, dash)
}
