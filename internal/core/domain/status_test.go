package domain

import (
	"math/big"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
)

const deadline = uint64(1_700_000_000)

func campaignAt(collected, target int64) Campaign {
	return Campaign{
		Creator:         common.HexToAddress("0x1111111111111111111111111111111111111111"),
		TargetAmount:    big.NewInt(target),
		AmountCollected: big.NewInt(collected),
		Deadline:        deadline,
	}
}

func at(offset int64) time.Time {
	return time.Unix(int64(deadline)+offset, 0)
}

func TestDeriveStatus(t *testing.T) {
	tests := []struct {
		name string
		c    func() Campaign
		now  time.Time
		want CampaignStatus
	}{
		{
			name: "cancelled wins over claimed",
			c: func() Campaign {
				c := campaignAt(150, 100)
				c.Cancelled, c.Claimed = true, true
				return c
			},
			now:  at(10),
			want: StatusCancelled,
		},
		{
			name: "cancelled while still before deadline",
			c: func() Campaign {
				c := campaignAt(0, 100)
				c.Cancelled = true
				return c
			},
			now:  at(-100),
			want: StatusCancelled,
		},
		{
			name: "claimed",
			c: func() Campaign {
				c := campaignAt(150, 100)
				c.Claimed = true
				return c
			},
			now:  at(10),
			want: StatusClaimed,
		},
		{
			name: "active exactly at deadline",
			c:    func() Campaign { return campaignAt(0, 100) },
			now:  at(0),
			want: StatusActive,
		},
		{
			name: "active before deadline even if target reached",
			c:    func() Campaign { return campaignAt(500, 100) },
			now:  at(-1),
			want: StatusActive,
		},
		{
			name: "success when collected equals target",
			c:    func() Campaign { return campaignAt(100, 100) },
			now:  at(1),
			want: StatusSuccess,
		},
		{
			name: "failed one below target",
			c:    func() Campaign { return campaignAt(99, 100) },
			now:  at(1),
			want: StatusFailed,
		},
		{
			name: "success over target",
			c:    func() Campaign { return campaignAt(150, 100) },
			now:  at(1),
			want: StatusSuccess,
		},
		{
			name: "failed under target",
			c:    func() Campaign { return campaignAt(40, 100) },
			now:  at(1),
			want: StatusFailed,
		},
		{
			name: "nil amounts count as zero",
			c:    func() Campaign { return Campaign{Deadline: deadline} },
			now:  at(1),
			want: StatusSuccess,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeriveStatus(tt.c(), tt.now))
		})
	}
}

func TestDeriveStatus_Idempotent(t *testing.T) {
	c := campaignAt(40, 100)
	now := at(1)
	first := DeriveStatus(c, now)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, DeriveStatus(c, now))
	}
}

func TestCampaignStatus_MarshalText(t *testing.T) {
	for s, name := range statusNames {
		b, err := s.MarshalText()
		assert.NoError(t, err)
		assert.Equal(t, name, string(b))
	}
}

func TestOutcomeFromFlags(t *testing.T) {
	assert.Equal(t, OutcomeActive, OutcomeFromFlags(true, true))
	assert.Equal(t, OutcomeActive, OutcomeFromFlags(true, false))
	assert.Equal(t, OutcomeSuccessful, OutcomeFromFlags(false, true))
	assert.Equal(t, OutcomeFailed, OutcomeFromFlags(false, false))
}
