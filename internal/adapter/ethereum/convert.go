package ethereum

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"sedulur-fund/internal/core/domain"
)

// rawCampaign mirrors the contract's Campaign tuple. Field names follow the
// ABI component names so abi.ConvertType can map them.
type rawCampaign struct {
	Creator         common.Address
	PaymentType     uint8
	Claimed         bool
	Cancelled       bool
	Category        uint8
	TargetAmount    *big.Int
	AmountCollected *big.Int
	Deadline        uint64
	Title           string
	Description     string
	ImageCID        string
}

func (r rawCampaign) toDomain() domain.Campaign {
	return domain.Campaign{
		Creator:         r.Creator,
		PaymentType:     domain.PaymentType(r.PaymentType),
		Claimed:         r.Claimed,
		Cancelled:       r.Cancelled,
		Category:        domain.Category(r.Category),
		TargetAmount:    r.TargetAmount,
		AmountCollected: r.AmountCollected,
		Deadline:        r.Deadline,
		Title:           r.Title,
		Description:     r.Description,
		ImageCID:        r.ImageCID,
	}
}

func decodeCampaign(out []any) (c domain.Campaign, err error) {
	defer recoverConvert(&err)
	if len(out) == 0 {
		return c, errEmptyOutput
	}
	raw := *abi.ConvertType(out[0], new(rawCampaign)).(*rawCampaign)
	return raw.toDomain(), nil
}

func decodeCampaigns(out []any) (cs []domain.Campaign, err error) {
	defer recoverConvert(&err)
	if len(out) == 0 {
		return nil, errEmptyOutput
	}
	raw := *abi.ConvertType(out[0], new([]rawCampaign)).(*[]rawCampaign)
	cs = make([]domain.Campaign, len(raw))
	for i, r := range raw {
		cs[i] = r.toDomain()
	}
	return cs, nil
}

func decodeBig(out []any) (*big.Int, error) {
	if len(out) == 0 {
		return nil, errEmptyOutput
	}
	v, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected output type %T", out[0])
	}
	return v, nil
}

func decodeUint64(out []any) (uint64, error) {
	v, err := decodeBig(out)
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, fmt.Errorf("value %s overflows uint64", v)
	}
	return v.Uint64(), nil
}

func decodeBool(out []any) (bool, error) {
	if len(out) == 0 {
		return false, errEmptyOutput
	}
	v, ok := out[0].(bool)
	if !ok {
		return false, fmt.Errorf("unexpected output type %T", out[0])
	}
	return v, nil
}

func decodeAddresses(out []any) ([]common.Address, error) {
	if len(out) == 0 {
		return nil, errEmptyOutput
	}
	v, ok := out[0].([]common.Address)
	if !ok {
		return nil, fmt.Errorf("unexpected output type %T", out[0])
	}
	return v, nil
}

func decodeIDs(out []any) ([]uint64, error) {
	if len(out) == 0 {
		return nil, errEmptyOutput
	}
	v, ok := out[0].([]*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected output type %T", out[0])
	}
	ids := make([]uint64, len(v))
	for i, id := range v {
		if !id.IsUint64() {
			return nil, fmt.Errorf("campaign id %s overflows uint64", id)
		}
		ids[i] = id.Uint64()
	}
	return ids, nil
}

// recoverConvert turns abi.ConvertType panics on shape mismatch into errors.
func recoverConvert(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("decode campaign: %v", r)
	}
}
