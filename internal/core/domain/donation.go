package domain

import (
	"fmt"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// DonationOutcome is the three-way status shown to a donor. It is derived
// from the contract's isCampaignActive/isCampaignSuccessful flags, which
// ignore the claimed and cancelled latches.
type DonationOutcome uint8

const (
	OutcomeActive DonationOutcome = iota
	OutcomeSuccessful
	OutcomeFailed
)

func (o DonationOutcome) String() string {
	switch o {
	case OutcomeActive:
		return "ACTIVE"
	case OutcomeSuccessful:
		return "SUCCESSFUL"
	case OutcomeFailed:
		return "FAILED"
	default:
		return fmt.Sprintf("outcome(%d)", uint8(o))
	}
}

// MarshalText encodes the outcome as its upper-case name.
func (o DonationOutcome) MarshalText() ([]byte, error) {
	return []byte(o.String()), nil
}

// OutcomeFromFlags picks the outcome from the two contract flags. Active
// wins over successful; neither flag means failed.
func OutcomeFromFlags(active, successful bool) DonationOutcome {
	switch {
	case active:
		return OutcomeActive
	case successful:
		return OutcomeSuccessful
	default:
		return OutcomeFailed
	}
}

// DonationEntry is one campaign an account has donated to.
type DonationEntry struct {
	CampaignID uint64
	Amount     *big.Int
	Outcome    DonationOutcome
}

// Donator is a donor address joined with its cumulative amount.
type Donator struct {
	Account common.Address
	Amount  *big.Int
}
