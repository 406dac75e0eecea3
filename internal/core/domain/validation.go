package domain

import (
	"math/big"
	"strings"
	"time"
)

const (
	// MaxActiveCampaigns is the contract's cap on concurrently active
	// campaigns per creator.
	MaxActiveCampaigns = 5

	MaxCampaignDuration = 365 * 24 * time.Hour
	MaxExtension        = 30 * 24 * time.Hour

	// FaucetCooldown is the documented claim interval of the token faucet.
	FaucetCooldown = 24 * time.Hour

	// TokenDecimals applies to both ETH and SDT.
	TokenDecimals = 18
)

var (
	// MinDonationNative is 0.001 ETH in wei.
	MinDonationNative = big.NewInt(1_000_000_000_000_000)
	// MinDonationToken is 1 SDT in its smallest unit.
	MinDonationToken = big.NewInt(1_000_000_000_000_000_000)
)

// MinDonation returns the minimum accepted donation for the payment type.
func MinDonation(p PaymentType) *big.Int {
	if p == PaymentToken {
		return new(big.Int).Set(MinDonationToken)
	}
	return new(big.Int).Set(MinDonationNative)
}

// CreateCampaignInput is the creator's form for a new campaign.
type CreateCampaignInput struct {
	Title        string
	Description  string
	TargetAmount *big.Int
	Duration     time.Duration
	ImageCID     string
	PaymentType  PaymentType
	Category     Category
}

// Validate checks the form before anything is sent to the contract.
func (in CreateCampaignInput) Validate() error {
	if strings.TrimSpace(in.Title) == "" {
		return invalid("title", "Title is required")
	}
	if in.TargetAmount == nil || in.TargetAmount.Sign() <= 0 {
		return invalid("target_amount", "Target amount must be greater than 0")
	}
	if in.Duration <= 0 {
		return invalid("duration", "Duration must be greater than 0 days")
	}
	if in.Duration > MaxCampaignDuration {
		return invalid("duration", "Duration must be at most 365 days")
	}
	if !in.PaymentType.Valid() {
		return invalid("payment_type", "Unknown payment type")
	}
	if !in.Category.Valid() {
		return invalid("category", "Unknown category")
	}
	return nil
}

// ValidateDonation checks amount against the payment type minimum.
func ValidateDonation(p PaymentType, amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return invalid("amount", "Amount must be greater than 0")
	}
	if amount.Cmp(MinDonation(p)) < 0 {
		if p == PaymentToken {
			return invalid("amount", "Minimum donation is 1 SDT")
		}
		return invalid("amount", "Minimum donation is 0.001 ETH")
	}
	return nil
}

// ValidateExtension checks a deadline extension against the window.
func ValidateExtension(d time.Duration) error {
	if d <= 0 {
		return invalid("additional_duration", "Extension must be greater than 0 days")
	}
	if d > MaxExtension {
		return invalid("additional_duration", "Extension too long (max 30 days)")
	}
	return nil
}

// ValidateUpdate checks the editable campaign fields.
func ValidateUpdate(description string) error {
	if strings.TrimSpace(description) == "" {
		return invalid("description", "Description is required")
	}
	return nil
}

// ValidateApproval checks an allowance amount.
func ValidateApproval(amount *big.Int) error {
	if amount == nil || amount.Sign() <= 0 {
		return invalid("amount", "Amount must be greater than 0")
	}
	return nil
}
