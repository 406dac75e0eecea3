package domain

import (
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

// PaymentType selects the currency a campaign accepts. Values match the
// uint8 enum of the crowdfunding contract.
type PaymentType uint8

const (
	PaymentNative PaymentType = iota
	PaymentToken
)

// Valid reports whether p is one of the contract's payment types.
func (p PaymentType) Valid() bool {
	return p == PaymentNative || p == PaymentToken
}

// String returns the currency symbol shown next to amounts.
func (p PaymentType) String() string {
	switch p {
	case PaymentNative:
		return "ETH"
	case PaymentToken:
		return "SDT"
	default:
		return "unknown"
	}
}

// Category is the closed set of campaign categories.
type Category uint8

const (
	CategoryCharity Category = iota
	CategoryTechnology
	CategoryArt
	CategoryMusic
	CategoryGaming
	CategoryEducation
	CategoryHealth
	CategoryEnvironment
	CategoryCommunity
	CategoryOther

	categoryCount
)

var categoryLabels = [categoryCount]string{
	"Charity",
	"Technology",
	"Art",
	"Music",
	"Gaming",
	"Education",
	"Health",
	"Environment",
	"Community",
	"Other",
}

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	return c < categoryCount
}

// Label returns the display label of the category.
func (c Category) Label() string {
	if !c.Valid() {
		return "Unknown"
	}
	return categoryLabels[c]
}

// Slug returns the lower-cased label used in URLs.
func (c Category) Slug() string {
	return strings.ToLower(c.Label())
}

// CategoryFromSlug resolves a slug (case-insensitive) to its category.
func CategoryFromSlug(slug string) (Category, bool) {
	for i, label := range categoryLabels {
		if strings.EqualFold(label, slug) {
			return Category(i), true
		}
	}
	return 0, false
}

// Categories returns every category in contract order.
func Categories() []Category {
	out := make([]Category, 0, categoryCount)
	for i := Category(0); i < categoryCount; i++ {
		out = append(out, i)
	}
	return out
}

// Campaign is the on-chain campaign record. The contract owns it; this
// service only reads it. Amounts are in the smallest denomination of the
// payment type and Deadline is a unix timestamp in seconds.
type Campaign struct {
	ID              uint64         `json:"id"`
	Creator         common.Address `json:"creator"`
	PaymentType     PaymentType    `json:"payment_type"`
	Claimed         bool           `json:"claimed"`
	Cancelled       bool           `json:"cancelled"`
	Category        Category       `json:"category"`
	TargetAmount    *big.Int       `json:"target_amount"`
	AmountCollected *big.Int       `json:"amount_collected"`
	Deadline        uint64         `json:"deadline"`
	Title           string         `json:"title"`
	Description     string         `json:"description"`
	ImageCID        string         `json:"image_cid"`
}

// Exists reports whether the record refers to a real campaign. The
// contract answers unknown ids with a zero-valued struct, so an all-zero
// creator means "does not exist".
func (c Campaign) Exists() bool {
	return c.Creator != (common.Address{})
}

// Target returns TargetAmount, treating nil as zero.
func (c Campaign) Target() *big.Int {
	return orZero(c.TargetAmount)
}

// Collected returns AmountCollected, treating nil as zero.
func (c Campaign) Collected() *big.Int {
	return orZero(c.AmountCollected)
}

// CreatedBy reports whether account is the campaign creator.
func (c Campaign) CreatedBy(account common.Address) bool {
	return c.Creator == account
}

func orZero(v *big.Int) *big.Int {
	if v == nil {
		return new(big.Int)
	}
	return v
}
