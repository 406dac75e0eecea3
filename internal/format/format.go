// Package format renders fixed-point amounts, timestamps and addresses for
// display. Everything here is pure.
package format

import (
	"errors"
	"fmt"
	"math/big"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"

	"sedulur-fund/internal/core/domain"
)

const placeholderImage = "/placeholder.svg"

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
)

// Address shortens an address to 0x1234...abcd.
func Address(addr common.Address) string {
	h := addr.Hex()
	return h[:6] + "..." + h[len(h)-4:]
}

// Amount renders a fixed-point integer with the given number of decimals.
// Values from a thousand up get a K or M suffix with two decimals; smaller
// values keep at most four decimals with trailing zeros dropped.
func Amount(amount *big.Int, decimals int32) string {
	if amount == nil {
		amount = new(big.Int)
	}
	d := decimal.NewFromBigInt(amount, -decimals)
	switch {
	case d.GreaterThanOrEqual(million):
		return d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return d.Div(thousand).StringFixed(2) + "K"
	}
	s := d.StringFixed(4)
	if strings.Contains(s, ".") {
		s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")
	}
	return s
}

// Native renders a wei amount as ETH.
func Native(amount *big.Int) string {
	return Amount(amount, domain.TokenDecimals) + " ETH"
}

// Token renders a token amount as SDT.
func Token(amount *big.Int) string {
	return Amount(amount, domain.TokenDecimals) + " SDT"
}

// Money renders amount in the currency of the payment type.
func Money(amount *big.Int, p domain.PaymentType) string {
	if p == domain.PaymentToken {
		return Token(amount)
	}
	return Native(amount)
}

// Deadline renders a unix timestamp as a calendar date, e.g. "Mar 5, 2025".
func Deadline(unix uint64) string {
	return time.Unix(int64(unix), 0).UTC().Format("Jan 2, 2006")
}

// TimeRemaining describes how long is left until deadline.
func TimeRemaining(deadline uint64, now time.Time) string {
	n := now.Unix()
	if n >= 0 && uint64(n) >= deadline {
		return "Ended"
	}
	diff := deadline
	if n > 0 {
		diff -= uint64(n)
	}
	days := diff / 86400
	hours := (diff % 86400) / 3600
	switch {
	case days > 0:
		return fmt.Sprintf("%d days left", days)
	case hours > 0:
		return fmt.Sprintf("%d hours left", hours)
	default:
		return "Ending soon"
	}
}

// Cooldown renders a remaining cooldown as "5h 3m", "3m 20s" or "20s".
func Cooldown(d time.Duration) string {
	secs := int64(d / time.Second)
	if secs < 0 {
		secs = 0
	}
	hours := secs / 3600
	minutes := (secs % 3600) / 60
	rest := secs % 60
	switch {
	case hours > 0:
		return fmt.Sprintf("%dh %dm", hours, minutes)
	case minutes > 0:
		return fmt.Sprintf("%dm %ds", minutes, rest)
	default:
		return fmt.Sprintf("%ds", rest)
	}
}

// Progress returns collected as a whole percentage of target, capped at 100.
func Progress(collected, target *big.Int) int {
	if target == nil || target.Sign() == 0 || collected == nil {
		return 0
	}
	pct := new(big.Int).Mul(collected, big.NewInt(100))
	pct.Quo(pct, target)
	if pct.Cmp(big.NewInt(100)) > 0 {
		return 100
	}
	return int(pct.Int64())
}

// ImageURL builds the gateway URL of an image content identifier.
func ImageURL(gateway, cid string) string {
	if cid == "" {
		return placeholderImage
	}
	return strings.TrimRight(gateway, "/") + "/ipfs/" + cid
}

var errNegative = errors.New("amount must not be negative")

// ParseAmount converts a decimal string such as "0.5" to its fixed-point
// integer with the given number of decimals.
func ParseAmount(s string, decimals int32) (*big.Int, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if d.IsNegative() {
		return nil, errNegative
	}
	shifted := d.Shift(decimals)
	if !shifted.IsInteger() {
		return nil, fmt.Errorf("amount %q has more than %d decimals", s, decimals)
	}
	return shifted.BigInt(), nil
}
