// Package errmsg turns raw write failures into sentences fit for users.
//
// Contract reverts are recognised by their namespaced reason code
// (CrowdFunding__* and SedulurToken__*). Anything else falls back to a
// small set of generic categories. Translate never fails.
package errmsg

import (
	"regexp"
	"strings"
)

const (
	MsgTxFailed     = "Transaction failed"
	MsgCancelled    = "Transaction cancelled"
	MsgInsufficient = "Insufficient balance"
	MsgUnknown      = "An error occurred"
)

var reasonPattern = regexp.MustCompile(`(?:CrowdFunding|SedulurToken)__\w+`)

var messages = map[string]string{
	"CrowdFunding__CampaignNotFound":          "Campaign not found",
	"CrowdFunding__InvalidDeadline":           "Invalid deadline",
	"CrowdFunding__InvalidTargetAmount":       "Invalid target amount",
	"CrowdFunding__CampaignEnded":             "Campaign has ended",
	"CrowdFunding__CampaignNotEnded":          "Campaign has not ended yet",
	"CrowdFunding__NotCreator":                "Only the creator can perform this action",
	"CrowdFunding__TargetNotReached":          "Target not reached",
	"CrowdFunding__AlreadyClaimed":            "Funds already withdrawn",
	"CrowdFunding__NoDonationToRefund":        "No donation to refund",
	"CrowdFunding__TargetReached":             "Target already reached",
	"CrowdFunding__InvalidDonationAmount":     "Invalid donation amount",
	"CrowdFunding__WrongPaymentType":          "Wrong payment type",
	"CrowdFunding__TransferFailed":            "Transfer failed",
	"CrowdFunding__EmptyTitle":                "Title cannot be empty",
	"CrowdFunding__CampaignCancelled":         "Campaign has been cancelled",
	"CrowdFunding__CannotCancelWithDonations": "Cannot cancel campaign with donations",
	"CrowdFunding__MaxCampaignsReached":       "Maximum 5 active campaigns reached",
	"CrowdFunding__DonationTooLow":            "Donation amount too low",
	"CrowdFunding__ExtensionTooLong":          "Extension too long (max 30 days)",
	"SedulurToken__CooldownNotExpired":        "Cooldown not expired",
	"SedulurToken__InvalidAddress":            "Invalid address",
}

// Codes returns every reason code the table knows about.
func Codes() []string {
	out := make([]string, 0, len(messages))
	for code := range messages {
		out = append(out, code)
	}
	return out
}

// Code extracts the first namespaced reason code from msg.
func Code(msg string) (string, bool) {
	code := reasonPattern.FindString(msg)
	return code, code != ""
}

// Translate maps a raw error message to a user-facing sentence.
func Translate(msg string) string {
	if code, ok := Code(msg); ok {
		if text, known := messages[code]; known {
			return text
		}
		return MsgTxFailed
	}
	lower := strings.ToLower(msg)
	switch {
	case strings.Contains(lower, "user rejected"), strings.Contains(lower, "user denied"):
		return MsgCancelled
	case strings.Contains(lower, "insufficient funds"):
		return MsgInsufficient
	default:
		return MsgUnknown
	}
}

// TranslateErr is Translate for error values; a nil error yields "".
func TranslateErr(err error) string {
	if err == nil {
		return ""
	}
	return Translate(err.Error())
}
