package domain

import (
	"fmt"
	"time"
)

// CampaignStatus is the five-way lifecycle state derived from a campaign
// record and the current time. It is never stored.
type CampaignStatus uint8

const (
	StatusActive CampaignStatus = iota
	StatusSuccess
	StatusFailed
	StatusClaimed
	StatusCancelled
)

var statusNames = map[CampaignStatus]string{
	StatusActive:    "active",
	StatusSuccess:   "success",
	StatusFailed:    "failed",
	StatusClaimed:   "claimed",
	StatusCancelled: "cancelled",
}

func (s CampaignStatus) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("status(%d)", uint8(s))
}

// MarshalText encodes the status as its lower-case name.
func (s CampaignStatus) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// DeriveStatus maps a campaign and the current time to its status. The
// checks run in priority order: cancelled, claimed, then the deadline
// (inclusive, so the deadline second itself is still active), then the
// target comparison.
func DeriveStatus(c Campaign, now time.Time) CampaignStatus {
	switch {
	case c.Cancelled:
		return StatusCancelled
	case c.Claimed:
		return StatusClaimed
	case beforeOrAt(now, c.Deadline):
		return StatusActive
	case c.Collected().Cmp(c.Target()) >= 0:
		return StatusSuccess
	default:
		return StatusFailed
	}
}

func beforeOrAt(now time.Time, deadline uint64) bool {
	n := now.Unix()
	return n < 0 || uint64(n) <= deadline
}
