package httpadapter

import (
	"math/big"
	"time"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/port"
	"sedulur-fund/internal/format"
)

// Amounts travel as decimal strings of the smallest unit next to a
// display string.

type campaignJSON struct {
	ID               uint64 `json:"id"`
	Creator          string `json:"creator"`
	CreatorShort     string `json:"creator_short"`
	PaymentType      string `json:"payment_type"`
	Category         string `json:"category"`
	CategoryLabel    string `json:"category_label"`
	Status           string `json:"status"`
	Claimed          bool   `json:"claimed"`
	Cancelled        bool   `json:"cancelled"`
	TargetAmount     string `json:"target_amount"`
	AmountCollected  string `json:"amount_collected"`
	TargetDisplay    string `json:"target_display"`
	CollectedDisplay string `json:"collected_display"`
	Progress         int    `json:"progress"`
	Deadline         uint64 `json:"deadline"`
	DeadlineDisplay  string `json:"deadline_display"`
	TimeRemaining    string `json:"time_remaining"`
	Title            string `json:"title"`
	Description      string `json:"description"`
	ImageCID         string `json:"image_cid"`
	ImageURL         string `json:"image_url"`
}

func (h *Handler) campaignView(d port.CampaignDetails, now time.Time) campaignJSON {
	c := d.Campaign
	return campaignJSON{
		ID:               c.ID,
		Creator:          c.Creator.Hex(),
		CreatorShort:     format.Address(c.Creator),
		PaymentType:      c.PaymentType.String(),
		Category:         c.Category.Slug(),
		CategoryLabel:    c.Category.Label(),
		Status:           d.Status.String(),
		Claimed:          c.Claimed,
		Cancelled:        c.Cancelled,
		TargetAmount:     c.Target().String(),
		AmountCollected:  c.Collected().String(),
		TargetDisplay:    format.Money(c.Target(), c.PaymentType),
		CollectedDisplay: format.Money(c.Collected(), c.PaymentType),
		Progress:         format.Progress(c.Collected(), c.Target()),
		Deadline:         c.Deadline,
		DeadlineDisplay:  format.Deadline(c.Deadline),
		TimeRemaining:    format.TimeRemaining(c.Deadline, now),
		Title:            c.Title,
		Description:      c.Description,
		ImageCID:         c.ImageCID,
		ImageURL:         format.ImageURL(h.opts.Gateway, c.ImageCID),
	}
}

func (h *Handler) campaignViews(ds []port.CampaignDetails, now time.Time) []campaignJSON {
	out := make([]campaignJSON, len(ds))
	for i, d := range ds {
		out[i] = h.campaignView(d, now)
	}
	return out
}

type actionsJSON struct {
	IsCreator      bool   `json:"is_creator"`
	CanWithdraw    bool   `json:"can_withdraw"`
	CanCancel      bool   `json:"can_cancel"`
	CanUpdate      bool   `json:"can_update"`
	CanExtend      bool   `json:"can_extend"`
	CanRefund      bool   `json:"can_refund"`
	ViewerDonation string `json:"viewer_donation"`
}

type campaignDetailJSON struct {
	campaignJSON
	Actions actionsJSON `json:"actions"`
}

type pageJSON struct {
	Start     uint64         `json:"start"`
	Limit     uint64         `json:"limit"`
	Total     uint64         `json:"total"`
	Campaigns []campaignJSON `json:"campaigns"`
}

type donatorJSON struct {
	Account      string `json:"account"`
	AccountShort string `json:"account_short"`
	Amount       string `json:"amount"`
	Display      string `json:"display"`
}

type donationJSON struct {
	Campaign campaignJSON `json:"campaign"`
	Amount   string       `json:"amount"`
	Display  string       `json:"display"`
	Status   string       `json:"status"`
}

type donorJSON struct {
	Donations     []donationJSON `json:"donations"`
	TotalNative   string         `json:"total_native"`
	TotalToken    string         `json:"total_token"`
	NativeDisplay string         `json:"native_display"`
	TokenDisplay  string         `json:"token_display"`
	Supported     int            `json:"supported"`
}

type creatorJSON struct {
	Campaigns      []campaignJSON `json:"campaigns"`
	Active         int            `json:"active"`
	Successful     int            `json:"successful"`
	RaisedNative   string         `json:"raised_native"`
	RaisedToken    string         `json:"raised_token"`
	ActiveOnChain  uint64         `json:"active_on_chain"`
	MaxActive      int            `json:"max_active"`
	CanCreate      bool           `json:"can_create"`
	TokenBalance   string         `json:"token_balance"`
	BalanceDisplay string         `json:"balance_display"`
}

type faucetJSON struct {
	Balance          string `json:"balance"`
	BalanceDisplay   string `json:"balance_display"`
	FaucetAmount     string `json:"faucet_amount"`
	CooldownSeconds  int64  `json:"cooldown_seconds"`
	LastClaim        uint64 `json:"last_claim"`
	NextClaim        uint64 `json:"next_claim"`
	CanClaim         bool   `json:"can_claim"`
	RemainingSeconds int64  `json:"remaining_seconds"`
	RemainingDisplay string `json:"remaining_display"`
}

type uploadJSON struct {
	CID string `json:"cid"`
	URL string `json:"url"`
}

func amountString(v *big.Int) string {
	if v == nil {
		return "0"
	}
	return v.String()
}

func (h *Handler) detailView(v *port.CampaignView, now time.Time) campaignDetailJSON {
	a := v.Actions
	return campaignDetailJSON{
		campaignJSON: h.campaignView(v.CampaignDetails, now),
		Actions: actionsJSON{
			IsCreator:      a.IsCreator,
			CanWithdraw:    a.CanWithdraw,
			CanCancel:      a.CanCancel,
			CanUpdate:      a.CanUpdate,
			CanExtend:      a.CanExtend,
			CanRefund:      a.CanRefund,
			ViewerDonation: amountString(a.ViewerDonation),
		},
	}
}

func donatorViews(ds []domain.Donator, p domain.PaymentType) []donatorJSON {
	out := make([]donatorJSON, len(ds))
	for i, d := range ds {
		out[i] = donatorJSON{
			Account:      d.Account.Hex(),
			AccountShort: format.Address(d.Account),
			Amount:       amountString(d.Amount),
			Display:      format.Money(d.Amount, p),
		}
	}
	return out
}

func (h *Handler) donorView(d *port.DonorDashboard, now time.Time) donorJSON {
	out := donorJSON{
		Donations:     make([]donationJSON, len(d.Donations)),
		TotalNative:   amountString(d.TotalNative),
		TotalToken:    amountString(d.TotalToken),
		NativeDisplay: format.Native(d.TotalNative),
		TokenDisplay:  format.Token(d.TotalToken),
		Supported:     d.Supported,
	}
	for i, row := range d.Donations {
		out.Donations[i] = donationJSON{
			Campaign: h.campaignView(port.CampaignDetails{
				Campaign: row.Campaign,
				Status:   domain.DeriveStatus(row.Campaign, now),
			}, now),
			Amount:  amountString(row.Amount),
			Display: format.Money(row.Amount, row.Campaign.PaymentType),
			Status:  row.Outcome.String(),
		}
	}
	return out
}

func (h *Handler) creatorView(d *port.CreatorDashboard, now time.Time) creatorJSON {
	return creatorJSON{
		Campaigns:      h.campaignViews(d.Campaigns, now),
		Active:         d.Active,
		Successful:     d.Successful,
		RaisedNative:   amountString(d.RaisedNative),
		RaisedToken:    amountString(d.RaisedToken),
		ActiveOnChain:  d.ActiveOnChain,
		MaxActive:      domain.MaxActiveCampaigns,
		CanCreate:      d.CanCreate,
		TokenBalance:   amountString(d.TokenBalance),
		BalanceDisplay: format.Token(d.TokenBalance),
	}
}

func faucetView(st *port.FaucetStatus) faucetJSON {
	return faucetJSON{
		Balance:          amountString(st.Balance),
		BalanceDisplay:   format.Token(st.Balance),
		FaucetAmount:     amountString(st.FaucetAmount),
		CooldownSeconds:  int64(st.Cooldown / time.Second),
		LastClaim:        st.LastClaim,
		NextClaim:        st.NextClaim,
		CanClaim:         st.CanClaim,
		RemainingSeconds: int64(st.Remaining / time.Second),
		RemainingDisplay: format.Cooldown(st.Remaining),
	}
}
