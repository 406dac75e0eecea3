package httpadapter

import (
	"net/http"
	"time"

	"sedulur-fund/internal/core/domain"
)

// maxDays bounds day counts before they become a time.Duration; anything
// above it fails validation anyway.
const maxDays = 1000

func days(n int64) time.Duration {
	if n > maxDays {
		n = maxDays
	}
	return time.Duration(n) * 24 * time.Hour
}

// writeAttempt answers a dispatched write. Broadcast attempts are 202; an
// attempt that failed while signing or sending is 422 with its message.
func (h *Handler) writeAttempt(w http.ResponseWriter, r *http.Request, a *domain.TxAttempt, err error) {
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	status := http.StatusAccepted
	if a.State == domain.TxFailed {
		status = http.StatusUnprocessableEntity
	}
	h.writeJSON(w, status, a)
}

func (h *Handler) handleCreateCampaign(w http.ResponseWriter, r *http.Request) {
	var req createCampaignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	target, err := parseAmount("target_amount", req.TargetAmount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	payment, err := parsePaymentType(req.PaymentType)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	category := domain.CategoryOther
	if req.Category != "" {
		var ok bool
		if category, ok = domain.CategoryFromSlug(req.Category); !ok {
			h.writeError(w, r, &domain.ValidationError{Field: "category", Message: "Unknown category"})
			return
		}
	}

	a, err := h.svc.CreateCampaign(r.Context(), sessionFrom(r), domain.CreateCampaignInput{
		Title:        req.Title,
		Description:  req.Description,
		TargetAmount: target,
		Duration:     days(req.DurationDays),
		ImageCID:     req.ImageCID,
		PaymentType:  payment,
		Category:     category,
	})
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleUpdateCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req updateCampaignRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.UpdateCampaign(r.Context(), sessionFrom(r), id, req.Description, req.ImageCID)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleExtendDeadline(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req extendRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.ExtendDeadline(r.Context(), sessionFrom(r), id, days(req.AdditionalDays))
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleCancelCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.CancelCampaign(r.Context(), sessionFrom(r), id)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleDonate(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	var req amountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.Donate(r.Context(), sessionFrom(r), id, amount)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleWithdraw(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.Withdraw(r.Context(), sessionFrom(r), id)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleRefund(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.Refund(r.Context(), sessionFrom(r), id)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleApprove(w http.ResponseWriter, r *http.Request) {
	var req amountRequest
	if err := decode(r, &req); err != nil {
		h.writeError(w, r, err)
		return
	}
	amount, err := parseAmount("amount", req.Amount)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.Approve(r.Context(), sessionFrom(r), amount)
	h.writeAttempt(w, r, a, err)
}

func (h *Handler) handleClaimFaucet(w http.ResponseWriter, r *http.Request) {
	a, err := h.svc.ClaimFaucet(r.Context(), sessionFrom(r))
	h.writeAttempt(w, r, a, err)
}
