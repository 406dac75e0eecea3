package httpadapter

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"sedulur-fund/internal/core/domain"
)

var txKinds = map[domain.TxKind]bool{
	domain.TxCreateCampaign: true,
	domain.TxUpdateCampaign: true,
	domain.TxExtendDeadline: true,
	domain.TxCancelCampaign: true,
	domain.TxDonateNative:   true,
	domain.TxDonateToken:    true,
	domain.TxWithdraw:       true,
	domain.TxRefund:         true,
	domain.TxApprove:        true,
	domain.TxClaimFaucet:    true,
}

func (h *Handler) handleGetAttempt(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "txID"))
	if err != nil {
		h.writeError(w, r, &domain.ValidationError{Field: "id", Message: "Invalid transaction id"})
		return
	}
	a, err := h.svc.Attempt(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}

// handleLatestAttempt serves GET /tx/latest?kind=<kind>&campaign_id=<id>,
// letting a page pick up a write it started before a reload.
func (h *Handler) handleLatestAttempt(w http.ResponseWriter, r *http.Request) {
	kind := domain.TxKind(r.URL.Query().Get("kind"))
	if !txKinds[kind] {
		h.writeError(w, r, &domain.ValidationError{Field: "kind", Message: "Unknown transaction kind"})
		return
	}
	id, err := queryUint(r, "campaign_id", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	a, err := h.svc.LatestAttempt(r.Context(), domain.WriteIntent{Kind: kind, CampaignID: id})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, a)
}
