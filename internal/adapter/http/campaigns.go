package httpadapter

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"

	"sedulur-fund/internal/core/domain"
)

// handleListCampaigns serves GET /campaigns. With ?category=<slug> it
// returns every campaign in that category instead of a page.
func (h *Handler) handleListCampaigns(w http.ResponseWriter, r *http.Request) {
	sess := sessionFrom(r)
	now := h.now()

	if slug := r.URL.Query().Get("category"); slug != "" {
		category, ok := domain.CategoryFromSlug(slug)
		if !ok {
			h.writeError(w, r, &domain.ValidationError{Field: "category", Message: "Unknown category"})
			return
		}
		list, err := h.svc.CampaignsByCategory(r.Context(), sess, category)
		if err != nil {
			h.writeError(w, r, err)
			return
		}
		h.writeJSON(w, http.StatusOK, h.campaignViews(list, now))
		return
	}

	start, err := queryUint(r, "start", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	limit, err := queryUint(r, "limit", 0)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	page, err := h.svc.ListCampaigns(r.Context(), sess, start, limit)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, pageJSON{
		Start:     page.Start,
		Limit:     page.Limit,
		Total:     page.Total,
		Campaigns: h.campaignViews(page.Campaigns, now),
	})
}

func (h *Handler) handleCampaignCount(w http.ResponseWriter, r *http.Request) {
	n, err := h.svc.CampaignCount(r.Context(), sessionFrom(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]uint64{"count": n})
}

// handleGetCampaign serves the detail page. ?viewer=<address> overrides the
// session account when computing actions.
func (h *Handler) handleGetCampaign(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sess := sessionFrom(r)
	if v := r.URL.Query().Get("viewer"); v != "" {
		if !common.IsHexAddress(v) {
			h.writeError(w, r, &domain.ValidationError{Field: "viewer", Message: "Invalid account address"})
			return
		}
		sess.Account = common.HexToAddress(v)
	}
	view, err := h.svc.GetCampaign(r.Context(), sess, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.detailView(view, h.now()))
}

func (h *Handler) handleDonators(w http.ResponseWriter, r *http.Request) {
	id, err := campaignID(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	sess := sessionFrom(r)
	// The campaign read is cached and gives both the 404 and the currency.
	view, err := h.svc.GetCampaign(r.Context(), domain.Session{ChainID: sess.ChainID}, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	donators, err := h.svc.Donators(r.Context(), sess, id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, donatorViews(donators, view.Campaign.PaymentType))
}
