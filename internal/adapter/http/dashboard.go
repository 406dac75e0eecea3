package httpadapter

import "net/http"

func (h *Handler) handleDonorDashboard(w http.ResponseWriter, r *http.Request) {
	account, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.DonationHistory(r.Context(), sessionFrom(r), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.donorView(d, h.now()))
}

func (h *Handler) handleCreatorDashboard(w http.ResponseWriter, r *http.Request) {
	account, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	d, err := h.svc.CreatorDashboard(r.Context(), sessionFrom(r), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, h.creatorView(d, h.now()))
}

func (h *Handler) handleFaucetStatus(w http.ResponseWriter, r *http.Request) {
	account, err := addressParam(r)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	st, err := h.svc.FaucetStatus(r.Context(), sessionFrom(r), account)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, faucetView(st))
}
