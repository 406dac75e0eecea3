package httpadapter

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"sedulur-fund/internal/core/port"
)

// Options configures the HTTP adapter.
type Options struct {
	// ChainID is the chain requests must agree with through X-Chain-Id.
	ChainID uint64
	// Gateway is the IPFS gateway used to build image URLs.
	Gateway string
}

// Handler contains dependencies and routes. It is an inbound adapter for
// HTTP. Routes are registered on a chi.Router for convenient method
// handling.
type Handler struct {
	svc      port.CrowdfundUseCase
	uploader port.ImageUploader
	opts     Options
	logger   *slog.Logger
	router   chi.Router
	now      func() time.Time
}

// NewHandler creates a handler with all routes configured. uploader may be
// nil, in which case uploads answer 501.
func NewHandler(svc port.CrowdfundUseCase, uploader port.ImageUploader, opts Options, logger *slog.Logger) *Handler {
	h := &Handler{svc: svc, uploader: uploader, opts: opts, logger: logger, now: time.Now}
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(h.session)

		r.Get("/campaigns", h.handleListCampaigns)
		r.Post("/campaigns", h.handleCreateCampaign)
		r.Get("/campaigns/count", h.handleCampaignCount)
		r.Route("/campaigns/{id}", func(r chi.Router) {
			r.Get("/", h.handleGetCampaign)
			r.Patch("/", h.handleUpdateCampaign)
			r.Get("/donators", h.handleDonators)
			r.Post("/donations", h.handleDonate)
			r.Post("/extend", h.handleExtendDeadline)
			r.Post("/cancel", h.handleCancelCampaign)
			r.Post("/withdraw", h.handleWithdraw)
			r.Post("/refund", h.handleRefund)
		})

		r.Get("/accounts/{address}/donations", h.handleDonorDashboard)
		r.Get("/accounts/{address}/campaigns", h.handleCreatorDashboard)
		r.Get("/accounts/{address}/faucet", h.handleFaucetStatus)

		r.Post("/token/approve", h.handleApprove)
		r.Post("/faucet/claim", h.handleClaimFaucet)

		r.Get("/tx/latest", h.handleLatestAttempt)
		r.Get("/tx/{txID}", h.handleGetAttempt)

		r.Post("/uploads", h.handleUpload)
	})
	h.router = r
	return h
}

// Router returns the underlying http.Handler.
func (h *Handler) Router() http.Handler {
	return h.router
}
