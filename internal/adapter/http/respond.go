package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net"
	"net/http"

	"github.com/ethereum/go-ethereum/rpc"
	"github.com/go-chi/chi/v5/middleware"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/errmsg"
)

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("encode response error", slog.Any("error", err))
	}
}

// writeError maps domain errors to status codes. Unknown errors are logged
// and answered with a generic message so raw node or driver errors never
// reach clients.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var ve *domain.ValidationError
	switch {
	case errors.As(err, &ve):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: ve.Message, Field: ve.Field})
	case errors.Is(err, domain.ErrInvalidImage):
		h.writeJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Field: "file"})
	case errors.Is(err, domain.ErrCampaignNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "Campaign not found"})
	case errors.Is(err, domain.ErrAttemptNotFound):
		h.writeJSON(w, http.StatusNotFound, errorBody{Error: "Transaction not found"})
	case errors.Is(err, domain.ErrWrongNetwork):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "wrong network"})
	case errors.Is(err, domain.ErrWriteInFlight):
		h.writeJSON(w, http.StatusConflict, errorBody{Error: "A transaction of this kind is already pending"})
	case errors.Is(err, domain.ErrApprovalRequired):
		h.writeJSON(w, http.StatusPreconditionRequired, errorBody{Error: "Token approval required"})
	case errors.Is(err, domain.ErrNotReady):
		h.writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "Data not ready, try again"})
	case errors.Is(err, domain.ErrWritesDisabled):
		h.writeJSON(w, http.StatusNotImplemented, errorBody{Error: "Writes are disabled"})
	case errors.Is(err, domain.ErrUploadFailed):
		h.logger.Error("upload error", slog.String("request_id", middleware.GetReqID(r.Context())), slog.Any("error", err))
		h.writeJSON(w, http.StatusBadGateway, errorBody{Error: "Upload failed"})
	case unavailable(err):
		h.logger.Warn("upstream unavailable",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusServiceUnavailable, errorBody{Error: "Network unavailable, try again"})
	default:
		h.logger.Error("request error",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			slog.String("path", r.URL.Path),
			slog.Any("error", err))
		h.writeJSON(w, http.StatusInternalServerError, errorBody{Error: errmsg.MsgUnknown})
	}
}

// unavailable reports transport failures and timeouts talking to the node.
// They say nothing about the request itself, so the client may retry.
func unavailable(err error) bool {
	var (
		netErr  net.Error
		httpErr rpc.HTTPError
	)
	return errors.Is(err, context.DeadlineExceeded) ||
		errors.As(err, &netErr) ||
		errors.As(err, &httpErr)
}
