package httpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"math/big"
	"net/http"
	"strconv"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/format"
)

const (
	headerChainID = "X-Chain-Id"
	headerAccount = "X-Account"

	maxBodySize = 1 << 20
)

type sessionKey struct{}

// session reads the wallet context from request headers and rejects the
// request when it names another chain. Every route sits behind it, reads
// included.
func (h *Handler) session(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sess domain.Session
		if v := r.Header.Get(headerChainID); v != "" {
			id, err := parseChainID(v)
			if err != nil {
				h.writeError(w, r, &domain.ValidationError{Field: "chain_id", Message: "Invalid chain id"})
				return
			}
			sess.ChainID = id
		}
		if v := r.Header.Get(headerAccount); v != "" {
			if !common.IsHexAddress(v) {
				h.writeError(w, r, &domain.ValidationError{Field: "account", Message: "Invalid account address"})
				return
			}
			sess.Account = common.HexToAddress(v)
		}
		if err := sess.CheckNetwork(h.opts.ChainID); err != nil {
			h.writeError(w, r, err)
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sess)))
	})
}

// parseChainID accepts decimal and 0x-prefixed hex ids, as wallets report both.
func parseChainID(v string) (uint64, error) {
	if strings.HasPrefix(v, "0x") || strings.HasPrefix(v, "0X") {
		return strconv.ParseUint(v[2:], 16, 64)
	}
	return strconv.ParseUint(v, 10, 64)
}

func sessionFrom(r *http.Request) domain.Session {
	sess, _ := r.Context().Value(sessionKey{}).(domain.Session)
	return sess
}

func campaignID(r *http.Request) (uint64, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: "id", Message: "Invalid campaign id"}
	}
	return id, nil
}

func addressParam(r *http.Request) (common.Address, error) {
	v := chi.URLParam(r, "address")
	if !common.IsHexAddress(v) {
		return common.Address{}, &domain.ValidationError{Field: "address", Message: "Invalid account address"}
	}
	return common.HexToAddress(v), nil
}

func queryUint(r *http.Request, name string, def uint64) (uint64, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return def, nil
	}
	n, err := strconv.ParseUint(v, 10, 64)
	if err != nil {
		return 0, &domain.ValidationError{Field: name, Message: "Invalid " + name}
	}
	return n, nil
}

// decode reads a JSON body into dst. An empty body leaves dst untouched.
func decode(r *http.Request, dst any) error {
	err := json.NewDecoder(io.LimitReader(r.Body, maxBodySize)).Decode(dst)
	if err != nil && !errors.Is(err, io.EOF) {
		return &domain.ValidationError{Field: "body", Message: "Invalid JSON"}
	}
	return nil
}

func parseAmount(field, v string) (*big.Int, error) {
	amount, err := format.ParseAmount(v, domain.TokenDecimals)
	if err != nil {
		return nil, &domain.ValidationError{Field: field, Message: "Invalid amount"}
	}
	return amount, nil
}

func parsePaymentType(v string) (domain.PaymentType, error) {
	switch strings.ToLower(v) {
	case "", "eth", "native":
		return domain.PaymentNative, nil
	case "sdt", "token":
		return domain.PaymentToken, nil
	default:
		return 0, &domain.ValidationError{Field: "payment_type", Message: "Unknown payment type"}
	}
}

type createCampaignRequest struct {
	Title        string `json:"title"`
	Description  string `json:"description"`
	TargetAmount string `json:"target_amount"`
	DurationDays int64  `json:"duration_days"`
	ImageCID     string `json:"image_cid"`
	PaymentType  string `json:"payment_type"`
	Category     string `json:"category"`
}

type updateCampaignRequest struct {
	Description string `json:"description"`
	ImageCID    string `json:"image_cid"`
}

type extendRequest struct {
	AdditionalDays int64 `json:"additional_days"`
}

type amountRequest struct {
	Amount string `json:"amount"`
}
