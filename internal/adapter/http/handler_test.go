package httpadapter

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/big"
	"mime/multipart"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/rpc"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"sedulur-fund/internal/core/domain"
	"sedulur-fund/internal/core/errmsg"
	"sedulur-fund/internal/core/port"
	"sedulur-fund/internal/core/port/mocks"
)

const (
	testChainID = 84532
	gateway     = "https://gw.example"
)

var (
	creator = common.HexToAddress("0x1111111111111111111111111111111111111111")
	donor   = common.HexToAddress("0x3333333333333333333333333333333333333333")
	now     = time.Unix(1_700_000_000, 0)
)

func newTestHandler(t *testing.T, withUploader bool) (*Handler, *mocks.MockCrowdfundUseCase, *mocks.MockImageUploader) {
	svc := mocks.NewMockCrowdfundUseCase(t)
	var (
		up       *mocks.MockImageUploader
		uploader port.ImageUploader
	)
	if withUploader {
		up = mocks.NewMockImageUploader(t)
		uploader = up
	}
	h := NewHandler(svc, uploader, Options{ChainID: testChainID, Gateway: gateway}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	h.now = func() time.Time { return now }
	return h, svc, up
}

func do(h *Handler, method, path string, body io.Reader, header map[string]string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, body)
	for k, v := range header {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	h.Router().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func sampleCampaign() domain.Campaign {
	return domain.Campaign{
		ID:              4,
		Creator:         creator,
		PaymentType:     domain.PaymentToken,
		Category:        domain.CategoryArt,
		TargetAmount:    new(big.Int).Mul(big.NewInt(10), big.NewInt(1e18)),
		AmountCollected: new(big.Int).Mul(big.NewInt(5), big.NewInt(1e18)),
		Deadline:        uint64(now.Unix()) + 3600,
		Title:           "Mural",
		ImageCID:        "bafy123",
	}
}

func TestSession_WrongNetwork(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/count", nil, map[string]string{headerChainID: "1"})

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Equal(t, "wrong network", decodeBody(t, rec)["error"])
}

func TestSession_HeadersReachUseCase(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	want := domain.Session{Account: donor, ChainID: testChainID}
	svc.EXPECT().CampaignCount(mock.Anything, want).Return(uint64(7), nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/count", nil, map[string]string{
		headerChainID: "0x14a34",
		headerAccount: donor.Hex(),
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, float64(7), decodeBody(t, rec)["count"])
}

func TestSession_BadHeaders(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/count", nil, map[string]string{headerChainID: "base"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "chain_id", decodeBody(t, rec)["field"])

	rec = do(h, http.MethodGet, "/api/v1/campaigns/count", nil, map[string]string{headerAccount: "0x12"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCampaigns(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	c := sampleCampaign()
	svc.EXPECT().ListCampaigns(mock.Anything, domain.Session{}, uint64(12), uint64(6)).
		Return(&port.CampaignPage{
			Start:     12,
			Limit:     6,
			Total:     20,
			Campaigns: []port.CampaignDetails{{Campaign: c, Status: domain.StatusActive}},
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns?start=12&limit=6", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var page pageJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &page))
	assert.Equal(t, uint64(20), page.Total)
	require.Len(t, page.Campaigns, 1)
	got := page.Campaigns[0]
	assert.Equal(t, uint64(4), got.ID)
	assert.Equal(t, "active", got.Status)
	assert.Equal(t, "10000000000000000000", got.TargetAmount)
	assert.Equal(t, "5 SDT", got.CollectedDisplay)
	assert.Equal(t, 50, got.Progress)
	assert.Equal(t, "art", got.Category)
	assert.Equal(t, gateway+"/ipfs/bafy123", got.ImageURL)
	assert.Equal(t, "0x1111...1111", got.CreatorShort)
}

func TestListCampaigns_ByCategory(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().CampaignsByCategory(mock.Anything, domain.Session{}, domain.CategoryGaming).
		Return([]port.CampaignDetails{}, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns?category=Gaming", nil, nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/campaigns?category=sports", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestListCampaigns_BadQuery(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := do(h, http.MethodGet, "/api/v1/campaigns?start=-1", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "start", decodeBody(t, rec)["field"])
}

func TestGetCampaign(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	c := sampleCampaign()
	svc.EXPECT().GetCampaign(mock.Anything, domain.Session{Account: donor}, uint64(4)).
		Return(&port.CampaignView{
			CampaignDetails: port.CampaignDetails{Campaign: c, Status: domain.StatusFailed},
			Actions:         port.CampaignActions{CanRefund: true, ViewerDonation: big.NewInt(42)},
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/4?viewer="+donor.Hex(), nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got campaignDetailJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "failed", got.Status)
	assert.True(t, got.Actions.CanRefund)
	assert.False(t, got.Actions.IsCreator)
	assert.Equal(t, "42", got.Actions.ViewerDonation)
}

func TestGetCampaign_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
		msg  string
	}{
		{"not found", domain.ErrCampaignNotFound, http.StatusNotFound, "Campaign not found"},
		{"not ready", domain.ErrNotReady, http.StatusServiceUnavailable, "Data not ready, try again"},
		{"unknown", errors.New("dial tcp: refused"), http.StatusInternalServerError, errmsg.MsgUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t, false)
			svc.EXPECT().GetCampaign(mock.Anything, mock.Anything, uint64(9)).Return(nil, tt.err)

			rec := do(h, http.MethodGet, "/api/v1/campaigns/9", nil, nil)

			assert.Equal(t, tt.code, rec.Code)
			assert.Equal(t, tt.msg, decodeBody(t, rec)["error"])
		})
	}
}

func TestGetCampaign_BadID(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/abc", nil, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestDonators(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	c := sampleCampaign()
	svc.EXPECT().GetCampaign(mock.Anything, domain.Session{}, uint64(4)).
		Return(&port.CampaignView{CampaignDetails: port.CampaignDetails{Campaign: c}}, nil)
	svc.EXPECT().Donators(mock.Anything, domain.Session{}, uint64(4)).
		Return([]domain.Donator{{Account: donor, Amount: big.NewInt(2e18)}}, nil)

	rec := do(h, http.MethodGet, "/api/v1/campaigns/4/donators", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got []donatorJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "2 SDT", got[0].Display)
	assert.Equal(t, donor.Hex(), got[0].Account)
}

func TestDonorDashboard(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	c := sampleCampaign()
	svc.EXPECT().DonationHistory(mock.Anything, domain.Session{}, donor).
		Return(&port.DonorDashboard{
			Donations:   []port.DonatedCampaign{{Campaign: c, Amount: big.NewInt(1e18), Outcome: domain.OutcomeActive}},
			TotalNative: big.NewInt(0),
			TotalToken:  big.NewInt(1e18),
			Supported:   1,
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/accounts/"+donor.Hex()+"/donations", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "1 SDT", body["token_display"])
	donations := body["donations"].([]any)
	require.Len(t, donations, 1)
	assert.Equal(t, "ACTIVE", donations[0].(map[string]any)["status"])
}

func TestDashboards_BadAddress(t *testing.T) {
	h, _, _ := newTestHandler(t, false)
	for _, suffix := range []string{"donations", "campaigns", "faucet"} {
		rec := do(h, http.MethodGet, "/api/v1/accounts/nobody/"+suffix, nil, nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, suffix)
	}
}

func TestCreatorDashboard(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().CreatorDashboard(mock.Anything, domain.Session{}, creator).
		Return(&port.CreatorDashboard{
			Active:        2,
			ActiveOnChain: 5,
			RaisedNative:  big.NewInt(0),
			RaisedToken:   big.NewInt(0),
			TokenBalance:  big.NewInt(0),
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/accounts/"+creator.Hex()+"/campaigns", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, false, body["can_create"])
	assert.Equal(t, float64(domain.MaxActiveCampaigns), body["max_active"])
}

func TestFaucetStatus(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().FaucetStatus(mock.Anything, domain.Session{}, donor).
		Return(&port.FaucetStatus{
			Balance:      big.NewInt(0),
			FaucetAmount: big.NewInt(1e18),
			Cooldown:     24 * time.Hour,
			Remaining:    90 * time.Minute,
		}, nil)

	rec := do(h, http.MethodGet, "/api/v1/accounts/"+donor.Hex()+"/faucet", nil, nil)

	require.Equal(t, http.StatusOK, rec.Code)
	var got faucetJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, int64(86400), got.CooldownSeconds)
	assert.Equal(t, int64(5400), got.RemainingSeconds)
	assert.False(t, got.CanClaim)
}

func pendingAttempt(kind domain.TxKind) *domain.TxAttempt {
	a := domain.NewTxAttempt(domain.WriteIntent{Kind: kind, CampaignID: 4}, creator, now)
	a.State = domain.TxPending
	return a
}

func TestCreateCampaign(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().CreateCampaign(mock.Anything, domain.Session{}, domain.CreateCampaignInput{
		Title:        "Mural",
		Description:  "Paint the wall",
		TargetAmount: big.NewInt(1_500_000_000_000_000_000),
		Duration:     30 * 24 * time.Hour,
		PaymentType:  domain.PaymentToken,
		Category:     domain.CategoryArt,
	}).Return(pendingAttempt(domain.TxCreateCampaign), nil)

	body := `{"title":"Mural","description":"Paint the wall","target_amount":"1.5","duration_days":30,"payment_type":"SDT","category":"art"}`
	rec := do(h, http.MethodPost, "/api/v1/campaigns", strings.NewReader(body), nil)

	require.Equal(t, http.StatusAccepted, rec.Code)
	assert.Equal(t, string(domain.TxPending), decodeBody(t, rec)["state"])
}

func TestCreateCampaign_BadInput(t *testing.T) {
	h, _, _ := newTestHandler(t, false)
	tests := map[string]string{
		"json":          `{"title":`,
		"target_amount": `{"target_amount":"lots"}`,
		"payment_type":  `{"target_amount":"1","payment_type":"btc"}`,
		"category":      `{"target_amount":"1","category":"sports"}`,
	}
	for name, body := range tests {
		rec := do(h, http.MethodPost, "/api/v1/campaigns", strings.NewReader(body), nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
	}
}

func TestWrite_Validation(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().ExtendDeadline(mock.Anything, domain.Session{}, uint64(4), 40*24*time.Hour).
		Return(nil, domain.ValidateExtension(40*24*time.Hour))

	rec := do(h, http.MethodPost, "/api/v1/campaigns/4/extend", strings.NewReader(`{"additional_days":40}`), nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, "additional_duration", body["field"])
	assert.Equal(t, "Extension too long (max 30 days)", body["error"])
}

func TestWrite_FailedAttemptIs422(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	a := domain.NewTxAttempt(domain.WriteIntent{Kind: domain.TxWithdraw, CampaignID: 4}, creator, now)
	require.NoError(t, a.MarkFailed("execution reverted", errmsg.MsgTxFailed, now))
	svc.EXPECT().Withdraw(mock.Anything, domain.Session{}, uint64(4)).Return(a, nil)

	rec := do(h, http.MethodPost, "/api/v1/campaigns/4/withdraw", nil, nil)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	body := decodeBody(t, rec)
	assert.Equal(t, errmsg.MsgTxFailed, body["message"])
	assert.NotContains(t, rec.Body.String(), "execution reverted")
}

func TestWrite_ErrorStatuses(t *testing.T) {
	tests := []struct {
		name string
		err  error
		code int
	}{
		{"in flight", domain.ErrWriteInFlight, http.StatusConflict},
		{"approval", domain.ErrApprovalRequired, http.StatusPreconditionRequired},
		{"disabled", domain.ErrWritesDisabled, http.StatusNotImplemented},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t, false)
			svc.EXPECT().Donate(mock.Anything, domain.Session{}, uint64(4), big.NewInt(2e18)).Return(nil, tt.err)

			rec := do(h, http.MethodPost, "/api/v1/campaigns/4/donations", strings.NewReader(`{"amount":"2"}`), nil)

			assert.Equal(t, tt.code, rec.Code)
		})
	}
}

func TestWriteRoutes(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	svc.EXPECT().UpdateCampaign(mock.Anything, domain.Session{}, uint64(4), "new", "cid").Return(pendingAttempt(domain.TxUpdateCampaign), nil)
	svc.EXPECT().CancelCampaign(mock.Anything, domain.Session{}, uint64(4)).Return(pendingAttempt(domain.TxCancelCampaign), nil)
	svc.EXPECT().Refund(mock.Anything, domain.Session{}, uint64(4)).Return(pendingAttempt(domain.TxRefund), nil)
	svc.EXPECT().Approve(mock.Anything, domain.Session{}, big.NewInt(5e17)).Return(pendingAttempt(domain.TxApprove), nil)
	svc.EXPECT().ClaimFaucet(mock.Anything, domain.Session{}).Return(pendingAttempt(domain.TxClaimFaucet), nil)

	for _, r := range []struct{ method, path, body string }{
		{http.MethodPatch, "/api/v1/campaigns/4", `{"description":"new","image_cid":"cid"}`},
		{http.MethodPost, "/api/v1/campaigns/4/cancel", ""},
		{http.MethodPost, "/api/v1/campaigns/4/refund", ""},
		{http.MethodPost, "/api/v1/token/approve", `{"amount":"0.5"}`},
		{http.MethodPost, "/api/v1/faucet/claim", ""},
	} {
		rec := do(h, r.method, r.path, strings.NewReader(r.body), nil)
		assert.Equal(t, http.StatusAccepted, rec.Code, r.path)
	}
}

func TestGetAttempt(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	a := pendingAttempt(domain.TxRefund)
	svc.EXPECT().Attempt(mock.Anything, a.ID).Return(a, nil)
	missing := uuid.New()
	svc.EXPECT().Attempt(mock.Anything, missing).Return(nil, domain.ErrAttemptNotFound)

	rec := do(h, http.MethodGet, "/api/v1/tx/"+a.ID.String(), nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, a.ID.String(), decodeBody(t, rec)["id"])

	rec = do(h, http.MethodGet, "/api/v1/tx/"+missing.String(), nil, nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/tx/nope", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestLatestAttempt(t *testing.T) {
	h, svc, _ := newTestHandler(t, false)
	a := pendingAttempt(domain.TxDonateNative)
	svc.EXPECT().LatestAttempt(mock.Anything, domain.WriteIntent{Kind: domain.TxDonateNative, CampaignID: 4}).Return(a, nil)

	rec := do(h, http.MethodGet, "/api/v1/tx/latest?kind=donate_native&campaign_id=4", nil, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = do(h, http.MethodGet, "/api/v1/tx/latest?kind=mint", nil, nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartBody(t *testing.T, name string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile(uploadField, name)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUpload(t *testing.T) {
	h, _, up := newTestHandler(t, true)
	content := append(append([]byte{}, pngHeader...), bytes.Repeat([]byte{1}, 1000)...)
	up.EXPECT().Upload(mock.Anything, "mural.png", "image/png", mock.Anything).
		RunAndReturn(func(_ context.Context, _, _ string, r io.Reader) (string, error) {
			got, err := io.ReadAll(r)
			if err != nil {
				return "", err
			}
			if !bytes.Equal(got, content) {
				return "", errors.New("body mismatch")
			}
			return "bafyimg", nil
		})

	body, ct := multipartBody(t, "mural.png", content)
	rec := do(h, http.MethodPost, "/api/v1/uploads", body, map[string]string{"Content-Type": ct})

	require.Equal(t, http.StatusCreated, rec.Code)
	var got uploadJSON
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, "bafyimg", got.CID)
	assert.Equal(t, gateway+"/ipfs/bafyimg", got.URL)
}

func TestUpload_Rejected(t *testing.T) {
	h, _, _ := newTestHandler(t, true)

	body, ct := multipartBody(t, "notes.txt", []byte("just some text"))
	rec := do(h, http.MethodPost, "/api/v1/uploads", body, map[string]string{"Content-Type": ct})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(h, http.MethodPost, "/api/v1/uploads", strings.NewReader("x"), map[string]string{"Content-Type": "text/plain"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpload_UploaderFailure(t *testing.T) {
	h, _, up := newTestHandler(t, true)
	up.EXPECT().Upload(mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return("", domain.ErrUploadFailed)

	body, ct := multipartBody(t, "a.png", pngHeader)
	rec := do(h, http.MethodPost, "/api/v1/uploads", body, map[string]string{"Content-Type": ct})

	assert.Equal(t, http.StatusBadGateway, rec.Code)
	assert.Equal(t, "Upload failed", decodeBody(t, rec)["error"])
}

func TestUpload_Disabled(t *testing.T) {
	h, _, _ := newTestHandler(t, false)

	rec := do(h, http.MethodPost, "/api/v1/uploads", nil, nil)

	assert.Equal(t, http.StatusNotImplemented, rec.Code)
}

func TestWriteError_UpstreamUnavailableIsRetryable(t *testing.T) {
	refused := &net.OpError{Op: "dial", Net: "tcp", Err: errors.New("connection refused")}
	tests := []struct {
		name string
		err  error
	}{
		{"dial refused", fmt.Errorf("get campaign 9: %w", refused)},
		{"deadline", fmt.Errorf("get campaign 9: %w", context.DeadlineExceeded)},
		{"node http status", fmt.Errorf("get campaign 9: %w", rpc.HTTPError{StatusCode: http.StatusBadGateway, Status: "502 Bad Gateway"})},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h, svc, _ := newTestHandler(t, false)
			svc.EXPECT().GetCampaign(mock.Anything, mock.Anything, uint64(9)).Return(nil, tt.err)

			rec := do(h, http.MethodGet, "/api/v1/campaigns/9", nil, nil)

			assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
			assert.Equal(t, "Network unavailable, try again", decodeBody(t, rec)["error"])
		})
	}
}
