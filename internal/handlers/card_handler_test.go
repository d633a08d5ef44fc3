package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/jeffleon2/draftea-prepaid-service/internal/handlers"
	"github.com/jeffleon2/draftea-prepaid-service/internal/handlers/mocks"
	"github.com/jeffleon2/draftea-prepaid-service/internal/ledger"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models/dto"
	"github.com/jeffleon2/draftea-prepaid-service/internal/money"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRouter(h *handlers.CardHandler) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/cards", h.CreateCard)
	r.GET("/cards/:id", h.GetCard)
	r.GET("/cards/:id/balance", h.GetBalance)
	r.GET("/cards/:id/blocked-balance", h.GetBlockedBalance)
	r.POST("/cards/:id/load-money", h.LoadMoney)
	r.POST("/cards/:id/refunds", h.ReceiveRefund)
	r.GET("/cards/:id/journal", h.GetJournal)
	r.POST("/merchants", h.CreateMerchant)
	r.GET("/merchants/:id", h.GetMerchant)
	r.POST("/authorizations", h.Authorize)
	r.GET("/authorizations/:id", h.GetAuthorization)
	r.POST("/authorizations/:id/capture", h.Capture)
	r.POST("/authorizations/:id/reverse", h.Reverse)
	return r
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	if body == "" {
		reader = bytes.NewReader(nil)
	} else {
		reader = bytes.NewReader([]byte(body))
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestCreateCard(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		CreateCard(mock.Anything, int64(0)).
		Return(ledger.CardSnapshot{ID: 1, OwnerID: 1}, nil).
		Once()

	w := do(r, http.MethodPost, "/cards", "")

	assert.Equal(t, http.StatusCreated, w.Code)
	card := decode[dto.Card](t, w)
	assert.Equal(t, int64(1), card.ID)
	assert.Equal(t, []int64{}, card.Earmarked)
}

func TestCreateCard_WithOwner(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		CreateCard(mock.Anything, int64(9)).
		Return(ledger.CardSnapshot{ID: 1, OwnerID: 9}, nil).
		Once()

	w := do(r, http.MethodPost, "/cards", `{"owner_id":9}`)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, int64(9), decode[dto.Card](t, w).OwnerID)
}

func TestGetCard_Balances(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))
	snapshot := ledger.CardSnapshot{
		ID:               3,
		AmountLoaded:     money.MustParse("6.00"),
		AmountBlocked:    money.MustParse("5.00"),
		AvailableBalance: money.MustParse("1.00"),
	}

	mockService.EXPECT().GetCard(mock.Anything, int64(3)).Return(snapshot, nil).Times(3)

	w := do(r, http.MethodGet, "/cards/3", "")
	require.Equal(t, http.StatusOK, w.Code)
	card := decode[dto.Card](t, w)
	assert.True(t, card.Balance.Equal(decimal.RequireFromString("1.00")))
	assert.True(t, card.BlockedBalance.Equal(decimal.RequireFromString("5.00")))

	w = do(r, http.MethodGet, "/cards/3/balance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.Balance](t, w).Balance.Equal(decimal.RequireFromString("1.00")))

	w = do(r, http.MethodGet, "/cards/3/blocked-balance", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.BlockedBalance](t, w).BlockedBalance.Equal(decimal.RequireFromString("5.00")))
}

func TestGetCard_Errors(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		GetCard(mock.Anything, int64(1234)).
		Return(ledger.CardSnapshot{}, fmt.Errorf("card 1234: %w", ledger.ErrNotFound)).
		Once()

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/cards/1234", "").Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodGet, "/cards/abc", "").Code)
}

func TestLoadMoney(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		LoadMoney(mock.Anything, int64(1), money.MustParse("6.00")).
		Return(ledger.CardSnapshot{ID: 1, Active: true, AmountLoaded: 600, AvailableBalance: 600}, nil).
		Once()

	w := do(r, http.MethodPost, "/cards/1/load-money", `{"amount":"6.00"}`)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.Card](t, w).Active)
}

func TestLoadMoney_BadAmounts(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		LoadMoney(mock.Anything, int64(1), money.Zero).
		Return(ledger.CardSnapshot{}, ledger.ErrInvalidAmount).
		Once()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/cards/1/load-money", `{"amount":"0.001"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/cards/1/load-money", `not json`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/cards/1/load-money", `{}`).Code)
}

func TestReceiveRefund(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		ReceiveRefund(mock.Anything, int64(1), money.MustParse("1.25")).
		Return(ledger.CardSnapshot{ID: 1, AmountRefunded: 125}, nil).
		Once()

	w := do(r, http.MethodPost, "/cards/1/refunds", `{"amount":1.25}`)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestGetJournal(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		Journal(mock.Anything, int64(1)).
		Return([]models.LedgerEntry{{ID: "e1", CardID: 1, Kind: models.EntryLoad, Amount: 600}}, nil).
		Once()

	w := do(r, http.MethodGet, "/cards/1/journal", "")

	require.Equal(t, http.StatusOK, w.Code)
	entries := decode[[]dto.LedgerEntry](t, w)
	require.Len(t, entries, 1)
	assert.Equal(t, models.EntryLoad, entries[0].Kind)
	assert.True(t, entries[0].Amount.Equal(decimal.RequireFromString("6")))
}

func TestMerchants(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().CreateMerchant(mock.Anything).Return(ledger.MerchantSnapshot{ID: 1}, nil).Once()
	mockService.EXPECT().GetMerchant(mock.Anything, int64(1)).Return(ledger.MerchantSnapshot{ID: 1, Balance: 300}, nil).Once()

	w := do(r, http.MethodPost, "/merchants", "")
	assert.Equal(t, http.StatusCreated, w.Code)

	w = do(r, http.MethodGet, "/merchants/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.Merchant](t, w).Balance.Equal(decimal.RequireFromString("3")))
}

func TestAuthorize_Approved(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		Authorize(mock.Anything, int64(1), int64(2), money.MustParse("5.00")).
		Return(ledger.AuthorizationSnapshot{ID: 7, CardID: 1, MerchantID: 2, Approved: true, OriginalAmount: 500, AuthorizedAmount: 500}, nil).
		Once()

	w := do(r, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":2,"amount":"5.00"}`)

	require.Equal(t, http.StatusCreated, w.Code)
	authorization := decode[dto.Authorization](t, w)
	assert.Equal(t, int64(7), authorization.ID)
	assert.True(t, authorization.Approved)
}

func TestAuthorize_Declined(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		Authorize(mock.Anything, int64(1), int64(2), money.MustParse("7.00")).
		Return(ledger.AuthorizationSnapshot{ID: 8, CardID: 1, MerchantID: 2, OriginalAmount: 700, AuthorizedAmount: 700}, fmt.Errorf("declined: %w", ledger.ErrInsufficientFunds)).
		Once()

	w := do(r, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":2,"amount":"7.00"}`)

	require.Equal(t, http.StatusPaymentRequired, w.Code)
	body := decode[struct {
		Error         string            `json:"error"`
		Authorization dto.Authorization `json:"authorization"`
	}](t, w)
	assert.Equal(t, int64(8), body.Authorization.ID)
	assert.False(t, body.Authorization.Approved)
	assert.Contains(t, body.Error, "insufficient funds")
}

func TestAuthorize_BadRequests(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		Authorize(mock.Anything, int64(1), int64(99), money.MustParse("1.00")).
		Return(ledger.AuthorizationSnapshot{}, fmt.Errorf("merchant 99: %w", ledger.ErrNotFound)).
		Once()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/authorizations", `{"merchant_id":2,"amount":"1.00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":2,"amount":"1.005"}`).Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":99,"amount":"1.00"}`).Code)
}

func TestCapture(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		Capture(mock.Anything, int64(7), money.MustParse("3.00")).
		Return(ledger.AuthorizationSnapshot{ID: 7, Approved: true, AmountCaptured: 300, AuthorizedAmount: 200}, nil).
		Once()
	mockService.EXPECT().
		Capture(mock.Anything, int64(7), money.MustParse("9.00")).
		Return(ledger.AuthorizationSnapshot{}, ledger.ErrExceedsAuthorizedAmount).
		Once()

	w := do(r, http.MethodPost, "/authorizations/7/capture", `{"amount":"3.00"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, decode[dto.Authorization](t, w).AuthorizedAmount.Equal(decimal.RequireFromString("2")))

	w = do(r, http.MethodPost, "/authorizations/7/capture", `{"amount":"9.00"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestReverse(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))
	partial := money.MustParse("1.00")

	mockService.EXPECT().
		Reverse(mock.Anything, int64(7), &partial).
		Return(ledger.AuthorizationSnapshot{ID: 7, AmountReversed: 100}, nil).
		Once()
	mockService.EXPECT().
		Reverse(mock.Anything, int64(7), (*money.Amount)(nil)).
		Return(ledger.AuthorizationSnapshot{ID: 7, AmountReversed: 500}, nil).
		Once()

	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/authorizations/7/reverse", `{"amount":"1.00"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodPost, "/authorizations/7/reverse", "").Code)
}

func TestGetAuthorization_InternalError(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		GetAuthorization(mock.Anything, int64(1)).
		Return(ledger.AuthorizationSnapshot{}, errors.New("boom")).
		Once()

	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/authorizations/1", "").Code)
}

func TestHandleEvents_Refund(t *testing.T) {
	ctx := context.Background()
	mockService := mocks.NewMockCardService(t)
	h := handlers.NewCardHandler(mockService)

	mockService.EXPECT().
		ReceiveRefund(ctx, int64(4), money.MustParse("2.00")).
		Return(ledger.CardSnapshot{}, nil).
		Once()

	err := h.HandleEvents(ctx, models.RefundReceivedTopic, []byte(`{"card_id":4,"amount":"2.00","trace_id":"t1"}`))

	assert.NoError(t, err)
}

func TestHandleEvents_CaptureNotFoundIsPermanent(t *testing.T) {
	ctx := context.Background()
	mockService := mocks.NewMockCardService(t)
	h := handlers.NewCardHandler(mockService)

	mockService.EXPECT().
		Capture(ctx, int64(5), money.MustParse("1.50")).
		Return(ledger.AuthorizationSnapshot{}, ledger.ErrNotFound).
		Once()

	err := h.HandleEvents(ctx, models.CaptureRequestedTopic, []byte(`{"authorization_id":5,"amount":1.5}`))

	assert.ErrorIs(t, err, ledger.ErrNotFound)
	assert.True(t, ledger.IsPermanent(err))
}

func TestHandleEvents_ReverseRemaining(t *testing.T) {
	ctx := context.Background()
	mockService := mocks.NewMockCardService(t)
	h := handlers.NewCardHandler(mockService)

	mockService.EXPECT().
		Reverse(ctx, int64(5), (*money.Amount)(nil)).
		Return(ledger.AuthorizationSnapshot{}, nil).
		Once()

	err := h.HandleEvents(ctx, models.ReversalRequestedTopic, []byte(`{"authorization_id":5}`))

	assert.NoError(t, err)
}

func TestHandleEvents_Errors(t *testing.T) {
	h := handlers.NewCardHandler(mocks.NewMockCardService(t))

	assert.Error(t, h.HandleEvents(context.Background(), "unknown.topic", []byte(`{}`)))
	assert.Error(t, h.HandleEvents(context.Background(), models.RefundReceivedTopic, []byte(`{bad`)))
}

func TestHandleEvents_UnusableEventsArePermanent(t *testing.T) {
	ctx := context.Background()
	h := handlers.NewCardHandler(mocks.NewMockCardService(t))

	tests := []struct {
		name  string
		topic string
		value string
	}{
		{"bad json", models.RefundReceivedTopic, `{bad`},
		{"sub-cent capture", models.CaptureRequestedTopic, `{"authorization_id":1,"amount":"1.001"}`},
		{"oversized refund", models.RefundReceivedTopic, `{"card_id":1,"amount":"92233720368547758.08"}`},
		{"bad reversal", models.ReversalRequestedTopic, `[]`},
		{"unknown topic", "unknown.topic", `{}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := h.HandleEvents(ctx, tt.topic, []byte(tt.value))

			assert.Error(t, err)
			assert.True(t, ledger.IsPermanent(err))
		})
	}
}

func TestLoadMoney_OverflowIsBadRequest(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := newRouter(handlers.NewCardHandler(mockService))

	mockService.EXPECT().
		LoadMoney(mock.Anything, int64(1), money.MustParse("0.01")).
		Return(ledger.CardSnapshot{}, fmt.Errorf("load onto card 1: %w", money.ErrOverflow)).
		Once()

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/cards/1/load-money", `{"amount":"0.01"}`).Code)
}

func TestGetEntries(t *testing.T) {
	mockService := mocks.NewMockCardService(t)
	r := gin.New()
	r.GET("/journal", handlers.NewCardHandler(mockService).GetEntries)

	mockService.EXPECT().
		Entries(mock.Anything).
		Return([]models.LedgerEntry{{ID: "e1", CardID: 1, Kind: models.EntryLoad}, {ID: "e2", CardID: 2, Kind: models.EntryRefund}}, nil).
		Once()

	w := do(r, http.MethodGet, "/journal", "")

	require.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, decode[[]dto.LedgerEntry](t, w), 2)
}
