package app_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/jeffleon2/draftea-prepaid-service/config"
	"github.com/jeffleon2/draftea-prepaid-service/internal/app"
	"github.com/jeffleon2/draftea-prepaid-service/internal/models/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newApp(t *testing.T, env string) *app.App {
	t.Helper()
	cfg := &config.Config{
		APP:    config.APP{PORT: "0", ENV: env, LogLevel: "error"},
		Ledger: config.Ledger{Currency: "GBP"},
	}
	a := &app.App{}
	require.NoError(t, a.Initialize(cfg))
	return a
}

func call(a *app.App, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewReader([]byte(body)))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	a.Router.ServeHTTP(w, req)
	return w
}

func TestInitialize_SeedsLocalLedger(t *testing.T) {
	a := newApp(t, "local")

	w := call(a, http.MethodGet, "/cards/1/balance", "")

	require.Equal(t, http.StatusOK, w.Code)
	var balance dto.Balance
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &balance))
	assert.True(t, balance.Balance.Equal(decimal.RequireFromString("100")))
	assert.Equal(t, http.StatusOK, call(a, http.MethodGet, "/merchants/2", "").Code)
}

func TestAuthorizeCaptureFlow(t *testing.T) {
	a := newApp(t, "production")

	require.Equal(t, http.StatusCreated, call(a, http.MethodPost, "/cards", "").Code)
	require.Equal(t, http.StatusCreated, call(a, http.MethodPost, "/merchants", "").Code)
	require.Equal(t, http.StatusOK, call(a, http.MethodPost, "/cards/1/load-money", `{"amount":"6.00"}`).Code)

	w := call(a, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":1,"amount":"5.00"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	w = call(a, http.MethodPost, "/authorizations", `{"card_id":1,"merchant_id":1,"amount":"1.00"}`)
	assert.Equal(t, http.StatusPaymentRequired, w.Code)

	require.Equal(t, http.StatusOK, call(a, http.MethodPost, "/authorizations/1/capture", `{"amount":"3.00"}`).Code)
	require.Equal(t, http.StatusOK, call(a, http.MethodPost, "/authorizations/1/capture", `{"amount":"2.00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, call(a, http.MethodPost, "/authorizations/1/capture", `{"amount":"0.01"}`).Code)

	w = call(a, http.MethodGet, "/cards/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var card dto.Card
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &card))
	assert.True(t, card.AmountLoaded.Equal(decimal.RequireFromString("1")))
	assert.True(t, card.Balance.Equal(decimal.RequireFromString("1")))
	assert.Empty(t, card.Earmarked)

	w = call(a, http.MethodGet, "/merchants/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	var merchant dto.Merchant
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &merchant))
	assert.True(t, merchant.Balance.Equal(decimal.RequireFromString("5")))

	w = call(a, http.MethodGet, "/cards/1/journal", "")
	require.Equal(t, http.StatusOK, w.Code)
	var entries []dto.LedgerEntry
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 5)

	w = call(a, http.MethodGet, "/journal", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &entries))
	assert.Len(t, entries, 5)

	assert.Equal(t, http.StatusOK, call(a, http.MethodGet, "/metrics", "").Code)
}
