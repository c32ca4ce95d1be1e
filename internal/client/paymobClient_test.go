package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"paymob-course-checkout/internal/config"
	"paymob-course-checkout/internal/model"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) PaymobClient {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	return NewPaymobClient(&config.Paymob{
		APIKey:      "secret-key",
		BaseApiURL:  srv.URL,
		HTTPTimeout: 5 * time.Second,
	})
}

func TestGetAuthToken(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/auth/tokens", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Empty(t, r.Header.Get("Authorization"))

		var body model.PaymobAuthRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "secret-key", body.APIKey)

		w.Write([]byte(`{"token":"T1","profile":{"id":1}}`))
	})

	token, err := c.GetAuthToken(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "T1", token)
}

func TestGetAuthTokenNon2xx(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"detail":"incorrect credentials"}`))
	})

	_, err := c.GetAuthToken(context.Background())
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusForbidden, apiErr.StatusCode)
	assert.Contains(t, apiErr.Body, "incorrect credentials")
}

func TestGetAuthTokenEmpty(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{}`))
	})

	_, err := c.GetAuthToken(context.Background())
	assert.Error(t, err)
}

func TestCreateOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/ecommerce/orders", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, false, raw["delivery_needed"])
		assert.EqualValues(t, 15000, raw["amount_cents"])
		assert.Equal(t, "EGP", raw["currency"])
		assert.Equal(t, "order_1_c1", raw["merchant_order_id"])
		assert.Equal(t, []any{}, raw["items"])

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id":4242,"amount_cents":15000,"currency":"EGP"}`))
	})

	order, err := c.CreateOrder(context.Background(), "T1", &model.PaymobOrderRequest{
		AmountCents:     15000,
		Currency:        "EGP",
		MerchantOrderID: "order_1_c1",
		Items:           []model.PaymobItem{},
	})
	require.NoError(t, err)
	assert.Equal(t, model.PaymobID("4242"), order.ID)
}

func TestCreateOrderStringID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":"O1"}`))
	})

	order, err := c.CreateOrder(context.Background(), "T1", &model.PaymobOrderRequest{})
	require.NoError(t, err)
	assert.Equal(t, model.PaymobID("O1"), order.ID)
}

func TestCreatePaymentKeyStringOrderID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "O1", raw["order_id"])

		w.Write([]byte(`{"token":"P1"}`))
	})

	_, err := c.CreatePaymentKey(context.Background(), "T1", &model.PaymobPaymentKeyRequest{OrderID: "O1"})
	require.NoError(t, err)
}

func TestCreateOrderMissingID(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"amount_cents":15000}`))
	})

	_, err := c.CreateOrder(context.Background(), "T1", &model.PaymobOrderRequest{})
	assert.Error(t, err)
}

func TestCreatePaymentKey(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/acceptance/payment_keys", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))

		var raw map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&raw))
		assert.Equal(t, "T1", raw["auth_token"])
		assert.EqualValues(t, 3600, raw["expiration"])
		assert.EqualValues(t, 4242, raw["order_id"])
		assert.Equal(t, "https://example.com/return", raw["return_url"])

		w.Write([]byte(`{"token":"P1"}`))
	})

	token, err := c.CreatePaymentKey(context.Background(), "T1", &model.PaymobPaymentKeyRequest{
		AuthToken:  "T1",
		Expiration: 3600,
		OrderID:    "4242",
		ReturnURL:  "https://example.com/return",
	})
	require.NoError(t, err)
	assert.Equal(t, "P1", token)
}

func TestGetOrder(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/ecommerce/orders/4242", r.URL.Path)
		assert.Equal(t, "Bearer T1", r.Header.Get("Authorization"))
		assert.Empty(t, r.Header.Get("Content-Type"))

		w.Write([]byte(`{"id":4242,"paid_amount_cents":15000}`))
	})

	order, err := c.GetOrder(context.Background(), "T1", "4242")
	require.NoError(t, err)
	assert.Equal(t, model.PaymobID("4242"), order.ID)
	assert.Equal(t, int64(15000), order.PaidAmountCents)
}

func TestGetOrderNotFound(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail":"Not found."}`, http.StatusNotFound)
	})

	_, err := c.GetOrder(context.Background(), "T1", "missing")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
}

func TestTransportError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	c := NewPaymobClient(&config.Paymob{BaseApiURL: srv.URL, HTTPTimeout: time.Second})

	_, err := c.GetAuthToken(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http client do")
}
