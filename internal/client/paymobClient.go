package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"paymob-course-checkout/internal/config"
	"paymob-course-checkout/internal/model"
)

type PaymobClient interface {
	GetAuthToken(ctx context.Context) (string, error)
	CreateOrder(ctx context.Context, authToken string, req *model.PaymobOrderRequest) (*model.PaymobOrder, error)
	CreatePaymentKey(ctx context.Context, authToken string, req *model.PaymobPaymentKeyRequest) (string, error)
	GetOrder(ctx context.Context, authToken string, orderID string) (*model.PaymobOrder, error)
}

// APIError is returned when paymob answers with a non-2xx status.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("paymob error %d: %s", e.StatusCode, e.Body)
}

type paymobClientImpl struct {
	httpClient *http.Client
	baseApiURL string
	apiKey     string
}

func NewPaymobClient(paymobCfg *config.Paymob) PaymobClient {
	return &paymobClientImpl{
		httpClient: &http.Client{
			Timeout: paymobCfg.HTTPTimeout,
		},
		baseApiURL: paymobCfg.BaseApiURL,
		apiKey:     paymobCfg.APIKey,
	}
}

func (c *paymobClientImpl) GetAuthToken(ctx context.Context) (string, error) {
	var res model.PaymobAuthResult
	err := c.do(ctx, http.MethodPost, "/auth/tokens", "", &model.PaymobAuthRequest{APIKey: c.apiKey}, &res)
	if err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", fmt.Errorf("empty auth token in paymob response")
	}

	return res.Token, nil
}

func (c *paymobClientImpl) CreateOrder(ctx context.Context, authToken string, req *model.PaymobOrderRequest) (*model.PaymobOrder, error) {
	var order model.PaymobOrder
	if err := c.do(ctx, http.MethodPost, "/ecommerce/orders", authToken, req, &order); err != nil {
		return nil, err
	}
	if order.ID == "" {
		return nil, fmt.Errorf("missing order id in paymob response")
	}

	return &order, nil
}

func (c *paymobClientImpl) CreatePaymentKey(ctx context.Context, authToken string, req *model.PaymobPaymentKeyRequest) (string, error) {
	var res model.PaymobPaymentKeyResult
	if err := c.do(ctx, http.MethodPost, "/acceptance/payment_keys", authToken, req, &res); err != nil {
		return "", err
	}
	if res.Token == "" {
		return "", fmt.Errorf("empty payment token in paymob response")
	}

	return res.Token, nil
}

func (c *paymobClientImpl) GetOrder(ctx context.Context, authToken string, orderID string) (*model.PaymobOrder, error) {
	var order model.PaymobOrder
	path := "/ecommerce/orders/" + url.PathEscape(orderID)
	if err := c.do(ctx, http.MethodGet, path, authToken, nil, &order); err != nil {
		return nil, err
	}

	return &order, nil
}

func (c *paymobClientImpl) do(ctx context.Context, method, path, authToken string, payload, out any) error {
	var body io.Reader
	if payload != nil {
		b, err := json.Marshal(payload)
		if err != nil {
			return fmt.Errorf("marshal req payload: %w", err)
		}
		body = bytes.NewBuffer(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseApiURL+path, body)
	if err != nil {
		return fmt.Errorf("http new request: %w", err)
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authToken != "" {
		req.Header.Set("Authorization", "Bearer "+authToken)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read paymob response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}

	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("decode paymob response: %w", err)
	}

	return nil
}
