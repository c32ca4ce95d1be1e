package service

import (
	"context"
	"io"
	"log/slog"
	"paymob-course-checkout/internal/model"
	"sync"
)

type fakePaymobClient struct {
	GetAuthTokenFunc     func(ctx context.Context) (string, error)
	CreateOrderFunc      func(ctx context.Context, authToken string, req *model.PaymobOrderRequest) (*model.PaymobOrder, error)
	CreatePaymentKeyFunc func(ctx context.Context, authToken string, req *model.PaymobPaymentKeyRequest) (string, error)
	GetOrderFunc         func(ctx context.Context, authToken string, orderID string) (*model.PaymobOrder, error)

	mu    sync.Mutex
	calls []string
}

func (f *fakePaymobClient) record(name string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, name)
}

func (f *fakePaymobClient) GetAuthToken(ctx context.Context) (string, error) {
	f.record("GetAuthToken")
	if f.GetAuthTokenFunc != nil {
		return f.GetAuthTokenFunc(ctx)
	}
	return "T1", nil
}

func (f *fakePaymobClient) CreateOrder(ctx context.Context, authToken string, req *model.PaymobOrderRequest) (*model.PaymobOrder, error) {
	f.record("CreateOrder")
	if f.CreateOrderFunc != nil {
		return f.CreateOrderFunc(ctx, authToken, req)
	}
	return &model.PaymobOrder{ID: "1"}, nil
}

func (f *fakePaymobClient) CreatePaymentKey(ctx context.Context, authToken string, req *model.PaymobPaymentKeyRequest) (string, error) {
	f.record("CreatePaymentKey")
	if f.CreatePaymentKeyFunc != nil {
		return f.CreatePaymentKeyFunc(ctx, authToken, req)
	}
	return "P1", nil
}

func (f *fakePaymobClient) GetOrder(ctx context.Context, authToken string, orderID string) (*model.PaymobOrder, error) {
	f.record("GetOrder")
	if f.GetOrderFunc != nil {
		return f.GetOrderFunc(ctx, authToken, orderID)
	}
	return &model.PaymobOrder{ID: "1"}, nil
}

type fakePurchaseRepo struct {
	UpsertErr error
	ListFunc  func(ctx context.Context, userID string) ([]*model.Purchase, error)

	mu     sync.Mutex
	writes []model.Purchase
}

func (f *fakePurchaseRepo) Upsert(ctx context.Context, purchase *model.Purchase) error {
	if f.UpsertErr != nil {
		return f.UpsertErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.writes = append(f.writes, *purchase)
	return nil
}

func (f *fakePurchaseRepo) ListByUser(ctx context.Context, userID string) ([]*model.Purchase, error) {
	if f.ListFunc != nil {
		return f.ListFunc(ctx, userID)
	}
	return nil, nil
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
