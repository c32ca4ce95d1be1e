package service

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"paymob-course-checkout/internal/client"
	"paymob-course-checkout/internal/config"
	"paymob-course-checkout/internal/model"
	"paymob-course-checkout/internal/repository"
	"strings"
	"time"
)

const paymentKeyExpiration = 3600 // seconds

type PaymentService interface {
	// CreatePayment opens a paymob order for the course and returns the hosted iframe URL.
	CreatePayment(ctx context.Context, userID, courseID string, amountCents int64) (string, error)
	// VerifyPayment records the course as purchased once the paymob order can be fetched.
	VerifyPayment(ctx context.Context, orderID, courseID, userID string) error
}

type paymentServiceImpl struct {
	paymobClient   client.PaymobClient
	purchaseRepo   repository.PurchaseRepository
	paymobCfg      *config.Paymob
	serviceBaseUrl string
	logger         *slog.Logger
	now            func() time.Time
}

func NewPaymentService(
	paymobClient client.PaymobClient,
	purchaseRepo repository.PurchaseRepository,
	paymobCfg *config.Paymob,
	serviceBaseUrl string,
	logger *slog.Logger,
) PaymentService {
	return &paymentServiceImpl{
		paymobClient:   paymobClient,
		purchaseRepo:   purchaseRepo,
		paymobCfg:      paymobCfg,
		serviceBaseUrl: strings.TrimRight(serviceBaseUrl, "/"),
		logger:         logger,
		now:            time.Now,
	}
}

// authToken fetches a fresh token for every call; tokens are never cached.
func (s *paymentServiceImpl) authToken(ctx context.Context) (string, error) {
	token, err := s.paymobClient.GetAuthToken(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrProviderAuth, err)
	}
	return token, nil
}

func (s *paymentServiceImpl) CreatePayment(ctx context.Context, userID, courseID string, amountCents int64) (string, error) {
	if userID == "" || courseID == "" || amountCents <= 0 {
		return "", fmt.Errorf("%w: uid, courseId, amount required", ErrInvalidRequest)
	}

	authToken, err := s.authToken(ctx)
	if err != nil {
		return "", err
	}

	order, err := s.paymobClient.CreateOrder(ctx, authToken, &model.PaymobOrderRequest{
		DeliveryNeeded:  false,
		AmountCents:     amountCents,
		Currency:        s.paymobCfg.Currency,
		MerchantOrderID: fmt.Sprintf("order_%d_%s", s.now().UnixMilli(), courseID),
		Items:           []model.PaymobItem{},
	})
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrOrderCreation, err)
	}
	orderID := order.ID.String()

	// an order left here without a payment key stays open on paymob's side
	paymentToken, err := s.paymobClient.CreatePaymentKey(ctx, authToken, &model.PaymobPaymentKeyRequest{
		AuthToken:         authToken,
		AmountCents:       amountCents,
		Expiration:        paymentKeyExpiration,
		OrderID:           order.ID,
		BillingData:       billingData(&s.paymobCfg.Billing),
		Currency:          s.paymobCfg.Currency,
		IntegrationID:     s.paymobCfg.IntegrationID,
		LockOrderWhenPaid: false,
		ReturnURL:         s.returnURL(userID, courseID, orderID),
	})
	if err != nil {
		return "", fmt.Errorf("%w: order %s: %w", ErrPaymentKey, orderID, err)
	}

	s.logger.InfoContext(ctx, "paymob checkout created",
		slog.String("uid", userID),
		slog.String("course_id", courseID),
		slog.String("order_id", orderID),
		slog.Int64("amount_cents", amountCents),
	)

	return s.iframeURL(paymentToken), nil
}

// VerifyPayment treats an order that paymob returns as paid. The order's
// transaction status is not inspected.
func (s *paymentServiceImpl) VerifyPayment(ctx context.Context, orderID, courseID, userID string) error {
	if orderID == "" || courseID == "" || userID == "" {
		return fmt.Errorf("%w: orderId, courseId, uid required", ErrInvalidRequest)
	}

	authToken, err := s.authToken(ctx)
	if err != nil {
		return err
	}

	if _, err := s.paymobClient.GetOrder(ctx, authToken, orderID); err != nil {
		return fmt.Errorf("%w: get order %s: %w", ErrVerification, orderID, err)
	}

	err = s.purchaseRepo.Upsert(ctx, &model.Purchase{
		UserID:      userID,
		CourseID:    courseID,
		OrderID:     orderID,
		PurchasedAt: s.now().UTC(),
	})
	if err != nil {
		return fmt.Errorf("%w: store purchase: %w", ErrVerification, err)
	}

	s.logger.InfoContext(ctx, "course purchase recorded",
		slog.String("uid", userID),
		slog.String("course_id", courseID),
		slog.String("order_id", orderID),
	)

	return nil
}

// returnURL points paymob back at the static success page. The query string is
// the only thing linking the later verify call to this checkout.
func (s *paymentServiceImpl) returnURL(userID, courseID, orderID string) string {
	q := url.Values{}
	q.Set("uid", userID)
	q.Set("courseId", courseID)
	q.Set("orderId", orderID)

	return s.serviceBaseUrl + "/pay_success.html?" + q.Encode()
}

func (s *paymentServiceImpl) iframeURL(paymentToken string) string {
	return fmt.Sprintf("%s/%s?payment_token=%s",
		strings.TrimRight(s.paymobCfg.IframeBaseURL, "/"),
		url.PathEscape(s.paymobCfg.IframeID),
		url.QueryEscape(paymentToken),
	)
}

func billingData(b *config.Billing) model.PaymobBillingData {
	return model.PaymobBillingData{
		Apartment:      b.Apartment,
		Email:          b.Email,
		Floor:          b.Floor,
		FirstName:      b.FirstName,
		Street:         b.Street,
		Building:       b.Building,
		PhoneNumber:    b.PhoneNumber,
		ShippingMethod: b.ShippingMethod,
		PostalCode:     b.PostalCode,
		City:           b.City,
		Country:        b.Country,
		LastName:       b.LastName,
		State:          b.State,
	}
}
