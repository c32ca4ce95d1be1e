package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"paymob-course-checkout/internal/client"
	"paymob-course-checkout/internal/dto"
	"paymob-course-checkout/internal/service"
	"strings"

	"github.com/labstack/echo/v4"
)

type PaymentHandler struct {
	paymentService service.PaymentService
	logger         *slog.Logger
}

func NewPaymentHandler(paymentService service.PaymentService, logger *slog.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentService: paymentService,
		logger:         logger,
	}
}

func (h *PaymentHandler) CreatePayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.CreatePaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	iframeURL, err := h.paymentService.CreatePayment(ctx, req.UID, req.CourseID, req.AmountCents())
	if err != nil {
		return h.fail(c, "create_payment", err, "Failed to create payment")
	}

	return c.JSON(http.StatusOK, &dto.CreatePaymentResponse{
		IframeURL: iframeURL,
	})
}

func (h *PaymentHandler) VerifyPayment(c echo.Context) error {
	ctx := c.Request().Context()

	var req dto.VerifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: "invalid request body"})
	}

	err := h.paymentService.VerifyPayment(ctx, req.OrderID, req.CourseID, req.UID)
	if err != nil {
		return h.fail(c, "verify_payment", err, "Verification failed")
	}

	return c.JSON(http.StatusOK, &dto.VerifyPaymentResponse{
		Success: true,
	})
}

// fail logs err with its kind and answers with a generic message. Validation
// errors carry their own message since it names the missing fields.
func (h *PaymentHandler) fail(c echo.Context, op string, err error, message string) error {
	if errors.Is(err, service.ErrInvalidRequest) {
		return c.JSON(http.StatusBadRequest, &dto.ErrorResponse{Error: validationMessage(err)})
	}

	attrs := []any{
		slog.String("op", op),
		slog.Any("kind", service.Kind(err)),
		slog.Any("error", err),
	}
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		attrs = append(attrs, slog.Int("paymob_status", apiErr.StatusCode), slog.String("paymob_body", apiErr.Body))
	}
	h.logger.ErrorContext(c.Request().Context(), op+" error", attrs...)

	return c.JSON(http.StatusInternalServerError, &dto.ErrorResponse{Error: message})
}

func validationMessage(err error) string {
	return strings.TrimPrefix(err.Error(), service.ErrInvalidRequest.Error()+": ")
}
