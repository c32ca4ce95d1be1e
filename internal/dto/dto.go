package dto

import (
	"math"

	"github.com/shopspring/decimal"
)

var maxAmountCents = decimal.NewFromInt(math.MaxInt64)

type CreatePaymentRequest struct {
	UID      string `json:"uid"`
	CourseID string `json:"courseId"`
	// minor units (piasters), e.g. 15000 = 150.00 EGP
	Amount decimal.Decimal `json:"amount"`
}

// AmountCents returns the amount as an integer count of minor units, or 0 when
// it is missing, fractional, not positive or too large for int64.
func (r *CreatePaymentRequest) AmountCents() int64 {
	if !r.Amount.IsPositive() || !r.Amount.IsInteger() || r.Amount.GreaterThan(maxAmountCents) {
		return 0
	}
	return r.Amount.IntPart()
}

type CreatePaymentResponse struct {
	IframeURL string `json:"iframeUrl"`
}

type VerifyPaymentRequest struct {
	OrderID  string `json:"orderId"`
	CourseID string `json:"courseId"`
	UID      string `json:"uid"`
}

type VerifyPaymentResponse struct {
	Success bool `json:"success"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}
