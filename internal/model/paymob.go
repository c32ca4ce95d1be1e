package model

type PaymobAuthRequest struct {
	APIKey string `json:"api_key"`
}

type PaymobAuthResult struct {
	Token string `json:"token"`
}

type PaymobItem struct {
	Name        string `json:"name"`
	AmountCents int64  `json:"amount_cents"`
	Description string `json:"description,omitempty"`
	Quantity    int    `json:"quantity"`
}

type PaymobOrderRequest struct {
	DeliveryNeeded  bool         `json:"delivery_needed"`
	AmountCents     int64        `json:"amount_cents"`
	Currency        string       `json:"currency"`
	MerchantOrderID string       `json:"merchant_order_id"`
	Items           []PaymobItem `json:"items"`
}

type PaymobOrder struct {
	ID              PaymobID `json:"id"`
	AmountCents     int64    `json:"amount_cents"`
	Currency        string   `json:"currency"`
	MerchantOrderID string   `json:"merchant_order_id"`
	PaidAmountCents int64    `json:"paid_amount_cents"`
	CreatedAt       string   `json:"created_at"`
}

type PaymobBillingData struct {
	Apartment      string `json:"apartment"`
	Email          string `json:"email"`
	Floor          string `json:"floor"`
	FirstName      string `json:"first_name"`
	Street         string `json:"street"`
	Building       string `json:"building"`
	PhoneNumber    string `json:"phone_number"`
	ShippingMethod string `json:"shipping_method"`
	PostalCode     string `json:"postal_code"`
	City           string `json:"city"`
	Country        string `json:"country"`
	LastName       string `json:"last_name"`
	State          string `json:"state"`
}

type PaymobPaymentKeyRequest struct {
	AuthToken         string            `json:"auth_token"`
	AmountCents       int64             `json:"amount_cents"`
	Expiration        int               `json:"expiration"`
	OrderID           PaymobID          `json:"order_id"`
	BillingData       PaymobBillingData `json:"billing_data"`
	Currency          string            `json:"currency"`
	IntegrationID     int               `json:"integration_id"`
	LockOrderWhenPaid bool              `json:"lock_order_when_paid"`
	ReturnURL         string            `json:"return_url"`
}

type PaymobPaymentKeyResult struct {
	Token string `json:"token"`
}
