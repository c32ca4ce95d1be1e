package service

import "errors"

// Error kinds. Handlers map ErrInvalidRequest to 400 and everything else to 500;
// the kind itself is only logged.
var (
	ErrInvalidRequest = errors.New("invalid request")
	ErrProviderAuth   = errors.New("paymob auth failed")
	ErrOrderCreation  = errors.New("paymob order creation failed")
	ErrPaymentKey     = errors.New("paymob payment key failed")
	ErrVerification   = errors.New("payment verification failed")
)

// Kind returns the sentinel error kind wrapped by err, or nil.
func Kind(err error) error {
	for _, kind := range []error{ErrInvalidRequest, ErrProviderAuth, ErrOrderCreation, ErrPaymentKey, ErrVerification} {
		if errors.Is(err, kind) {
			return kind
		}
	}
	return nil
}
