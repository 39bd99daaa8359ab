package services

import (
	"context"

	"github.com/dgeemedia/chrenis/utils"
)

const defaultPaymentProvider = "paystack"

// PaymentSession is what the frontend needs to send the user to a checkout
// page. The provider integration is a stub; real SDK calls come later.
type PaymentSession struct {
	Provider    string  `json:"provider"`
	CheckoutURL string  `json:"checkout_url"`
	ProviderRef string  `json:"provider_ref"`
	Amount      float64 `json:"amount"`
}

type PaymentService struct {
	checkoutBase string
}

// NewPaymentService takes the base checkout URL for the stub provider;
// empty falls back to a placeholder.
func NewPaymentService(checkoutBase string) *PaymentService {
	if checkoutBase == "" {
		checkoutBase = "https://example.com/checkout"
	}
	return &PaymentService{checkoutBase: checkoutBase}
}

func (s *PaymentService) CreateSession(ctx context.Context, caller Identity, amount float64, provider string) (*PaymentSession, error) {
	if caller.IsZero() {
		return nil, ErrUnauthenticated()
	}
	if amount <= 0 {
		return nil, ErrInvalidInput("invalid amount")
	}
	if provider == "" {
		provider = defaultPaymentProvider
	}
	return &PaymentSession{
		Provider:    provider,
		CheckoutURL: s.checkoutBase,
		ProviderRef: utils.GenerateProviderRef(caller.UserID),
		Amount:      amount,
	}, nil
}
