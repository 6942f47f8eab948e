package models

// CheckoutRequest asks the payment provider for a hosted checkout page.
type CheckoutRequest struct {
	PriceID    string `json:"priceId"`
	Email      string `json:"email,omitempty"`
	SuccessURL string `json:"-"`
	CancelURL  string `json:"-"`
}

// CheckoutSession locates the hosted checkout page the client should be
// sent to.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url,omitempty"`
}
