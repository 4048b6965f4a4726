package models

import "time"

// PaymentRequest asks the payment handler to charge for a booking.
type PaymentRequest struct {
	ClientID string  `json:"clientId"`
	Amount   float64 `json:"amount"`
	Currency string  `json:"currency"`
}

// Invoice is the handler's record of a charge attempt.
type Invoice struct {
	InvoiceID string    `json:"invoiceId"`
	ClientID  string    `json:"clientId"`
	Amount    float64   `json:"amount"`
	Currency  string    `json:"currency"`
	Status    string    `json:"status"` // "pending", "paid", "failed"
	PaymentID string    `json:"paymentId,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
