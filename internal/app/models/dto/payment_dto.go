package dto

// CreateOrderResponse is returned to the client so it can open the
// gateway checkout: the order handle plus the public key id.
type CreateOrderResponse struct {
	OrderID  string `json:"orderId"`
	Amount   int64  `json:"amount"` // minor units (paise)
	Currency string `json:"currency"`
	KeyID    string `json:"keyId"`
}

// VerifyPaymentRequest carries the gateway callback fields. The field
// names mirror what the Razorpay checkout hands back to the client.
type VerifyPaymentRequest struct {
	OrderID       string `json:"razorpay_order_id" binding:"required"`
	PaymentID     string `json:"razorpay_payment_id" binding:"required"`
	Signature     string `json:"razorpay_signature" binding:"required"`
	ApplicationID int64  `json:"applicationId" binding:"required"`
}

// VerifyPaymentResponse reports the outcome of a verification call
type VerifyPaymentResponse struct {
	Status     string `json:"status"`
	Message    string `json:"message"`
	RollNumber string `json:"rollNumber,omitempty"`
}
