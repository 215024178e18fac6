package payment

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// SignatureVerifier checks the authenticity of a completed payment.
// Verification is a pure local computation; no gateway round trip.
type SignatureVerifier interface {
	Verify(orderID, paymentID, signature string) bool
}

// HMACVerifier verifies Razorpay payment signatures: HMAC-SHA256 over
// "orderID|paymentID" keyed with the shared key secret.
type HMACVerifier struct {
	secret []byte
}

// NewHMACVerifier creates a verifier for the given key secret
func NewHMACVerifier(secret string) *HMACVerifier {
	return &HMACVerifier{secret: []byte(secret)}
}

// Sign computes the expected hex signature for an order/payment pair
func (v *HMACVerifier) Sign(orderID, paymentID string) string {
	mac := hmac.New(sha256.New, v.secret)
	mac.Write([]byte(orderID + "|" + paymentID))
	return hex.EncodeToString(mac.Sum(nil))
}

// Verify reports whether the supplied signature matches the expected one.
// The comparison is constant time.
func (v *HMACVerifier) Verify(orderID, paymentID, signature string) bool {
	expected := v.Sign(orderID, paymentID)
	return hmac.Equal([]byte(expected), []byte(signature))
}
