package payment

import "testing"

func TestHMACVerifierSign(t *testing.T) {
	v := NewHMACVerifier("test-secret")

	sig := v.Sign("order_123", "pay_456")
	if len(sig) != 64 {
		t.Errorf("expected 64 hex chars, got %d (%s)", len(sig), sig)
	}

	// Signing is deterministic
	if again := v.Sign("order_123", "pay_456"); again != sig {
		t.Errorf("signature not deterministic: %s vs %s", sig, again)
	}

	// Different payload yields different signature
	if other := v.Sign("order_123", "pay_457"); other == sig {
		t.Error("different payment id produced identical signature")
	}
}

func TestHMACVerifierVerify(t *testing.T) {
	v := NewHMACVerifier("test-secret")
	sig := v.Sign("order_123", "pay_456")

	tests := []struct {
		name      string
		orderID   string
		paymentID string
		signature string
		want      bool
	}{
		{"valid signature", "order_123", "pay_456", sig, true},
		{"tampered signature", "order_123", "pay_456", sig[:63] + "0", false},
		{"wrong order", "order_124", "pay_456", sig, false},
		{"wrong payment", "order_123", "pay_457", sig, false},
		{"empty signature", "order_123", "pay_456", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := v.Verify(tt.orderID, tt.paymentID, tt.signature); got != tt.want {
				t.Errorf("Verify() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestHMACVerifierDifferentSecrets(t *testing.T) {
	a := NewHMACVerifier("secret-a")
	b := NewHMACVerifier("secret-b")

	sig := a.Sign("order_1", "pay_1")
	if b.Verify("order_1", "pay_1", sig) {
		t.Error("signature from one secret verified under another")
	}
}
