package validation

import "testing"

func TestValidPincode(t *testing.T) {
	valid := []string{"302001", "110001", "999999"}
	invalid := []string{"", "12345", "1234567", "030201", "30200a", "302 01"}

	for _, s := range valid {
		if !ValidPincode(s) {
			t.Errorf("ValidPincode(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidPincode(s) {
			t.Errorf("ValidPincode(%q) = true, want false", s)
		}
	}
}

func TestValidPhone(t *testing.T) {
	valid := []string{"9876543210", "0123456789"}
	invalid := []string{"", "987654321", "98765432101", "98765abcde", "+919876543210"}

	for _, s := range valid {
		if !ValidPhone(s) {
			t.Errorf("ValidPhone(%q) = false, want true", s)
		}
	}
	for _, s := range invalid {
		if ValidPhone(s) {
			t.Errorf("ValidPhone(%q) = true, want false", s)
		}
	}
}

func TestValidAadhar(t *testing.T) {
	if !ValidAadhar("123456789012") {
		t.Error("12-digit aadhar rejected")
	}
	for _, s := range []string{"", "12345678901", "1234567890123", "12345678901a"} {
		if ValidAadhar(s) {
			t.Errorf("ValidAadhar(%q) = true, want false", s)
		}
	}
}
