package validation

import (
	"regexp"
)

// Validation rule patterns for application form fields
var (
	// PincodePattern matches Indian postal codes: 6 digits, not starting with 0
	PincodePattern = `^[1-9]\d{5}$`

	// PhonePattern matches a 10-digit mobile number
	PhonePattern = `^\d{10}$`

	// AadharPattern matches a 12-digit national ID number
	AadharPattern = `^\d{12}$`

	PasswordMinLength = 8
	NameMinLength     = 2
	NameMaxLength     = 100
)

// CompiledPatterns caches compiled regex patterns
var CompiledPatterns = struct {
	Pincode *regexp.Regexp
	Phone   *regexp.Regexp
	Aadhar  *regexp.Regexp
}{
	Pincode: regexp.MustCompile(PincodePattern),
	Phone:   regexp.MustCompile(PhonePattern),
	Aadhar:  regexp.MustCompile(AadharPattern),
}

// ValidPincode reports whether s is a well-formed pincode
func ValidPincode(s string) bool {
	return CompiledPatterns.Pincode.MatchString(s)
}

// ValidPhone reports whether s is a well-formed mobile number
func ValidPhone(s string) bool {
	return CompiledPatterns.Phone.MatchString(s)
}

// ValidAadhar reports whether s is a well-formed national ID number
func ValidAadhar(s string) bool {
	return CompiledPatterns.Aadhar.MatchString(s)
}
