package enums

// Role defines the closed set of user roles. Role checks compare against
// these constants only; free-form role strings coming from tokens are
// parsed through ParseRole before use.
type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// ParseRole maps a raw string onto the closed Role set.
func ParseRole(s string) (Role, bool) {
	switch Role(s) {
	case RoleStudent:
		return RoleStudent, true
	case RoleAdmin:
		return RoleAdmin, true
	}
	return "", false
}

// ApplicationStatus is the lifecycle state of a scholarship application.
type ApplicationStatus string

const (
	StatusPending    ApplicationStatus = "pending"
	StatusSubmitted  ApplicationStatus = "submitted"
	StatusApproved   ApplicationStatus = "approved"
	StatusRejected   ApplicationStatus = "rejected"
	StatusCorrection ApplicationStatus = "correction"
)

// Valid reports whether s is a member of the status enum.
func (s ApplicationStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSubmitted, StatusApproved, StatusRejected, StatusCorrection:
		return true
	}
	return false
}

// Editable reports whether a student may still modify an application in
// this state. Once submitted, approved or rejected the record is read-only
// for the student.
func (s ApplicationStatus) Editable() bool {
	return s == StatusPending || s == StatusCorrection
}

// PaymentStatus tracks whether the application fee has been paid.
type PaymentStatus string

const (
	PaymentUnpaid PaymentStatus = "unpaid"
	PaymentPaid   PaymentStatus = "paid"
)
