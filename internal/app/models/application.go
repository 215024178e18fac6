package models

import (
	"time"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
)

// Application is a student's scholarship-admission record. Exactly one row
// exists per student; student_id carries a UNIQUE constraint.
//
// Invariants maintained by the repository layer:
//   - RollNumber and ExamCenterID are both nil or both set.
//   - PaymentID/OrderID are written at most once, together with the
//     transition to payment_status='paid'.
//   - CorrectionNotes is only meaningful while Status is 'correction'.
type Application struct {
	ID        int64 `json:"id" db:"id"`
	StudentID int64 `json:"studentId" db:"student_id"`

	// Personal / academic fields
	FatherName       *string    `json:"fatherName,omitempty" db:"father_name"`
	FatherOccupation *string    `json:"fatherOccupation,omitempty" db:"father_occupation"`
	FamilyMembers    *int       `json:"familyMembers,omitempty" db:"family_members"`
	DateOfBirth      *time.Time `json:"dateOfBirth,omitempty" db:"dob"`
	Gender           *string    `json:"gender,omitempty" db:"gender"`
	Address          *string    `json:"address,omitempty" db:"address"`
	Pincode          *string    `json:"pincode,omitempty" db:"pincode"`
	Phone            *string    `json:"phone,omitempty" db:"phone"`
	MobileSecondary  *string    `json:"mobileSecondary,omitempty" db:"mobile_secondary"`
	AadharNumber     *string    `json:"aadharNumber,omitempty" db:"aadhar_number"`
	SchoolName       *string    `json:"schoolName,omitempty" db:"school_name"`
	PassingYear      *int       `json:"passingYear,omitempty" db:"passing_year"`
	IsGovtSchool     bool       `json:"isGovtSchool" db:"is_govt_school"`
	ExamCategory     *string    `json:"examCategory,omitempty" db:"exam_category"`
	SpecialCondition []string   `json:"specialCondition" db:"special_condition"`

	// Document references (URLs into the file store)
	PhotoURL     *string `json:"photoUrl,omitempty" db:"photo_url"`
	SignatureURL *string `json:"signatureUrl,omitempty" db:"signature_url"`
	IDProofURL   *string `json:"idProofUrl,omitempty" db:"id_proof_url"`

	// Lifecycle
	Status          enums.ApplicationStatus `json:"status" db:"status"`
	CorrectionNotes *string                 `json:"correctionNotes,omitempty" db:"correction_notes"`
	PaymentStatus   enums.PaymentStatus     `json:"paymentStatus" db:"payment_status"`
	PaymentID       *string                 `json:"paymentId,omitempty" db:"payment_id"`
	OrderID         *string                 `json:"orderId,omitempty" db:"order_id"`
	ExamCenterID    *int64                  `json:"examCenterId,omitempty" db:"exam_center_id"`
	RollNumber      *string                 `json:"rollNumber,omitempty" db:"roll_number"`
	SubmittedAt     time.Time               `json:"submittedAt" db:"submitted_at"`

	// Joined data (no db tag)
	StudentName  string      `json:"studentName,omitempty"`
	StudentEmail string      `json:"studentEmail,omitempty"`
	ExamCenter   *ExamCenter `json:"examCenter,omitempty"`
}
