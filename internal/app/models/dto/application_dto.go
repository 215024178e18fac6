package dto

// SaveApplicationRequest is the draft-save payload. Every field is
// optional; the form is saved incrementally. Numeric and date fields
// arrive as strings because the client submits raw form values — empty
// strings mean "not filled in yet" and are normalized to NULL before
// persistence.
type SaveApplicationRequest struct {
	FatherName       *string  `json:"fatherName"`
	FatherOccupation *string  `json:"fatherOccupation"`
	FamilyMembers    string   `json:"familyMembers"`
	DateOfBirth      string   `json:"dateOfBirth"` // YYYY-MM-DD
	Gender           *string  `json:"gender"`
	Address          *string  `json:"address"`
	Pincode          *string  `json:"pincode"`
	Phone            *string  `json:"phone"`
	MobileSecondary  *string  `json:"mobileSecondary"`
	AadharNumber     *string  `json:"aadharNumber"`
	SchoolName       *string  `json:"schoolName"`
	PassingYear      string   `json:"passingYear"`
	IsGovtSchool     bool     `json:"isGovtSchool"`
	ExamCategory     *string  `json:"examCategory"`
	SpecialCondition []string `json:"specialCondition"`
	PhotoURL         *string  `json:"photoUrl"`
	SignatureURL     *string  `json:"signatureUrl"`
	IDProofURL       *string  `json:"idProofUrl"`

	// Status is only honored when explicitly provided; a field-only save
	// never changes the lifecycle state.
	Status *string `json:"status"`
}

// UpdateStatusRequest is the admin review action payload
type UpdateStatusRequest struct {
	Status          string  `json:"status" binding:"required"`
	CorrectionNotes *string `json:"correctionNotes"`
}

// GenerateAdmitCardRequest identifies the application to issue a card for
type GenerateAdmitCardRequest struct {
	ApplicationID int64 `json:"applicationId" binding:"required"`
}
