package models

import "time"

// ExamCenter is a site where the scholarship exam is held. The pool is
// fixed configuration data; the workflow only reads it when assigning a
// center to an approved application.
type ExamCenter struct {
	ID       int64     `json:"id" db:"id"`
	Name     string    `json:"name" db:"name"`
	Location string    `json:"location" db:"location"`
	ExamDate time.Time `json:"examDate" db:"exam_date"`
}

// AdmitCard is the read-only view handed to the admit-card renderer:
// the roll number plus everything needed to print the card.
type AdmitCard struct {
	RollNumber     string    `json:"rollNumber"`
	StudentID      int64     `json:"studentId"`
	StudentName    string    `json:"studentName"`
	StudentEmail   string    `json:"studentEmail"`
	PhotoURL       *string   `json:"photoUrl,omitempty"`
	SignatureURL   *string   `json:"signatureUrl,omitempty"`
	CenterName     string    `json:"centerName"`
	CenterLocation string    `json:"centerLocation"`
	ExamDate       time.Time `json:"examDate"`
}
