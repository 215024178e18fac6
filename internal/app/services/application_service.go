package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/email"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/helpers"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/validation"
)

// applicationStore is the slice of the application repository this service
// depends on. Kept as an interface so tests can run against a fake.
type applicationStore interface {
	GetByStudent(ctx context.Context, studentID int64) (*models.Application, error)
	GetByIDWithStudent(ctx context.Context, id int64) (*models.Application, error)
	Upsert(ctx context.Context, app *models.Application, explicitStatus *enums.ApplicationStatus) (*models.Application, error)
	List(ctx context.Context, offset uint64, limit int) ([]*models.Application, error)
	Count(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus, correctionNotes *string) (*models.Application, error)
}

// ApplicationService implements the application form workflow: incremental
// draft saves by students and review decisions by admins.
type ApplicationService struct {
	apps  applicationStore
	email email.EmailService
}

// NewApplicationService creates a new application service
func NewApplicationService(apps applicationStore, emailService email.EmailService) *ApplicationService {
	return &ApplicationService{
		apps:  apps,
		email: emailService,
	}
}

// GetByStudent returns the student's application, or nil when none exists.
// Absence is the normal first-visit case, not an error.
func (s *ApplicationService) GetByStudent(ctx context.Context, studentID int64) (*models.Application, error) {
	return s.apps.GetByStudent(ctx, studentID)
}

// Save creates or updates the student's application. The same endpoint
// serves incremental draft saves and the final submission; the lifecycle
// state only changes when the request carries an explicit status.
func (s *ApplicationService) Save(ctx context.Context, studentID int64, req *dto.SaveApplicationRequest) (*models.Application, error) {
	existing, err := s.apps.GetByStudent(ctx, studentID)
	if err != nil {
		return nil, err
	}
	if existing != nil && !existing.Status.Editable() {
		return nil, apperrors.ErrApplicationLocked
	}

	explicitStatus, err := parseStudentStatus(req.Status)
	if err != nil {
		return nil, err
	}

	app, err := buildApplication(studentID, req)
	if err != nil {
		return nil, err
	}

	saved, err := s.apps.Upsert(ctx, app, explicitStatus)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("studentId", studentID).
		Int64("applicationId", saved.ID).
		Str("status", string(saved.Status)).
		Msg("Application saved")

	return saved, nil
}

// parseStudentStatus validates the status field of a save request. Students
// may keep a draft pending or submit it; review states are admin territory.
func parseStudentStatus(raw *string) (*enums.ApplicationStatus, error) {
	if raw == nil || *raw == "" {
		return nil, nil
	}
	status := enums.ApplicationStatus(*raw)
	if status != enums.StatusPending && status != enums.StatusSubmitted {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "status must be 'pending' or 'submitted'")
	}
	return &status, nil
}

// buildApplication normalizes the raw form payload into a model: empty
// strings become NULLs, numeric and date fields are parsed, and format
// rules run on whatever is actually present.
func buildApplication(studentID int64, req *dto.SaveApplicationRequest) (*models.Application, error) {
	familyMembers, ok := helpers.NullableInt(req.FamilyMembers)
	if !ok {
		return nil, apperrors.NewValidationError("familyMembers", "family members must be a number")
	}

	dob, ok := helpers.NullableDate(req.DateOfBirth)
	if !ok {
		return nil, apperrors.NewValidationError("dateOfBirth", "date of birth must be in YYYY-MM-DD format")
	}

	passingYear, ok := helpers.NullableInt(req.PassingYear)
	if !ok {
		return nil, apperrors.NewValidationError("passingYear", "passing year must be a number")
	}

	app := &models.Application{
		StudentID:        studentID,
		FatherName:       helpers.TrimmedOrNil(req.FatherName),
		FatherOccupation: helpers.TrimmedOrNil(req.FatherOccupation),
		FamilyMembers:    familyMembers,
		DateOfBirth:      dob,
		Gender:           helpers.TrimmedOrNil(req.Gender),
		Address:          helpers.TrimmedOrNil(req.Address),
		Pincode:          helpers.TrimmedOrNil(req.Pincode),
		Phone:            helpers.TrimmedOrNil(req.Phone),
		MobileSecondary:  helpers.TrimmedOrNil(req.MobileSecondary),
		AadharNumber:     helpers.TrimmedOrNil(req.AadharNumber),
		SchoolName:       helpers.TrimmedOrNil(req.SchoolName),
		PassingYear:      passingYear,
		IsGovtSchool:     req.IsGovtSchool,
		ExamCategory:     helpers.TrimmedOrNil(req.ExamCategory),
		SpecialCondition: req.SpecialCondition,
		PhotoURL:         helpers.TrimmedOrNil(req.PhotoURL),
		SignatureURL:     helpers.TrimmedOrNil(req.SignatureURL),
		IDProofURL:       helpers.TrimmedOrNil(req.IDProofURL),
	}
	if app.SpecialCondition == nil {
		app.SpecialCondition = []string{}
	}

	if app.Pincode != nil && !validation.ValidPincode(*app.Pincode) {
		return nil, apperrors.NewValidationError("pincode", "pincode must be 6 digits")
	}
	if app.Phone != nil && !validation.ValidPhone(*app.Phone) {
		return nil, apperrors.NewValidationError("phone", "phone must be 10 digits")
	}
	if app.MobileSecondary != nil && !validation.ValidPhone(*app.MobileSecondary) {
		return nil, apperrors.NewValidationError("mobileSecondary", "phone must be 10 digits")
	}
	if app.AadharNumber != nil && !validation.ValidAadhar(*app.AadharNumber) {
		return nil, apperrors.NewValidationError("aadharNumber", "aadhar number must be 12 digits")
	}

	return app, nil
}

// List returns a page of applications with the total count, newest first.
func (s *ApplicationService) List(ctx context.Context, page, limit int) ([]*models.Application, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	apps, err := s.apps.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.apps.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return apps, total, nil
}

// GetByID returns an application with the owning student's identity joined.
func (s *ApplicationService) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	return s.apps.GetByIDWithStudent(ctx, id)
}

// UpdateStatus applies an admin review decision and notifies the applicant.
// A correction request must carry notes telling the student what to fix.
func (s *ApplicationService) UpdateStatus(ctx context.Context, id int64, req *dto.UpdateStatusRequest) (*models.Application, error) {
	status := enums.ApplicationStatus(req.Status)
	if !status.Valid() {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "unknown status '"+req.Status+"'")
	}

	notes := helpers.TrimmedOrNil(req.CorrectionNotes)
	if status == enums.StatusCorrection && notes == nil {
		return nil, apperrors.ErrCorrectionNotes
	}
	if status != enums.StatusCorrection {
		notes = nil
	}

	// Resolve the student's identity before mutating so the notification
	// has a recipient even if the joined read races a delete.
	current, err := s.apps.GetByIDWithStudent(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := s.apps.UpdateStatus(ctx, id, status, notes)
	if err != nil {
		return nil, err
	}

	logger.Info().
		Int64("applicationId", id).
		Str("from", string(current.Status)).
		Str("to", string(status)).
		Msg("Application status updated")

	// Notification is best effort; a mail failure never rolls back a
	// review decision.
	var noteText string
	if notes != nil {
		noteText = *notes
	}
	if err := s.email.SendStatusUpdate(current.StudentEmail, current.StudentName, status, noteText); err != nil {
		logger.Warn().Err(err).Int64("applicationId", id).Msg("Status notification failed")
	}

	updated.StudentName = current.StudentName
	updated.StudentEmail = current.StudentEmail
	return updated, nil
}
