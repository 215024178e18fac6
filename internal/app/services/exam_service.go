package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/admitcard"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// examStore is the slice of the application repository the admit card
// workflow depends on.
type examStore interface {
	GetByID(ctx context.Context, id int64) (*models.Application, error)
	AssignAdmitCard(ctx context.Context, id int64, centerID int64, rollNumber string) (*models.Application, bool, error)
	GetAdmitCard(ctx context.Context, studentID int64) (*models.AdmitCard, error)
}

// ExamConfig carries roll number settings for manual issuance
type ExamConfig struct {
	RollPrefix string
	Year       int
}

// ExamService implements admit card issuance and retrieval. Issuance
// normally happens inside payment verification; the admin path here covers
// fee waivers and manual fixes.
type ExamService struct {
	apps     examStore
	assigner ExamCenterAssigner
	config   ExamConfig
}

// NewExamService creates a new exam service
func NewExamService(apps examStore, assigner ExamCenterAssigner, config ExamConfig) *ExamService {
	return &ExamService{
		apps:     apps,
		assigner: assigner,
		config:   config,
	}
}

// GenerateAdmitCard issues the exam center and roll number for an
// application by admin action. Issuing twice is a no-op returning the
// already-assigned state.
func (s *ExamService) GenerateAdmitCard(ctx context.Context, applicationID int64) (*models.Application, error) {
	app, err := s.apps.GetByID(ctx, applicationID)
	if err != nil {
		return nil, err
	}

	if app.RollNumber != nil {
		return app, nil
	}

	if app.Status == enums.StatusRejected {
		return nil, apperrors.NewCustomError(apperrors.ErrInvalidStatus, "cannot issue an admit card for a rejected application")
	}

	center, err := s.assigner.Assign(ctx, app)
	if err != nil {
		return nil, err
	}
	rollNumber := FormatRollNumber(s.config.RollPrefix, s.config.Year, app.ID)

	updated, won, err := s.apps.AssignAdmitCard(ctx, app.ID, center.ID, rollNumber)
	if err != nil {
		return nil, err
	}
	if !won {
		return s.apps.GetByID(ctx, app.ID)
	}

	logger.Info().
		Int64("applicationId", updated.ID).
		Str("rollNumber", rollNumber).
		Msg("Admit card issued by admin")

	return updated, nil
}

// GetAdmitCard returns the student's admit card view. ErrAdmitCardNotReady
// surfaces while no roll number has been issued.
func (s *ExamService) GetAdmitCard(ctx context.Context, studentID int64) (*models.AdmitCard, error) {
	return s.apps.GetAdmitCard(ctx, studentID)
}

// RenderAdmitCardPDF returns the student's admit card as a printable PDF.
func (s *ExamService) RenderAdmitCardPDF(ctx context.Context, studentID int64) ([]byte, error) {
	card, err := s.apps.GetAdmitCard(ctx, studentID)
	if err != nil {
		return nil, err
	}
	return admitcard.RenderPDF(card)
}
