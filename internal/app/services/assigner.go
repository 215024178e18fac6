package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
)

// ExamCenterAssigner picks the exam center for an application at the moment
// its roll number is issued. The default policy assigns everyone to the
// first configured center; capacity- or region-aware policies implement the
// same interface.
type ExamCenterAssigner interface {
	Assign(ctx context.Context, app *models.Application) (*models.ExamCenter, error)
}

// centerStore is the slice of the exam center repository the default
// assigner needs.
type centerStore interface {
	GetFirst(ctx context.Context) (*models.ExamCenter, error)
}

// DefaultCenterAssigner assigns every application to the lowest-id center.
type DefaultCenterAssigner struct {
	centers centerStore
}

// NewDefaultCenterAssigner creates the default assignment policy
func NewDefaultCenterAssigner(centers centerStore) *DefaultCenterAssigner {
	return &DefaultCenterAssigner{centers: centers}
}

// Assign returns the first configured center regardless of the application.
// ErrExamCenterNotFound surfaces when no centers are seeded.
func (a *DefaultCenterAssigner) Assign(ctx context.Context, _ *models.Application) (*models.ExamCenter, error) {
	return a.centers.GetFirst(ctx)
}
