package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
)

// fakeExamStore mirrors the conditional AssignAdmitCard update: the first
// assignment wins, repeats report zero rows.
type fakeExamStore struct {
	apps        map[int64]*models.Application
	cards       map[int64]*models.AdmitCard
	assignCalls int
}

func (f *fakeExamStore) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	app, ok := f.apps[id]
	if !ok {
		return nil, apperrors.ErrApplicationNotFound
	}
	copied := *app
	return &copied, nil
}

func (f *fakeExamStore) AssignAdmitCard(ctx context.Context, id int64, centerID int64, rollNumber string) (*models.Application, bool, error) {
	f.assignCalls++
	app, ok := f.apps[id]
	if !ok {
		return nil, false, apperrors.ErrApplicationNotFound
	}
	if app.RollNumber != nil {
		return nil, false, nil
	}
	app.ExamCenterID = &centerID
	app.RollNumber = &rollNumber
	copied := *app
	return &copied, true, nil
}

func (f *fakeExamStore) GetAdmitCard(ctx context.Context, studentID int64) (*models.AdmitCard, error) {
	card, ok := f.cards[studentID]
	if !ok {
		return nil, apperrors.ErrAdmitCardNotReady
	}
	return card, nil
}

func testExamService(store *fakeExamStore) *ExamService {
	return NewExamService(store, &fakeAssigner{center: &models.ExamCenter{ID: 5}}, ExamConfig{
		RollPrefix: "FV",
		Year:       2026,
	})
}

func TestGenerateAdmitCard(t *testing.T) {
	store := &fakeExamStore{apps: map[int64]*models.Application{
		12: {ID: 12, StudentID: 42, Status: enums.StatusApproved},
	}}
	svc := testExamService(store)

	app, err := svc.GenerateAdmitCard(context.Background(), 12)
	if err != nil {
		t.Fatalf("GenerateAdmitCard() error = %v", err)
	}
	if app.RollNumber == nil || *app.RollNumber != "FV-2026-0012" {
		t.Errorf("roll number = %v, want FV-2026-0012", app.RollNumber)
	}
	if app.ExamCenterID == nil || *app.ExamCenterID != 5 {
		t.Error("exam center was not assigned together with the roll number")
	}
}

func TestGenerateAdmitCardTwiceIsNoOp(t *testing.T) {
	store := &fakeExamStore{apps: map[int64]*models.Application{
		12: {ID: 12, StudentID: 42, Status: enums.StatusApproved},
	}}
	svc := testExamService(store)

	first, err := svc.GenerateAdmitCard(context.Background(), 12)
	if err != nil {
		t.Fatalf("first GenerateAdmitCard() error = %v", err)
	}
	second, err := svc.GenerateAdmitCard(context.Background(), 12)
	if err != nil {
		t.Fatalf("second GenerateAdmitCard() error = %v", err)
	}
	if *second.RollNumber != *first.RollNumber {
		t.Errorf("second issuance changed the roll number: %s vs %s", *second.RollNumber, *first.RollNumber)
	}
	if store.assignCalls != 1 {
		t.Errorf("AssignAdmitCard called %d times, want exactly once", store.assignCalls)
	}
}

func TestGenerateAdmitCardRejectedApplication(t *testing.T) {
	store := &fakeExamStore{apps: map[int64]*models.Application{
		12: {ID: 12, StudentID: 42, Status: enums.StatusRejected},
	}}
	svc := testExamService(store)

	_, err := svc.GenerateAdmitCard(context.Background(), 12)
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("GenerateAdmitCard() error = %v, want ErrInvalidStatus", err)
	}
	if store.assignCalls != 0 {
		t.Error("a rejected application must never reach AssignAdmitCard")
	}
}

func TestGetAdmitCardNotReady(t *testing.T) {
	store := &fakeExamStore{apps: map[int64]*models.Application{}, cards: map[int64]*models.AdmitCard{}}
	svc := testExamService(store)

	_, err := svc.GetAdmitCard(context.Background(), 42)
	if !errors.Is(err, apperrors.ErrAdmitCardNotReady) {
		t.Errorf("GetAdmitCard() error = %v, want ErrAdmitCardNotReady", err)
	}
}

func TestRenderAdmitCardPDF(t *testing.T) {
	store := &fakeExamStore{
		apps: map[int64]*models.Application{},
		cards: map[int64]*models.AdmitCard{
			42: {
				RollNumber:     "FV-2026-0012",
				StudentID:      42,
				StudentName:    "Asha Kumari",
				StudentEmail:   "asha@example.org",
				CenterName:     "Sansthan Campus",
				CenterLocation: "Jaipur, Rajasthan",
			},
		},
	}
	svc := testExamService(store)

	pdf, err := svc.RenderAdmitCardPDF(context.Background(), 42)
	if err != nil {
		t.Fatalf("RenderAdmitCardPDF() error = %v", err)
	}
	if len(pdf) == 0 {
		t.Fatal("rendered PDF is empty")
	}
	if string(pdf[:5]) != "%PDF-" {
		t.Errorf("output does not start with a PDF header: %q", pdf[:5])
	}
}
