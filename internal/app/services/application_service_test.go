package services

import (
	"context"
	"errors"
	"testing"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
)

// fakeApplicationStore keeps a single application per student, mirroring
// the UNIQUE(student_id) constraint the real repository relies on.
type fakeApplicationStore struct {
	byStudent map[int64]*models.Application
	nextID    int64

	lastExplicitStatus *enums.ApplicationStatus
	upsertCalls        int
}

func newFakeApplicationStore() *fakeApplicationStore {
	return &fakeApplicationStore{byStudent: map[int64]*models.Application{}, nextID: 1}
}

func (f *fakeApplicationStore) GetByStudent(ctx context.Context, studentID int64) (*models.Application, error) {
	app, ok := f.byStudent[studentID]
	if !ok {
		return nil, nil
	}
	copied := *app
	return &copied, nil
}

func (f *fakeApplicationStore) GetByIDWithStudent(ctx context.Context, id int64) (*models.Application, error) {
	for _, app := range f.byStudent {
		if app.ID == id {
			copied := *app
			copied.StudentName = "Asha Kumari"
			copied.StudentEmail = "asha@example.org"
			return &copied, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

func (f *fakeApplicationStore) Upsert(ctx context.Context, app *models.Application, explicitStatus *enums.ApplicationStatus) (*models.Application, error) {
	f.upsertCalls++
	f.lastExplicitStatus = explicitStatus

	existing, ok := f.byStudent[app.StudentID]
	saved := *app
	if ok {
		saved.ID = existing.ID
		saved.Status = existing.Status
		saved.PaymentStatus = existing.PaymentStatus
		saved.RollNumber = existing.RollNumber
	} else {
		saved.ID = f.nextID
		f.nextID++
		saved.Status = enums.StatusPending
		saved.PaymentStatus = enums.PaymentUnpaid
	}
	if explicitStatus != nil {
		saved.Status = *explicitStatus
	}
	f.byStudent[app.StudentID] = &saved
	copied := saved
	return &copied, nil
}

func (f *fakeApplicationStore) List(ctx context.Context, offset uint64, limit int) ([]*models.Application, error) {
	var out []*models.Application
	for _, app := range f.byStudent {
		copied := *app
		out = append(out, &copied)
	}
	return out, nil
}

func (f *fakeApplicationStore) Count(ctx context.Context) (int64, error) {
	return int64(len(f.byStudent)), nil
}

func (f *fakeApplicationStore) UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus, correctionNotes *string) (*models.Application, error) {
	for _, app := range f.byStudent {
		if app.ID == id {
			app.Status = status
			app.CorrectionNotes = correctionNotes
			copied := *app
			return &copied, nil
		}
	}
	return nil, apperrors.ErrApplicationNotFound
}

// fakeEmail records status notifications instead of sending them.
type fakeEmail struct {
	sent []string
	err  error
}

func (f *fakeEmail) SendStatusUpdate(toEmail, toName string, status enums.ApplicationStatus, correctionNotes string) error {
	f.sent = append(f.sent, toEmail+":"+string(status))
	return f.err
}

func strPtr(s string) *string { return &s }

func TestSaveCreatesApplication(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	saved, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
		FatherName: strPtr("Ram Singh"),
		Pincode:    strPtr("302001"),
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.ID == 0 {
		t.Error("saved application has no id")
	}
	if saved.Status != enums.StatusPending {
		t.Errorf("new application status = %s, want pending", saved.Status)
	}
	if store.lastExplicitStatus != nil {
		t.Error("a field-only save must not pass an explicit status")
	}
}

func TestSavePreservesStatusWithoutExplicitField(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	if _, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
		FatherName: strPtr("Ram Singh"),
	}); err != nil {
		t.Fatalf("initial Save() error = %v", err)
	}

	// Admin sends it back for corrections.
	store.byStudent[42].Status = enums.StatusCorrection

	saved, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
		Address: strPtr("Village Rampur, Jaipur"),
	})
	if err != nil {
		t.Fatalf("correction-phase Save() error = %v", err)
	}
	if saved.Status != enums.StatusCorrection {
		t.Errorf("status after field-only save = %s, want correction preserved", saved.Status)
	}
}

func TestSaveSubmitsWithExplicitStatus(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	saved, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
		FatherName: strPtr("Ram Singh"),
		Status:     strPtr("submitted"),
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.Status != enums.StatusSubmitted {
		t.Errorf("status = %s, want submitted", saved.Status)
	}
}

func TestSaveRejectsReviewStatuses(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationStore(), &fakeEmail{})

	for _, status := range []string{"approved", "rejected", "correction", "nonsense"} {
		_, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
			Status: strPtr(status),
		})
		if !errors.Is(err, apperrors.ErrInvalidStatus) {
			t.Errorf("Save(status=%q) error = %v, want ErrInvalidStatus", status, err)
		}
	}
}

func TestSaveLockedApplication(t *testing.T) {
	for _, status := range []enums.ApplicationStatus{
		enums.StatusSubmitted, enums.StatusApproved, enums.StatusRejected,
	} {
		store := newFakeApplicationStore()
		svc := NewApplicationService(store, &fakeEmail{})

		if _, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{}); err != nil {
			t.Fatalf("seed Save() error = %v", err)
		}
		store.byStudent[42].Status = status
		upsertsBefore := store.upsertCalls

		_, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
			FatherName: strPtr("Changed"),
		})
		if !errors.Is(err, apperrors.ErrApplicationLocked) {
			t.Errorf("Save() with status %s: error = %v, want ErrApplicationLocked", status, err)
		}
		if store.upsertCalls != upsertsBefore {
			t.Errorf("Save() with status %s reached the store", status)
		}
	}
}

func TestSaveNormalizesEmptyFields(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	saved, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{
		FatherName:    strPtr("   "),
		Pincode:       strPtr(""),
		FamilyMembers: "",
		DateOfBirth:   "",
		PassingYear:   "",
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if saved.FatherName != nil {
		t.Errorf("blank father name stored as %q, want nil", *saved.FatherName)
	}
	if saved.Pincode != nil {
		t.Error("empty pincode stored non-nil")
	}
	if saved.FamilyMembers != nil || saved.PassingYear != nil || saved.DateOfBirth != nil {
		t.Error("empty numeric/date fields stored non-nil")
	}
	if saved.SpecialCondition == nil {
		t.Error("special conditions must default to an empty list, not nil")
	}
}

func TestSaveValidation(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationStore(), &fakeEmail{})

	tests := []struct {
		name  string
		req   *dto.SaveApplicationRequest
		field string
	}{
		{"short pincode", &dto.SaveApplicationRequest{Pincode: strPtr("123")}, "pincode"},
		{"pincode starting with zero", &dto.SaveApplicationRequest{Pincode: strPtr("012345")}, "pincode"},
		{"short phone", &dto.SaveApplicationRequest{Phone: strPtr("98765")}, "phone"},
		{"alpha phone", &dto.SaveApplicationRequest{MobileSecondary: strPtr("98765abcde")}, "mobileSecondary"},
		{"short aadhar", &dto.SaveApplicationRequest{AadharNumber: strPtr("1234")}, "aadharNumber"},
		{"non-numeric family members", &dto.SaveApplicationRequest{FamilyMembers: "five"}, "familyMembers"},
		{"malformed date", &dto.SaveApplicationRequest{DateOfBirth: "31-12-2008"}, "dateOfBirth"},
		{"non-numeric passing year", &dto.SaveApplicationRequest{PassingYear: "last year"}, "passingYear"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Save(context.Background(), 42, tt.req)
			var custom *apperrors.CustomError
			if !errors.As(err, &custom) {
				t.Fatalf("Save() error = %v, want a validation error", err)
			}
			if !errors.Is(err, apperrors.ErrValidationFailed) {
				t.Errorf("Save() error = %v, want ErrValidationFailed", err)
			}
			if custom.Field != tt.field {
				t.Errorf("error field = %q, want %q", custom.Field, tt.field)
			}
		})
	}
}

func TestGetByStudentMissingIsNotAnError(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationStore(), &fakeEmail{})

	app, err := svc.GetByStudent(context.Background(), 42)
	if err != nil {
		t.Fatalf("GetByStudent() error = %v", err)
	}
	if app != nil {
		t.Errorf("GetByStudent() = %+v, want nil for a first visit", app)
	}
}

func TestUpdateStatusApproveSendsNotification(t *testing.T) {
	store := newFakeApplicationStore()
	mail := &fakeEmail{}
	svc := NewApplicationService(store, mail)

	seeded, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{Status: strPtr("submitted")})
	if err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, &dto.UpdateStatusRequest{
		Status: "approved",
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.Status != enums.StatusApproved {
		t.Errorf("status = %s, want approved", updated.Status)
	}
	if len(mail.sent) != 1 || mail.sent[0] != "asha@example.org:approved" {
		t.Errorf("notifications = %v, want one approval mail", mail.sent)
	}
}

func TestUpdateStatusCorrectionRequiresNotes(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	seeded, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{Status: strPtr("submitted")})
	if err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}

	for _, notes := range []*string{nil, strPtr(""), strPtr("   ")} {
		_, err := svc.UpdateStatus(context.Background(), seeded.ID, &dto.UpdateStatusRequest{
			Status:          "correction",
			CorrectionNotes: notes,
		})
		if !errors.Is(err, apperrors.ErrCorrectionNotes) {
			t.Errorf("UpdateStatus(correction, notes=%v) error = %v, want ErrCorrectionNotes", notes, err)
		}
	}

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, &dto.UpdateStatusRequest{
		Status:          "correction",
		CorrectionNotes: strPtr("Aadhar number does not match the uploaded ID proof"),
	})
	if err != nil {
		t.Fatalf("UpdateStatus() with notes error = %v", err)
	}
	if updated.CorrectionNotes == nil {
		t.Error("correction notes were not stored")
	}
}

func TestUpdateStatusDropsStaleNotes(t *testing.T) {
	store := newFakeApplicationStore()
	svc := NewApplicationService(store, &fakeEmail{})

	seeded, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{Status: strPtr("submitted")})
	if err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}

	// Notes supplied alongside a non-correction decision are ignored.
	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, &dto.UpdateStatusRequest{
		Status:          "approved",
		CorrectionNotes: strPtr("leftover text"),
	})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v", err)
	}
	if updated.CorrectionNotes != nil {
		t.Errorf("notes = %q, want nil outside correction", *updated.CorrectionNotes)
	}
}

func TestUpdateStatusRejectsUnknownStatus(t *testing.T) {
	svc := NewApplicationService(newFakeApplicationStore(), &fakeEmail{})

	_, err := svc.UpdateStatus(context.Background(), 1, &dto.UpdateStatusRequest{Status: "archived"})
	if !errors.Is(err, apperrors.ErrInvalidStatus) {
		t.Errorf("UpdateStatus() error = %v, want ErrInvalidStatus", err)
	}
}

func TestUpdateStatusSurvivesMailFailure(t *testing.T) {
	store := newFakeApplicationStore()
	mail := &fakeEmail{err: errors.New("smtp connection refused")}
	svc := NewApplicationService(store, mail)

	seeded, err := svc.Save(context.Background(), 42, &dto.SaveApplicationRequest{Status: strPtr("submitted")})
	if err != nil {
		t.Fatalf("seed Save() error = %v", err)
	}

	updated, err := svc.UpdateStatus(context.Background(), seeded.ID, &dto.UpdateStatusRequest{Status: "approved"})
	if err != nil {
		t.Fatalf("UpdateStatus() error = %v, mail failures must not fail the decision", err)
	}
	if updated.Status != enums.StatusApproved {
		t.Errorf("status = %s, want approved", updated.Status)
	}
}
