package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto/enums"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
)

// applicationColumns is the scan order shared by every application query
const applicationColumns = `
	a.id, a.student_id, a.father_name, a.father_occupation, a.family_members,
	a.dob, a.gender, a.address, a.pincode, a.phone, a.mobile_secondary,
	a.aadhar_number, a.school_name, a.passing_year, a.is_govt_school,
	a.exam_category, a.special_condition, a.photo_url, a.signature_url,
	a.id_proof_url, a.status, a.correction_notes, a.payment_status,
	a.payment_id, a.order_id, a.exam_center_id, a.roll_number, a.submitted_at`

// ApplicationRepository handles database operations for applications.
// Every state transition is a single conditional statement so concurrent
// saves, verifications and admin actions serialize on the row.
type ApplicationRepository struct {
	db *pgxpool.Pool
}

// NewApplicationRepository creates a new application repository
func NewApplicationRepository(db *pgxpool.Pool) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
	}
}

func scanApplication(row pgx.Row) (*models.Application, error) {
	var app models.Application
	err := row.Scan(
		&app.ID,
		&app.StudentID,
		&app.FatherName,
		&app.FatherOccupation,
		&app.FamilyMembers,
		&app.DateOfBirth,
		&app.Gender,
		&app.Address,
		&app.Pincode,
		&app.Phone,
		&app.MobileSecondary,
		&app.AadharNumber,
		&app.SchoolName,
		&app.PassingYear,
		&app.IsGovtSchool,
		&app.ExamCategory,
		&app.SpecialCondition,
		&app.PhotoURL,
		&app.SignatureURL,
		&app.IDProofURL,
		&app.Status,
		&app.CorrectionNotes,
		&app.PaymentStatus,
		&app.PaymentID,
		&app.OrderID,
		&app.ExamCenterID,
		&app.RollNumber,
		&app.SubmittedAt,
	)
	if err != nil {
		return nil, err
	}
	return &app, nil
}

// GetByStudent retrieves the single application for a student. Absence is
// not an error: a student who never applied gets (nil, nil).
func (r *ApplicationRepository) GetByStudent(ctx context.Context, studentID int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.student_id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, studentID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return app, nil
}

// GetByID retrieves an application by its id
func (r *ApplicationRepository) GetByID(ctx context.Context, id int64) (*models.Application, error) {
	query := `SELECT ` + applicationColumns + ` FROM applications a WHERE a.id = $1`

	app, err := scanApplication(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return app, nil
}

// GetByIDWithStudent retrieves an application joined with the owning
// student's name and email.
func (r *ApplicationRepository) GetByIDWithStudent(ctx context.Context, id int64) (*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, u.name, u.email
		FROM applications a
		JOIN users u ON a.student_id = u.id
		WHERE a.id = $1
	`

	var app models.Application
	err := r.db.QueryRow(ctx, query, id).Scan(
		&app.ID, &app.StudentID, &app.FatherName, &app.FatherOccupation,
		&app.FamilyMembers, &app.DateOfBirth, &app.Gender, &app.Address,
		&app.Pincode, &app.Phone, &app.MobileSecondary, &app.AadharNumber,
		&app.SchoolName, &app.PassingYear, &app.IsGovtSchool, &app.ExamCategory,
		&app.SpecialCondition, &app.PhotoURL, &app.SignatureURL, &app.IDProofURL,
		&app.Status, &app.CorrectionNotes, &app.PaymentStatus, &app.PaymentID,
		&app.OrderID, &app.ExamCenterID, &app.RollNumber, &app.SubmittedAt,
		&app.StudentName, &app.StudentEmail,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error retrieving application: %w", err)
	}
	return &app, nil
}

// Upsert creates or updates the student's application in one statement.
// The UNIQUE constraint on student_id plus ON CONFLICT guarantees at most
// one row per student even under concurrent saves. Status is only changed
// when explicitStatus is non-nil; a field-only save preserves the current
// lifecycle state.
func (r *ApplicationRepository) Upsert(ctx context.Context, app *models.Application, explicitStatus *enums.ApplicationStatus) (*models.Application, error) {
	query := `
		INSERT INTO applications (
			student_id, father_name, father_occupation, family_members, dob,
			gender, address, pincode, phone, mobile_secondary, aadhar_number,
			school_name, passing_year, is_govt_school, exam_category,
			special_condition, photo_url, signature_url, id_proof_url, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15,
			$16, $17, $18, $19, COALESCE($20, 'pending')
		)
		ON CONFLICT (student_id) DO UPDATE SET
			father_name = EXCLUDED.father_name,
			father_occupation = EXCLUDED.father_occupation,
			family_members = EXCLUDED.family_members,
			dob = EXCLUDED.dob,
			gender = EXCLUDED.gender,
			address = EXCLUDED.address,
			pincode = EXCLUDED.pincode,
			phone = EXCLUDED.phone,
			mobile_secondary = EXCLUDED.mobile_secondary,
			aadhar_number = EXCLUDED.aadhar_number,
			school_name = EXCLUDED.school_name,
			passing_year = EXCLUDED.passing_year,
			is_govt_school = EXCLUDED.is_govt_school,
			exam_category = EXCLUDED.exam_category,
			special_condition = EXCLUDED.special_condition,
			photo_url = EXCLUDED.photo_url,
			signature_url = EXCLUDED.signature_url,
			id_proof_url = EXCLUDED.id_proof_url,
			status = COALESCE($20, applications.status)
		RETURNING ` + selfColumns(applicationColumns)

	var statusArg *string
	if explicitStatus != nil {
		s := string(*explicitStatus)
		statusArg = &s
	}

	saved, err := scanApplication(r.db.QueryRow(ctx, query,
		app.StudentID, app.FatherName, app.FatherOccupation, app.FamilyMembers,
		app.DateOfBirth, app.Gender, app.Address, app.Pincode, app.Phone,
		app.MobileSecondary, app.AadharNumber, app.SchoolName, app.PassingYear,
		app.IsGovtSchool, app.ExamCategory, app.SpecialCondition,
		app.PhotoURL, app.SignatureURL, app.IDProofURL, statusArg,
	))
	if err != nil {
		return nil, fmt.Errorf("error saving application: %w", err)
	}
	return saved, nil
}

// List retrieves applications newest first, joined with student identity
func (r *ApplicationRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Application, error) {
	query := `
		SELECT ` + applicationColumns + `, u.name, u.email
		FROM applications a
		JOIN users u ON a.student_id = u.id
		ORDER BY a.submitted_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	defer rows.Close()

	var apps []*models.Application
	for rows.Next() {
		var app models.Application
		if err := rows.Scan(
			&app.ID, &app.StudentID, &app.FatherName, &app.FatherOccupation,
			&app.FamilyMembers, &app.DateOfBirth, &app.Gender, &app.Address,
			&app.Pincode, &app.Phone, &app.MobileSecondary, &app.AadharNumber,
			&app.SchoolName, &app.PassingYear, &app.IsGovtSchool, &app.ExamCategory,
			&app.SpecialCondition, &app.PhotoURL, &app.SignatureURL, &app.IDProofURL,
			&app.Status, &app.CorrectionNotes, &app.PaymentStatus, &app.PaymentID,
			&app.OrderID, &app.ExamCenterID, &app.RollNumber, &app.SubmittedAt,
			&app.StudentName, &app.StudentEmail,
		); err != nil {
			return nil, err
		}
		apps = append(apps, &app)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return apps, nil
}

// Count returns the total number of applications
func (r *ApplicationRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM applications`).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("error counting applications: %w", err)
	}
	return count, nil
}

// UpdateStatus applies an admin review decision. Roll number and payment
// fields are never touched here; a correction request does not revoke an
// already-issued roll number.
func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id int64, status enums.ApplicationStatus, correctionNotes *string) (*models.Application, error) {
	query := `
		UPDATE applications a
		SET status = $1, correction_notes = $2
		WHERE a.id = $3
		RETURNING ` + selfColumns(applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, status, correctionNotes, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("error updating status: %w", err)
	}
	return app, nil
}

// MarkPaid records a verified payment and issues the roll number and exam
// center in one conditional update. The roll_number IS NULL guard makes
// duplicate verification calls (retries, double webhooks) lose cleanly:
// they update zero rows and the caller re-reads the winner's state.
func (r *ApplicationRepository) MarkPaid(ctx context.Context, id int64, paymentID, orderID string, centerID int64, rollNumber string) (*models.Application, bool, error) {
	query := `
		UPDATE applications a
		SET payment_id = $1,
		    order_id = $2,
		    payment_status = 'paid',
		    status = 'approved',
		    exam_center_id = $3,
		    roll_number = $4
		WHERE a.id = $5 AND a.roll_number IS NULL
		RETURNING ` + selfColumns(applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, paymentID, orderID, centerID, rollNumber, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// Either already processed or the id is unknown; the caller
			// distinguishes via GetByID.
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error recording payment: %w", err)
	}
	return app, true, nil
}

// AssignAdmitCard issues the exam center and roll number for an approved
// application without touching payment fields. Same conditional-update
// idempotency as MarkPaid.
func (r *ApplicationRepository) AssignAdmitCard(ctx context.Context, id int64, centerID int64, rollNumber string) (*models.Application, bool, error) {
	query := `
		UPDATE applications a
		SET exam_center_id = $1, roll_number = $2, status = 'approved'
		WHERE a.id = $3 AND a.roll_number IS NULL
		RETURNING ` + selfColumns(applicationColumns)

	app, err := scanApplication(r.db.QueryRow(ctx, query, centerID, rollNumber, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("error assigning admit card: %w", err)
	}
	return app, true, nil
}

// GetAdmitCard builds the admit-card view for a student. Only applications
// with an issued roll number qualify.
func (r *ApplicationRepository) GetAdmitCard(ctx context.Context, studentID int64) (*models.AdmitCard, error) {
	query := `
		SELECT a.roll_number, a.student_id, u.name, u.email,
		       a.photo_url, a.signature_url,
		       c.name, c.location, c.exam_date
		FROM applications a
		JOIN users u ON a.student_id = u.id
		JOIN exam_centers c ON a.exam_center_id = c.id
		WHERE a.student_id = $1 AND a.roll_number IS NOT NULL
	`

	var card models.AdmitCard
	err := r.db.QueryRow(ctx, query, studentID).Scan(
		&card.RollNumber,
		&card.StudentID,
		&card.StudentName,
		&card.StudentEmail,
		&card.PhotoURL,
		&card.SignatureURL,
		&card.CenterName,
		&card.CenterLocation,
		&card.ExamDate,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrAdmitCardNotReady
		}
		return nil, fmt.Errorf("error retrieving admit card: %w", err)
	}
	return &card, nil
}
