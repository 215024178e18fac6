package repositories

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
)

// ExamCenterRepository handles database operations for exam centers.
// The pool of centers is effectively read-only configuration data.
type ExamCenterRepository struct {
	db *pgxpool.Pool
}

// NewExamCenterRepository creates a new exam center repository
func NewExamCenterRepository(db *pgxpool.Pool) *ExamCenterRepository {
	return &ExamCenterRepository{
		db: db,
	}
}

// GetAll retrieves all exam centers ordered by id
func (r *ExamCenterRepository) GetAll(ctx context.Context) ([]*models.ExamCenter, error) {
	query := `SELECT id, name, location, exam_date FROM exam_centers ORDER BY id`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving exam centers: %w", err)
	}
	defer rows.Close()

	var centers []*models.ExamCenter
	for rows.Next() {
		var center models.ExamCenter
		if err := rows.Scan(&center.ID, &center.Name, &center.Location, &center.ExamDate); err != nil {
			return nil, err
		}
		centers = append(centers, &center)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return centers, nil
}

// GetByID retrieves an exam center by id
func (r *ExamCenterRepository) GetByID(ctx context.Context, id int64) (*models.ExamCenter, error) {
	query := `SELECT id, name, location, exam_date FROM exam_centers WHERE id = $1`

	var center models.ExamCenter
	err := r.db.QueryRow(ctx, query, id).Scan(&center.ID, &center.Name, &center.Location, &center.ExamDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamCenterNotFound
		}
		return nil, fmt.Errorf("error retrieving exam center: %w", err)
	}
	return &center, nil
}

// GetFirst retrieves the lowest-id configured center
func (r *ExamCenterRepository) GetFirst(ctx context.Context) (*models.ExamCenter, error) {
	query := `SELECT id, name, location, exam_date FROM exam_centers ORDER BY id LIMIT 1`

	var center models.ExamCenter
	err := r.db.QueryRow(ctx, query).Scan(&center.ID, &center.Name, &center.Location, &center.ExamDate)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrExamCenterNotFound
		}
		return nil, fmt.Errorf("error retrieving exam center: %w", err)
	}
	return &center, nil
}

// Create inserts an exam center (used by seeding)
func (r *ExamCenterRepository) Create(ctx context.Context, center *models.ExamCenter) error {
	query := `
		INSERT INTO exam_centers (name, location, exam_date)
		VALUES ($1, $2, $3)
		RETURNING id
	`

	err := r.db.QueryRow(ctx, query, center.Name, center.Location, center.ExamDate).Scan(&center.ID)
	if err != nil {
		return fmt.Errorf("error creating exam center: %w", err)
	}
	return nil
}

// CountCenters returns the number of configured centers
func (r *ExamCenterRepository) CountCenters(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM exam_centers`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting exam centers: %w", err)
	}
	return count, nil
}
