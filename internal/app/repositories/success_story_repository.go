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

// SuccessStoryRepository handles database operations for success stories
type SuccessStoryRepository struct {
	db *pgxpool.Pool
}

// NewSuccessStoryRepository creates a new success story repository
func NewSuccessStoryRepository(db *pgxpool.Pool) *SuccessStoryRepository {
	return &SuccessStoryRepository{
		db: db,
	}
}

// List retrieves all success stories, newest first
func (r *SuccessStoryRepository) List(ctx context.Context) ([]*models.SuccessStory, error) {
	query := `
		SELECT id, name, batch, image_url, excerpt, content, created_at
		FROM success_stories
		ORDER BY created_at DESC
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error listing success stories: %w", err)
	}
	defer rows.Close()

	var stories []*models.SuccessStory
	for rows.Next() {
		var story models.SuccessStory
		if err := rows.Scan(
			&story.ID, &story.Name, &story.Batch, &story.ImageURL,
			&story.Excerpt, &story.Content, &story.CreatedAt,
		); err != nil {
			return nil, err
		}
		stories = append(stories, &story)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return stories, nil
}

// GetByID retrieves a success story by id
func (r *SuccessStoryRepository) GetByID(ctx context.Context, id int64) (*models.SuccessStory, error) {
	query := `
		SELECT id, name, batch, image_url, excerpt, content, created_at
		FROM success_stories
		WHERE id = $1
	`

	var story models.SuccessStory
	err := r.db.QueryRow(ctx, query, id).Scan(
		&story.ID, &story.Name, &story.Batch, &story.ImageURL,
		&story.Excerpt, &story.Content, &story.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("error retrieving success story: %w", err)
	}
	return &story, nil
}

// Create inserts a new success story
func (r *SuccessStoryRepository) Create(ctx context.Context, story *models.SuccessStory) error {
	query := `
		INSERT INTO success_stories (name, batch, image_url, excerpt, content)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query,
		story.Name, story.Batch, story.ImageURL, story.Excerpt, story.Content).
		Scan(&story.ID, &story.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating success story: %w", err)
	}
	return nil
}

// Update modifies an existing success story
func (r *SuccessStoryRepository) Update(ctx context.Context, story *models.SuccessStory) error {
	query := `
		UPDATE success_stories
		SET name = $1, batch = $2, image_url = $3, excerpt = $4, content = $5
		WHERE id = $6
	`

	tag, err := r.db.Exec(ctx, query,
		story.Name, story.Batch, story.ImageURL, story.Excerpt, story.Content, story.ID)
	if err != nil {
		return fmt.Errorf("error updating success story: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrStoryNotFound
	}
	return nil
}

// Delete removes a success story and returns its image URL for file cleanup
func (r *SuccessStoryRepository) Delete(ctx context.Context, id int64) (*string, error) {
	var imageURL *string
	err := r.db.QueryRow(ctx, `DELETE FROM success_stories WHERE id = $1 RETURNING image_url`, id).Scan(&imageURL)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrStoryNotFound
		}
		return nil, fmt.Errorf("error deleting success story: %w", err)
	}
	return imageURL, nil
}
