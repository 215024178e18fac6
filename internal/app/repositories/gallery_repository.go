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

// GalleryRepository handles database operations for gallery sections and
// their images
type GalleryRepository struct {
	db *pgxpool.Pool
}

// NewGalleryRepository creates a new gallery repository
func NewGalleryRepository(db *pgxpool.Pool) *GalleryRepository {
	return &GalleryRepository{
		db: db,
	}
}

// GetSections retrieves all gallery sections with their images
func (r *GalleryRepository) GetSections(ctx context.Context) ([]*models.GallerySection, error) {
	query := `SELECT id, name, description, created_at FROM gallery_sections ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery sections: %w", err)
	}
	defer rows.Close()

	var sections []*models.GallerySection
	sectionsByID := make(map[int64]*models.GallerySection)
	for rows.Next() {
		var section models.GallerySection
		if err := rows.Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt); err != nil {
			return nil, err
		}
		section.Images = []*models.GalleryImage{}
		sections = append(sections, &section)
		sectionsByID[section.ID] = &section
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	if len(sections) == 0 {
		return sections, nil
	}

	imageRows, err := r.db.Query(ctx,
		`SELECT id, section_id, url, caption, uploaded_at FROM gallery_images ORDER BY uploaded_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery images: %w", err)
	}
	defer imageRows.Close()

	for imageRows.Next() {
		var image models.GalleryImage
		if err := imageRows.Scan(&image.ID, &image.SectionID, &image.URL, &image.Caption, &image.UploadedAt); err != nil {
			return nil, err
		}
		if section, ok := sectionsByID[image.SectionID]; ok {
			section.Images = append(section.Images, &image)
		}
	}
	if err := imageRows.Err(); err != nil {
		return nil, err
	}

	return sections, nil
}

// GetSectionByID retrieves a single section with its images
func (r *GalleryRepository) GetSectionByID(ctx context.Context, id int64) (*models.GallerySection, error) {
	query := `SELECT id, name, description, created_at FROM gallery_sections WHERE id = $1`

	var section models.GallerySection
	err := r.db.QueryRow(ctx, query, id).Scan(&section.ID, &section.Name, &section.Description, &section.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrSectionNotFound
		}
		return nil, fmt.Errorf("error retrieving gallery section: %w", err)
	}

	rows, err := r.db.Query(ctx,
		`SELECT id, section_id, url, caption, uploaded_at FROM gallery_images WHERE section_id = $1 ORDER BY uploaded_at DESC`,
		id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving gallery images: %w", err)
	}
	defer rows.Close()

	section.Images = []*models.GalleryImage{}
	for rows.Next() {
		var image models.GalleryImage
		if err := rows.Scan(&image.ID, &image.SectionID, &image.URL, &image.Caption, &image.UploadedAt); err != nil {
			return nil, err
		}
		section.Images = append(section.Images, &image)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &section, nil
}

// CreateSection inserts a new gallery section
func (r *GalleryRepository) CreateSection(ctx context.Context, section *models.GallerySection) error {
	query := `
		INSERT INTO gallery_sections (name, description)
		VALUES ($1, $2)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, section.Name, section.Description).
		Scan(&section.ID, &section.CreatedAt)
	if err != nil {
		return fmt.Errorf("error creating gallery section: %w", err)
	}
	return nil
}

// DeleteSection removes a section and returns the URLs of its images so the
// caller can clean up stored files. The images themselves go with the
// section via cascade.
func (r *GalleryRepository) DeleteSection(ctx context.Context, id int64) ([]string, error) {
	rows, err := r.db.Query(ctx, `SELECT url FROM gallery_images WHERE section_id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("error retrieving section images: %w", err)
	}
	defer rows.Close()

	var urls []string
	for rows.Next() {
		var url string
		if err := rows.Scan(&url); err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	tag, err := r.db.Exec(ctx, `DELETE FROM gallery_sections WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("error deleting gallery section: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, apperrors.ErrSectionNotFound
	}

	return urls, nil
}

// AddImage inserts an image into a section
func (r *GalleryRepository) AddImage(ctx context.Context, image *models.GalleryImage) error {
	query := `
		INSERT INTO gallery_images (section_id, url, caption)
		VALUES ($1, $2, $3)
		RETURNING id, uploaded_at
	`

	err := r.db.QueryRow(ctx, query, image.SectionID, image.URL, image.Caption).
		Scan(&image.ID, &image.UploadedAt)
	if err != nil {
		return fmt.Errorf("error adding gallery image: %w", err)
	}
	return nil
}

// DeleteImage removes a single image and returns its URL for file cleanup
func (r *GalleryRepository) DeleteImage(ctx context.Context, id int64) (string, error) {
	var url string
	err := r.db.QueryRow(ctx, `DELETE FROM gallery_images WHERE id = $1 RETURNING url`, id).Scan(&url)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", apperrors.ErrImageNotFound
		}
		return "", fmt.Errorf("error deleting gallery image: %w", err)
	}
	return url, nil
}
