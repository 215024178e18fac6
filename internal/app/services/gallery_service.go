package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/filestorage"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/helpers"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// GalleryService handles the public photo gallery: named sections holding
// uploaded images.
type GalleryService struct {
	gallery *repositories.GalleryRepository
	storage filestorage.Storage
}

// NewGalleryService creates a new gallery service
func NewGalleryService(gallery *repositories.GalleryRepository, storage filestorage.Storage) *GalleryService {
	return &GalleryService{
		gallery: gallery,
		storage: storage,
	}
}

// GetSections returns every section with its images.
func (s *GalleryService) GetSections(ctx context.Context) ([]*models.GallerySection, error) {
	return s.gallery.GetSections(ctx)
}

// GetSection returns one section with its images.
func (s *GalleryService) GetSection(ctx context.Context, id int64) (*models.GallerySection, error) {
	return s.gallery.GetSectionByID(ctx, id)
}

// CreateSection adds a new named section.
func (s *GalleryService) CreateSection(ctx context.Context, req *dto.CreateSectionRequest) (*models.GallerySection, error) {
	section := &models.GallerySection{
		Name:        req.Name,
		Description: helpers.TrimmedOrNil(req.Description),
	}
	if err := s.gallery.CreateSection(ctx, section); err != nil {
		return nil, err
	}
	section.Images = []*models.GalleryImage{}
	return section, nil
}

// DeleteSection removes a section, its image rows and their stored files.
// File cleanup is best effort; an orphaned file never blocks the delete.
func (s *GalleryService) DeleteSection(ctx context.Context, id int64) error {
	urls, err := s.gallery.DeleteSection(ctx, id)
	if err != nil {
		return err
	}

	for _, url := range urls {
		if err := s.storage.Delete(ctx, url); err != nil {
			logger.Warn().Err(err).Str("url", url).Msg("Gallery file cleanup failed")
		}
	}
	return nil
}

// AddImage attaches an already-uploaded image to a section.
func (s *GalleryService) AddImage(ctx context.Context, sectionID int64, req *dto.AddImageRequest) (*models.GalleryImage, error) {
	if _, err := s.gallery.GetSectionByID(ctx, sectionID); err != nil {
		return nil, err
	}

	image := &models.GalleryImage{
		SectionID: sectionID,
		URL:       req.URL,
		Caption:   helpers.TrimmedOrNil(req.Caption),
	}
	if err := s.gallery.AddImage(ctx, image); err != nil {
		return nil, err
	}
	return image, nil
}

// DeleteImage removes one image row and its stored file.
func (s *GalleryService) DeleteImage(ctx context.Context, id int64) error {
	url, err := s.gallery.DeleteImage(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, url); err != nil {
		logger.Warn().Err(err).Str("url", url).Msg("Gallery file cleanup failed")
	}
	return nil
}
