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

// SuccessStoryService handles the alumni stories shown on the public site
type SuccessStoryService struct {
	stories *repositories.SuccessStoryRepository
	storage filestorage.Storage
}

// NewSuccessStoryService creates a new success story service
func NewSuccessStoryService(stories *repositories.SuccessStoryRepository, storage filestorage.Storage) *SuccessStoryService {
	return &SuccessStoryService{
		stories: stories,
		storage: storage,
	}
}

// List returns all stories, newest first.
func (s *SuccessStoryService) List(ctx context.Context) ([]*models.SuccessStory, error) {
	return s.stories.List(ctx)
}

// Get returns one story.
func (s *SuccessStoryService) Get(ctx context.Context, id int64) (*models.SuccessStory, error) {
	return s.stories.GetByID(ctx, id)
}

// Create publishes a new story.
func (s *SuccessStoryService) Create(ctx context.Context, req *dto.SaveStoryRequest) (*models.SuccessStory, error) {
	story := &models.SuccessStory{
		Name:     req.Name,
		Batch:    helpers.TrimmedOrNil(req.Batch),
		ImageURL: helpers.TrimmedOrNil(req.ImageURL),
		Excerpt:  helpers.TrimmedOrNil(req.Excerpt),
		Content:  req.Content,
	}
	if err := s.stories.Create(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Update rewrites an existing story.
func (s *SuccessStoryService) Update(ctx context.Context, id int64, req *dto.SaveStoryRequest) (*models.SuccessStory, error) {
	story, err := s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	story.Name = req.Name
	story.Batch = helpers.TrimmedOrNil(req.Batch)
	story.ImageURL = helpers.TrimmedOrNil(req.ImageURL)
	story.Excerpt = helpers.TrimmedOrNil(req.Excerpt)
	story.Content = req.Content

	if err := s.stories.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// Delete removes a story and its stored photo.
func (s *SuccessStoryService) Delete(ctx context.Context, id int64) error {
	imageURL, err := s.stories.Delete(ctx, id)
	if err != nil {
		return err
	}

	if imageURL != nil {
		if err := s.storage.Delete(ctx, *imageURL); err != nil {
			logger.Warn().Err(err).Str("url", *imageURL).Msg("Story photo cleanup failed")
		}
	}
	return nil
}
