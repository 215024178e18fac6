package services

import (
	"context"

	"github.com/fiftyvillagers/seva-portal/internal/app/models"
	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/repositories"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/helpers"
)

// BlogService handles the public blog: admin-authored posts with reader
// comments and reactions.
type BlogService struct {
	blogs *repositories.BlogRepository
}

// NewBlogService creates a new blog service
func NewBlogService(blogs *repositories.BlogRepository) *BlogService {
	return &BlogService{blogs: blogs}
}

// List returns a page of posts with engagement counts, plus the total.
func (s *BlogService) List(ctx context.Context, page, limit int) ([]*models.Blog, int64, error) {
	offset, limit := helpers.CalculateOffsetLimit(page, limit)

	blogs, err := s.blogs.List(ctx, offset, limit)
	if err != nil {
		return nil, 0, err
	}

	total, err := s.blogs.Count(ctx)
	if err != nil {
		return nil, 0, err
	}

	return blogs, total, nil
}

// Get returns one post with its comments and reaction tally attached.
func (s *BlogService) Get(ctx context.Context, id int64) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	comments, err := s.blogs.GetComments(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.Comments = comments
	blog.CommentCount = int64(len(comments))

	reactions, err := s.blogs.GetReactionTally(ctx, id)
	if err != nil {
		return nil, err
	}
	blog.Reactions = reactions
	for _, t := range reactions {
		blog.ReactionCount += t.Count
	}

	return blog, nil
}

// Create publishes a new post authored by the given admin.
func (s *BlogService) Create(ctx context.Context, authorID int64, req *dto.SaveBlogRequest) (*models.Blog, error) {
	blog := &models.Blog{
		Title:     req.Title,
		Content:   req.Content,
		HeroImage: helpers.TrimmedOrNil(req.HeroImage),
		AuthorID:  authorID,
	}
	if err := s.blogs.Create(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Update rewrites an existing post.
func (s *BlogService) Update(ctx context.Context, id int64, req *dto.SaveBlogRequest) (*models.Blog, error) {
	blog, err := s.blogs.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	blog.Title = req.Title
	blog.Content = req.Content
	blog.HeroImage = helpers.TrimmedOrNil(req.HeroImage)

	if err := s.blogs.Update(ctx, blog); err != nil {
		return nil, err
	}
	return blog, nil
}

// Delete removes a post with its comments and reactions.
func (s *BlogService) Delete(ctx context.Context, id int64) error {
	return s.blogs.Delete(ctx, id)
}

// AddComment attaches a reader comment to a post.
func (s *BlogService) AddComment(ctx context.Context, blogID, authorID int64, req *dto.AddCommentRequest) (*models.BlogComment, error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	comment := &models.BlogComment{
		BlogID:   blogID,
		AuthorID: authorID,
		Content:  req.Content,
	}
	if err := s.blogs.AddComment(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// React records the reader's reaction, replacing any previous one, and
// returns the refreshed tally.
func (s *BlogService) React(ctx context.Context, blogID, userID int64, req *dto.ReactRequest) ([]models.ReactionTally, error) {
	if _, err := s.blogs.GetByID(ctx, blogID); err != nil {
		return nil, err
	}

	if err := s.blogs.UpsertReaction(ctx, blogID, userID, req.ReactionType); err != nil {
		return nil, err
	}
	return s.blogs.GetReactionTally(ctx, blogID)
}
