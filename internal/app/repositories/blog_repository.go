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

// BlogRepository handles database operations for blogs, comments and
// reactions
type BlogRepository struct {
	db *pgxpool.Pool
}

// NewBlogRepository creates a new blog repository
func NewBlogRepository(db *pgxpool.Pool) *BlogRepository {
	return &BlogRepository{
		db: db,
	}
}

// List retrieves blogs newest first with author name and engagement counts
func (r *BlogRepository) List(ctx context.Context, offset uint64, limit int) ([]*models.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.hero_image, b.author_id,
		       b.created_at, b.updated_at,
		       COALESCE(u.name, '') AS author_name,
		       (SELECT COUNT(*) FROM blog_comments WHERE blog_id = b.id) AS comment_count,
		       (SELECT COUNT(*) FROM blog_reactions WHERE blog_id = b.id) AS reaction_count
		FROM blogs b
		LEFT JOIN users u ON b.author_id = u.id
		ORDER BY b.created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("error listing blogs: %w", err)
	}
	defer rows.Close()

	var blogs []*models.Blog
	for rows.Next() {
		var blog models.Blog
		if err := rows.Scan(
			&blog.ID, &blog.Title, &blog.Content, &blog.HeroImage,
			&blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt,
			&blog.AuthorName, &blog.CommentCount, &blog.ReactionCount,
		); err != nil {
			return nil, err
		}
		blogs = append(blogs, &blog)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return blogs, nil
}

// Count returns the total number of blogs
func (r *BlogRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM blogs`).Scan(&count); err != nil {
		return 0, fmt.Errorf("error counting blogs: %w", err)
	}
	return count, nil
}

// GetByID retrieves a blog with its author name
func (r *BlogRepository) GetByID(ctx context.Context, id int64) (*models.Blog, error) {
	query := `
		SELECT b.id, b.title, b.content, b.hero_image, b.author_id,
		       b.created_at, b.updated_at, COALESCE(u.name, '') AS author_name
		FROM blogs b
		LEFT JOIN users u ON b.author_id = u.id
		WHERE b.id = $1
	`

	var blog models.Blog
	err := r.db.QueryRow(ctx, query, id).Scan(
		&blog.ID, &blog.Title, &blog.Content, &blog.HeroImage,
		&blog.AuthorID, &blog.CreatedAt, &blog.UpdatedAt, &blog.AuthorName,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrBlogNotFound
		}
		return nil, fmt.Errorf("error retrieving blog: %w", err)
	}
	return &blog, nil
}

// Create inserts a new blog post
func (r *BlogRepository) Create(ctx context.Context, blog *models.Blog) error {
	query := `
		INSERT INTO blogs (title, content, hero_image, author_id)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at, updated_at
	`

	err := r.db.QueryRow(ctx, query, blog.Title, blog.Content, blog.HeroImage, blog.AuthorID).
		Scan(&blog.ID, &blog.CreatedAt, &blog.UpdatedAt)
	if err != nil {
		return fmt.Errorf("error creating blog: %w", err)
	}
	return nil
}

// Update modifies an existing blog post
func (r *BlogRepository) Update(ctx context.Context, blog *models.Blog) error {
	query := `
		UPDATE blogs
		SET title = $1, content = $2, hero_image = $3, updated_at = CURRENT_TIMESTAMP
		WHERE id = $4
		RETURNING updated_at
	`

	err := r.db.QueryRow(ctx, query, blog.Title, blog.Content, blog.HeroImage, blog.ID).
		Scan(&blog.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperrors.ErrBlogNotFound
		}
		return fmt.Errorf("error updating blog: %w", err)
	}
	return nil
}

// Delete removes a blog post and (via cascade) its comments and reactions
func (r *BlogRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM blogs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("error deleting blog: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrBlogNotFound
	}
	return nil
}

// GetComments retrieves all comments on a blog, newest first
func (r *BlogRepository) GetComments(ctx context.Context, blogID int64) ([]*models.BlogComment, error) {
	query := `
		SELECT c.id, c.blog_id, c.author_id, COALESCE(u.name, '') AS author_name,
		       c.content, c.created_at
		FROM blog_comments c
		LEFT JOIN users u ON c.author_id = u.id
		WHERE c.blog_id = $1
		ORDER BY c.created_at DESC
	`

	rows, err := r.db.Query(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving comments: %w", err)
	}
	defer rows.Close()

	var comments []*models.BlogComment
	for rows.Next() {
		var comment models.BlogComment
		if err := rows.Scan(
			&comment.ID, &comment.BlogID, &comment.AuthorID,
			&comment.AuthorName, &comment.Content, &comment.CreatedAt,
		); err != nil {
			return nil, err
		}
		comments = append(comments, &comment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return comments, nil
}

// AddComment inserts a comment
func (r *BlogRepository) AddComment(ctx context.Context, comment *models.BlogComment) error {
	query := `
		INSERT INTO blog_comments (blog_id, author_id, content)
		VALUES ($1, $2, $3)
		RETURNING id, created_at
	`

	err := r.db.QueryRow(ctx, query, comment.BlogID, comment.AuthorID, comment.Content).
		Scan(&comment.ID, &comment.CreatedAt)
	if err != nil {
		return fmt.Errorf("error adding comment: %w", err)
	}
	return nil
}

// UpsertReaction records a reaction, replacing the user's previous one on
// the same blog
func (r *BlogRepository) UpsertReaction(ctx context.Context, blogID, userID int64, reactionType string) error {
	query := `
		INSERT INTO blog_reactions (blog_id, user_id, reaction_type)
		VALUES ($1, $2, $3)
		ON CONFLICT (blog_id, user_id) DO UPDATE SET reaction_type = EXCLUDED.reaction_type
	`

	if _, err := r.db.Exec(ctx, query, blogID, userID, reactionType); err != nil {
		return fmt.Errorf("error saving reaction: %w", err)
	}
	return nil
}

// GetReactionTally aggregates reactions by type for a blog
func (r *BlogRepository) GetReactionTally(ctx context.Context, blogID int64) ([]models.ReactionTally, error) {
	query := `
		SELECT reaction_type, COUNT(*) AS count
		FROM blog_reactions
		WHERE blog_id = $1
		GROUP BY reaction_type
	`

	rows, err := r.db.Query(ctx, query, blogID)
	if err != nil {
		return nil, fmt.Errorf("error retrieving reactions: %w", err)
	}
	defer rows.Close()

	var tally []models.ReactionTally
	for rows.Next() {
		var t models.ReactionTally
		if err := rows.Scan(&t.ReactionType, &t.Count); err != nil {
			return nil, err
		}
		tally = append(tally, t)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tally, nil
}
