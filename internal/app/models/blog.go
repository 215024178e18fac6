package models

import "time"

// Blog defines the blog model based on the 'blogs' table
type Blog struct {
	ID        int64     `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	Content   string    `json:"content" db:"content"`
	HeroImage *string   `json:"heroImage,omitempty" db:"hero_image"`
	AuthorID  int64     `json:"authorId" db:"author_id"`
	CreatedAt time.Time `json:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" db:"updated_at"`

	// Joined data (no db tag)
	AuthorName    string          `json:"authorName,omitempty"`
	CommentCount  int64           `json:"commentCount"`
	ReactionCount int64           `json:"reactionCount"`
	Comments      []*BlogComment  `json:"comments,omitempty"`
	Reactions     []ReactionTally `json:"reactions,omitempty"`
}

// BlogComment is a reader comment on a blog post
type BlogComment struct {
	ID         int64     `json:"id" db:"id"`
	BlogID     int64     `json:"blogId" db:"blog_id"`
	AuthorID   int64     `json:"authorId" db:"author_id"`
	AuthorName string    `json:"authorName" db:"author_name"`
	Content    string    `json:"content" db:"content"`
	CreatedAt  time.Time `json:"createdAt" db:"created_at"`
}

// ReactionTally aggregates reactions of one type on a blog post
type ReactionTally struct {
	ReactionType string `json:"reactionType" db:"reaction_type"`
	Count        int64  `json:"count" db:"count"`
}
