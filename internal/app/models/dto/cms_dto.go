package dto

// SaveBlogRequest is the create/update payload for blog posts
type SaveBlogRequest struct {
	Title     string  `json:"title" binding:"required"`
	Content   string  `json:"content" binding:"required"`
	HeroImage *string `json:"heroImage"`
}

// AddCommentRequest adds a comment to a blog post
type AddCommentRequest struct {
	Content string `json:"content" binding:"required"`
}

// ReactRequest records a reader reaction on a blog post
type ReactRequest struct {
	ReactionType string `json:"reactionType" binding:"required"`
}

// CreateSectionRequest creates a gallery section
type CreateSectionRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description *string `json:"description"`
}

// AddImageRequest attaches an already-uploaded image to a section
type AddImageRequest struct {
	URL     string  `json:"url" binding:"required"`
	Caption *string `json:"caption"`
}

// SaveStoryRequest is the create/update payload for success stories
type SaveStoryRequest struct {
	Name     string  `json:"name" binding:"required"`
	Batch    *string `json:"batch"`
	Excerpt  *string `json:"excerpt"`
	Content  string  `json:"content" binding:"required"`
	ImageURL *string `json:"imageUrl"`
}

// UploadResponse is returned by the generic upload endpoint
type UploadResponse struct {
	URL      string `json:"url"`
	Filename string `json:"filename"`
}
