package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/helpers"
)

// BlogController handles the public blog and its engagement endpoints
type BlogController struct {
	blogService *services.BlogService
}

// NewBlogController creates a new BlogController
func NewBlogController(blogService *services.BlogService) *BlogController {
	return &BlogController{
		blogService: blogService,
	}
}

// ListBlogs returns a page of posts
// @Summary List blog posts
// @Tags blogs
// @Produce json
// @Param page query int false "Page number (1-based)"
// @Param limit query int false "Page size"
// @Success 200 {object} dto.APIResponse{data=dto.PagedResponse} "Posts"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blogs [get]
func (c *BlogController) ListBlogs(ctx *gin.Context) {
	page, limit := helpers.ParsePaginationParams(ctx)

	blogs, total, err := c.blogService.List(ctx, page, limit)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data: dto.PagedResponse{
			Items:      blogs,
			Pagination: helpers.NewPaginationInfo(total, page, limit),
		},
		Timestamp: time.Now(),
	})
}

// GetBlog returns one post with comments and reactions
// @Summary Get a blog post
// @Tags blogs
// @Produce json
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=models.Blog} "Post"
// @Failure 400 {object} dto.ErrorResponse "Invalid blog ID"
// @Failure 404 {object} dto.ErrorResponse "Blog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blogs/{id} [get]
func (c *BlogController) GetBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	blog, err := c.blogService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      blog,
		Timestamp: time.Now(),
	})
}

// CreateBlog publishes a new post
// @Summary Create a blog post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveBlogRequest true "Post content"
// @Success 201 {object} dto.APIResponse{data=models.Blog} "Created post"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blogs [post]
func (c *BlogController) CreateBlog(ctx *gin.Context) {
	authorID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.SaveBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid blog data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	blog, err := c.blogService.Create(ctx, authorID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      blog,
		Timestamp: time.Now(),
	})
}

// UpdateBlog rewrites an existing post
// @Summary Update a blog post
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.SaveBlogRequest true "Post content"
// @Success 200 {object} dto.APIResponse{data=models.Blog} "Updated post"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Blog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blogs/{id} [put]
func (c *BlogController) UpdateBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveBlogRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid blog data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	blog, err := c.blogService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      blog,
		Timestamp: time.Now(),
	})
}

// DeleteBlog removes a post
// @Summary Delete a blog post
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid blog ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Blog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/blogs/{id} [delete]
func (c *BlogController) DeleteBlog(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.blogService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Blog deleted"},
		Timestamp: time.Now(),
	})
}

// AddComment attaches a comment to a post
// @Summary Comment on a blog post
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.AddCommentRequest true "Comment content"
// @Success 201 {object} dto.APIResponse{data=models.BlogComment} "Created comment"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Blog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blogs/{id}/comments [post]
func (c *BlogController) AddComment(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddCommentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid comment data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	comment, err := c.blogService.AddComment(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      comment,
		Timestamp: time.Now(),
	})
}

// React records the caller's reaction on a post
// @Summary React to a blog post
// @Description Records the reader's reaction, replacing any previous one, and returns the refreshed tally
// @Tags blogs
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Blog ID"
// @Param request body dto.ReactRequest true "Reaction type"
// @Success 200 {object} dto.APIResponse{data=[]models.ReactionTally} "Reaction tally"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Blog not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /blogs/{id}/reactions [post]
func (c *BlogController) React(ctx *gin.Context) {
	userID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.ReactRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid reaction data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	tally, err := c.blogService.React(ctx, id, userID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      tally,
		Timestamp: time.Now(),
	})
}
