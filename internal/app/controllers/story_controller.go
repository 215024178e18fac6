package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
)

// StoryController handles the public success story pages
type StoryController struct {
	storyService *services.SuccessStoryService
}

// NewStoryController creates a new StoryController
func NewStoryController(storyService *services.SuccessStoryService) *StoryController {
	return &StoryController{
		storyService: storyService,
	}
}

// ListStories returns all stories
// @Summary List success stories
// @Tags stories
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.SuccessStory} "Stories"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stories [get]
func (c *StoryController) ListStories(ctx *gin.Context) {
	stories, err := c.storyService.List(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      stories,
		Timestamp: time.Now(),
	})
}

// GetStory returns one story
// @Summary Get a success story
// @Tags stories
// @Produce json
// @Param id path int true "Story ID"
// @Success 200 {object} dto.APIResponse{data=models.SuccessStory} "Story"
// @Failure 400 {object} dto.ErrorResponse "Invalid story ID"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /stories/{id} [get]
func (c *StoryController) GetStory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	story, err := c.storyService.Get(ctx, id)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      story,
		Timestamp: time.Now(),
	})
}

// CreateStory publishes a new story
// @Summary Create a success story
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.SaveStoryRequest true "Story content"
// @Success 201 {object} dto.APIResponse{data=models.SuccessStory} "Created story"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stories [post]
func (c *StoryController) CreateStory(ctx *gin.Context) {
	var req dto.SaveStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid story data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	story, err := c.storyService.Create(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      story,
		Timestamp: time.Now(),
	})
}

// UpdateStory rewrites an existing story
// @Summary Update a success story
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Param request body dto.SaveStoryRequest true "Story content"
// @Success 200 {object} dto.APIResponse{data=models.SuccessStory} "Updated story"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stories/{id} [put]
func (c *StoryController) UpdateStory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.SaveStoryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid story data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	story, err := c.storyService.Update(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      story,
		Timestamp: time.Now(),
	})
}

// DeleteStory removes a story
// @Summary Delete a success story
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Story ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid story ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Story not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/stories/{id} [delete]
func (c *StoryController) DeleteStory(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.storyService.Delete(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Story deleted"},
		Timestamp: time.Now(),
	})
}
