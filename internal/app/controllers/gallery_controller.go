package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
)

// GalleryController handles the public photo gallery
type GalleryController struct {
	galleryService *services.GalleryService
}

// NewGalleryController creates a new GalleryController
func NewGalleryController(galleryService *services.GalleryService) *GalleryController {
	return &GalleryController{
		galleryService: galleryService,
	}
}

// GetSections returns all sections with their images
// @Summary List gallery sections
// @Tags gallery
// @Produce json
// @Success 200 {object} dto.APIResponse{data=[]models.GallerySection} "Sections"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /gallery [get]
func (c *GalleryController) GetSections(ctx *gin.Context) {
	sections, err := c.galleryService.GetSections(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      sections,
		Timestamp: time.Now(),
	})
}

// CreateSection adds a new section
// @Summary Create a gallery section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.CreateSectionRequest true "Section details"
// @Success 201 {object} dto.APIResponse{data=models.GallerySection} "Created section"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery [post]
func (c *GalleryController) CreateSection(ctx *gin.Context) {
	var req dto.CreateSectionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid section data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	section, err := c.galleryService.CreateSection(ctx, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      section,
		Timestamp: time.Now(),
	})
}

// DeleteSection removes a section, its images and their stored files
// @Summary Delete a gallery section
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid section ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery/{id} [delete]
func (c *GalleryController) DeleteSection(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	if err := c.galleryService.DeleteSection(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Section deleted"},
		Timestamp: time.Now(),
	})
}

// AddImage attaches an uploaded image to a section
// @Summary Add an image to a section
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Section ID"
// @Param request body dto.AddImageRequest true "Image URL and caption"
// @Success 201 {object} dto.APIResponse{data=models.GalleryImage} "Added image"
// @Failure 400 {object} dto.ErrorResponse "Invalid request data"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Section not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery/{id}/images [post]
func (c *GalleryController) AddImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "id")
	if !ok {
		return
	}

	var req dto.AddImageRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid image data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	image, err := c.galleryService.AddImage(ctx, id, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data:      image,
		Timestamp: time.Now(),
	})
}

// DeleteImage removes a single image
// @Summary Delete a gallery image
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param imageId path int true "Image ID"
// @Success 200 {object} dto.APIResponse{data=dto.SuccessResponse} "Deleted"
// @Failure 400 {object} dto.ErrorResponse "Invalid image ID"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Image not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/gallery/images/{imageId} [delete]
func (c *GalleryController) DeleteImage(ctx *gin.Context) {
	id, ok := parseIDParam(ctx, "imageId")
	if !ok {
		return
	}

	if err := c.galleryService.DeleteImage(ctx, id); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      dto.SuccessResponse{Message: "Image deleted"},
		Timestamp: time.Now(),
	})
}
