package controllers

import (
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/filestorage"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// maxUploadSize caps document uploads at 5 MB
const maxUploadSize = 5 << 20

var allowedExtensions = map[string]bool{
	".jpg":  true,
	".jpeg": true,
	".png":  true,
	".webp": true,
	".pdf":  true,
}

// UploadController handles document and image uploads. Uploaded files are
// stored immediately; their URLs are attached to records by later requests.
type UploadController struct {
	storage filestorage.Storage
}

// NewUploadController creates a new UploadController
func NewUploadController(storage filestorage.Storage) *UploadController {
	return &UploadController{
		storage: storage,
	}
}

// Upload stores a file and returns its URL
// @Summary Upload a file
// @Description Stores an uploaded document or image and returns the URL to reference it by. The optional "kind" form field selects a subdirectory (photo, signature, idproof, gallery, blog, story).
// @Tags uploads
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "File to upload"
// @Param kind formData string false "Upload category"
// @Success 201 {object} dto.APIResponse{data=dto.UploadResponse} "Stored file"
// @Failure 400 {object} dto.ErrorResponse "Missing, oversized or unsupported file"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /uploads [post]
func (c *UploadController) Upload(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "No file provided").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	if fileHeader.Size > maxUploadSize {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "File too large").
			WithDetails("Files must be 5 MB or smaller")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	ext := strings.ToLower(filepath.Ext(fileHeader.Filename))
	if !allowedExtensions[ext] {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Unsupported file type").
			WithDetails("Allowed types: jpg, jpeg, png, webp, pdf")
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	kind := sanitizeKind(ctx.PostForm("kind"))

	url, err := c.storage.Save(ctx, fileHeader, kind)
	if err != nil {
		logger.Error().Err(err).Str("filename", fileHeader.Filename).Msg("File upload failed")
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.APIResponse{
		Data: dto.UploadResponse{
			URL:      url,
			Filename: fileHeader.Filename,
		},
		Timestamp: time.Now(),
	})
}

// sanitizeKind maps the client-supplied category onto a known subdirectory;
// anything unrecognized lands in "misc".
func sanitizeKind(kind string) string {
	switch kind {
	case "photo", "signature", "idproof", "gallery", "blog", "story":
		return kind
	}
	return "misc"
}
