package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
)

// ExamController handles admit card retrieval and admin issuance
type ExamController struct {
	examService *services.ExamService
}

// NewExamController creates a new ExamController
func NewExamController(examService *services.ExamService) *ExamController {
	return &ExamController{
		examService: examService,
	}
}

// GetMyAdmitCard returns the caller's admit card
// @Summary Get own admit card
// @Description Returns the admit card once a roll number has been issued
// @Tags exam
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=models.AdmitCard} "Admit card"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admit card not available yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admit-card [get]
func (c *ExamController) GetMyAdmitCard(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	card, err := c.examService.GetAdmitCard(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      card,
		Timestamp: time.Now(),
	})
}

// DownloadMyAdmitCard streams the caller's admit card as a PDF
// @Summary Download own admit card PDF
// @Tags exam
// @Produce application/pdf
// @Security BearerAuth
// @Success 200 {file} binary "Admit card PDF"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 404 {object} dto.ErrorResponse "Admit card not available yet"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admit-card/download [get]
func (c *ExamController) DownloadMyAdmitCard(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	pdf, err := c.examService.RenderAdmitCardPDF(ctx, studentID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.Header("Content-Disposition", `attachment; filename="admit-card.pdf"`)
	ctx.Data(http.StatusOK, "application/pdf", pdf)
}

// GenerateAdmitCard issues the exam center and roll number by admin action
// @Summary Issue an admit card
// @Description Assigns an exam center and roll number to an application. Issuing twice returns the already-assigned state.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.GenerateAdmitCardRequest true "Application to issue for"
// @Success 200 {object} dto.APIResponse{data=models.Application} "Application with issued roll number"
// @Failure 400 {object} dto.ErrorResponse "Invalid request or rejected application"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 404 {object} dto.ErrorResponse "Application or exam center not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /admin/admit-cards [post]
func (c *ExamController) GenerateAdmitCard(ctx *gin.Context) {
	var req dto.GenerateAdmitCardRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid request data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	app, err := c.examService.GenerateAdmitCard(ctx, req.ApplicationID)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      app,
		Timestamp: time.Now(),
	})
}
