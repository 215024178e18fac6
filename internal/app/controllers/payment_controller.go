package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/app/services"
	"github.com/fiftyvillagers/seva-portal/internal/middleware"
)

// PaymentController handles the application fee flow
type PaymentController struct {
	paymentService *services.PaymentService
}

// NewPaymentController creates a new PaymentController
func NewPaymentController(paymentService *services.PaymentService) *PaymentController {
	return &PaymentController{
		paymentService: paymentService,
	}
}

// CreateOrder opens a gateway order for the application fee
// @Summary Create a payment order
// @Description Opens a Razorpay order for the fixed application fee and returns the handle the checkout needs
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.APIResponse{data=dto.CreateOrderResponse} "Order created"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 502 {object} dto.ErrorResponse "Payment gateway failure"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/order [post]
func (c *PaymentController) CreateOrder(ctx *gin.Context) {
	resp, err := c.paymentService.CreateOrder(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}

// VerifyPayment verifies a completed checkout and issues the roll number
// @Summary Verify a payment
// @Description Verifies the checkout signature and, on first success, marks the application paid and issues its exam center and roll number. Repeats are no-ops returning the issued state.
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body dto.VerifyPaymentRequest true "Gateway callback fields"
// @Success 200 {object} dto.APIResponse{data=dto.VerifyPaymentResponse} "Payment verified"
// @Failure 400 {object} dto.ErrorResponse "Invalid signature or request"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Application belongs to another student"
// @Failure 404 {object} dto.ErrorResponse "Application not found"
// @Failure 500 {object} dto.ErrorResponse "Internal server error"
// @Router /payments/verify [post]
func (c *PaymentController) VerifyPayment(ctx *gin.Context) {
	studentID, ok := middleware.CurrentUserID(ctx)
	if !ok {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeUnauthorized, "Authentication required")
		ctx.JSON(http.StatusUnauthorized, dto.NewErrorResponse(errorDetail))
		return
	}

	var req dto.VerifyPaymentRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		errorDetail := dto.NewErrorDetail(dto.ErrorCodeValidationFailed, "Invalid verification data").
			WithDetails(err.Error())
		ctx.JSON(http.StatusBadRequest, dto.NewErrorResponse(errorDetail))
		return
	}

	resp, err := c.paymentService.VerifyPayment(ctx, studentID, &req)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.APIResponse{
		Data:      resp,
		Timestamp: time.Now(),
	})
}
