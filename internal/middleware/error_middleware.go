package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fiftyvillagers/seva-portal/internal/app/models/dto"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/apperrors"
	"github.com/fiftyvillagers/seva-portal/internal/pkg/logger"
)

// HandleAPIError maps workflow errors onto HTTP responses. Controllers
// funnel every service error through here so status codes and payload
// shapes stay consistent.
func HandleAPIError(c *gin.Context, err error) {
	var custom *apperrors.CustomError
	message := ""
	field := ""
	if errors.As(err, &custom) {
		message = custom.Message
		field = custom.Field
	}

	switch {
	case errors.Is(err, apperrors.ErrResourceNotFound),
		errors.Is(err, apperrors.ErrApplicationNotFound),
		errors.Is(err, apperrors.ErrUserNotFound),
		errors.Is(err, apperrors.ErrExamCenterNotFound),
		errors.Is(err, apperrors.ErrAdmitCardNotReady),
		errors.Is(err, apperrors.ErrBlogNotFound),
		errors.Is(err, apperrors.ErrSectionNotFound),
		errors.Is(err, apperrors.ErrImageNotFound),
		errors.Is(err, apperrors.ErrStoryNotFound):
		respond(c, http.StatusNotFound, dto.ErrorCodeResourceNotFound, fallback(message, err.Error()), field)

	case errors.Is(err, apperrors.ErrPermissionDenied):
		respond(c, http.StatusForbidden, dto.ErrorCodeForbidden, "Permission denied", "")

	case errors.Is(err, apperrors.ErrInvalidCredentials):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidCredentials, "Invalid credentials", "")

	case errors.Is(err, apperrors.ErrTokenExpired):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeExpiredToken, "Token expired", "")

	case errors.Is(err, apperrors.ErrTokenInvalid), errors.Is(err, apperrors.ErrInvalidFormat):
		respond(c, http.StatusUnauthorized, dto.ErrorCodeInvalidToken, "Invalid token", "")

	case errors.Is(err, apperrors.ErrInvalidSignature):
		respond(c, http.StatusBadRequest, dto.ErrorCodeInvalidSignature, "Payment signature verification failed", "")

	case errors.Is(err, apperrors.ErrValidationFailed),
		errors.Is(err, apperrors.ErrBadRequest),
		errors.Is(err, apperrors.ErrInvalidStatus),
		errors.Is(err, apperrors.ErrCorrectionNotes):
		respond(c, http.StatusBadRequest, dto.ErrorCodeValidationFailed, fallback(message, err.Error()), field)

	case errors.Is(err, apperrors.ErrApplicationLocked):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceLocked, "Application can no longer be edited", "")

	case errors.Is(err, apperrors.ErrEmailAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, "Email already exists", "")

	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrResourceAlreadyExists):
		respond(c, http.StatusConflict, dto.ErrorCodeResourceAlreadyExists, fallback(message, err.Error()), "")

	case errors.Is(err, apperrors.ErrPaymentGateway):
		respond(c, http.StatusBadGateway, dto.ErrorCodeExternalServiceError, "Payment gateway request failed", "")

	default:
		logger.Error().Err(err).Str("path", c.FullPath()).Msg("Unhandled API error")
		respond(c, http.StatusInternalServerError, dto.ErrorCodeInternalServer, "Internal server error", "")
	}
}

func respond(c *gin.Context, status int, code dto.ErrorCode, message, field string) {
	detail := dto.NewErrorDetail(code, message)
	if field != "" {
		detail = detail.WithField(field)
	}
	c.JSON(status, dto.NewErrorResponse(detail))
}

func fallback(message, def string) string {
	if message != "" {
		return message
	}
	return def
}
